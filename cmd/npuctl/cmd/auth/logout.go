package auth

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/internal/config"
)

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "End the portal session",
	Long: `Invalidates the session server-side when possible and always removes
the stored token. After logout the session is anonymous.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		session, err := cfg.Provider.Session(cmd.Context())
		if err != nil {
			return err
		}

		session.Logout(cmd.Context())
		pterm.Success.Println("Signed out.")
		return nil
	},
}
