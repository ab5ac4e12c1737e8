package auth

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/internal/config"
	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/pkg/sdk"
)

var (
	loginUsername string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the portal",
	Long: `Signs in with a username and password and stores the session token
under ~/.npuctl. The token is attached to every subsequent request; the
signed-in user is always re-checked against the server, never trusted
from disk.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())

		username, password := loginUsername, loginPassword
		if username == "" && !cfg.NonInteractive {
			var err error
			username, err = pterm.DefaultInteractiveTextInput.Show("Username")
			if err != nil {
				return err
			}
		}
		if password == "" && !cfg.NonInteractive {
			var err error
			password, err = pterm.DefaultInteractiveTextInput.WithMask("*").Show("Password")
			if err != nil {
				return err
			}
		}

		session, err := cfg.Provider.Session(cmd.Context())
		if err != nil {
			return err
		}

		result := session.Login(cmd.Context(), sdk.LoginRequest{
			Username: username,
			Password: password,
		})
		if !result.OK {
			return fmt.Errorf("login failed: %s", result.Error)
		}

		principal := session.Principal()
		pterm.Success.Printf("Signed in as %s (%s)\n", principal.Username, principal.Email)
		if !session.IsAdmin() {
			pterm.Warning.Println("This account has no staff access; admin commands will be refused.")
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVarP(&loginUsername, "username", "u", "", "Username (prompted when omitted)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Password (prompted when omitted)")
}
