package auth

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/internal/config"
	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/pkg/sdk"
)

var (
	registerUsername string
	registerEmail    string
	registerFullName string
	registerPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a portal account and sign in",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		session, err := cfg.Provider.Session(cmd.Context())
		if err != nil {
			return err
		}

		result := session.Register(cmd.Context(), sdk.RegisterRequest{
			Username: registerUsername,
			Email:    registerEmail,
			FullName: registerFullName,
			Password: registerPassword,
		})
		if !result.OK {
			return fmt.Errorf("registration failed: %s", result.Error)
		}

		pterm.Success.Printf("Account created; signed in as %s\n", session.Principal().Username)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVarP(&registerUsername, "username", "u", "", "Username")
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "Email address")
	registerCmd.Flags().StringVar(&registerFullName, "full-name", "", "Full name")
	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "Password")
	registerCmd.MarkFlagRequired("username")
	registerCmd.MarkFlagRequired("email")
	registerCmd.MarkFlagRequired("password")
}
