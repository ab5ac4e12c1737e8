package user

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/pkg/sdk"
)

var createUser sdk.User

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}

		created, err := client.Users().Create(cmd.Context(), createUser)
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		fmt.Printf("Created account '%s' (id %d)\n", created.Username, created.UserID)
		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&createUser.Username, "username", "u", "", "Username")
	createCmd.Flags().StringVarP(&createUser.Email, "email", "e", "", "Email address")
	createCmd.Flags().StringVar(&createUser.FullName, "full-name", "", "Full name")
	createCmd.Flags().BoolVar(&createUser.IsActive, "active", true, "Account is active")
	createCmd.Flags().BoolVar(&createUser.IsStaff, "staff", false, "Grant admin console access")
	createCmd.MarkFlagRequired("username")
	createCmd.MarkFlagRequired("email")
}
