package auth

import "github.com/spf13/cobra"

// AuthCmd groups the session commands.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the portal session",
}

func init() {
	AuthCmd.AddCommand(loginCmd)
	AuthCmd.AddCommand(logoutCmd)
	AuthCmd.AddCommand(registerCmd)
	AuthCmd.AddCommand(statusCmd)
}
