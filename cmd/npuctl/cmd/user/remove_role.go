package user

import (
	"fmt"

	"github.com/spf13/cobra"
)

var removeRoleCmd = &cobra.Command{
	Use:   "remove-role [user-id] [role-id]",
	Short: "Remove a role from an account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, err := parseID(args[0], "user")
		if err != nil {
			return err
		}
		roleID, err := parseID(args[1], "role")
		if err != nil {
			return err
		}

		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}

		if err := client.UserRoles().Delete(cmd.Context(), userID, roleID); err != nil {
			return wrap(cmd.Context(), err)
		}
		fmt.Printf("Removed role %d from user %d\n", roleID, userID)
		return nil
	},
}
