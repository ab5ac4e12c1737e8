package user

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/pkg/sdk"
)

var assignRoleCmd = &cobra.Command{
	Use:   "assign-role [user-id] [role-id]",
	Short: "Assign a role to an account",
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

		if _, err := client.UserRoles().Create(cmd.Context(), sdk.UserRole{User: userID, Role: roleID}); err != nil {
			return wrap(cmd.Context(), err)
		}
		fmt.Printf("Assigned role %d to user %d\n", roleID, userID)
		return nil
	},
}
