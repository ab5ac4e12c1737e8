package role

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/pkg/sdk"
)

var renameCmd = &cobra.Command{
	Use:   "rename [id] [new-name]",
	Short: "Rename a role",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid role id %q", args[0])
		}

		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}

		updated, err := client.Roles().Update(cmd.Context(), id, sdk.Role{RoleID: id, RoleName: args[1]})
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		fmt.Printf("Renamed role %d to '%s'\n", updated.RoleID, updated.RoleName)
		return nil
	},
}
