package role

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/pkg/sdk"
)

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}

		created, err := client.Roles().Create(cmd.Context(), sdk.Role{RoleName: args[0]})
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		fmt.Printf("Created role '%s' (id %d)\n", created.RoleName, created.RoleID)
		return nil
	},
}
