package role

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/internal/config"
	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/pkg/sdk"
)

// RoleCmd groups role and permission management.
var RoleCmd = &cobra.Command{
	Use:   "role",
	Short: "Manage roles and their permissions",
}

func init() {
	RoleCmd.AddCommand(listCmd)
	RoleCmd.AddCommand(createCmd)
	RoleCmd.AddCommand(renameCmd)
	RoleCmd.AddCommand(deleteCmd)
	RoleCmd.AddCommand(inspectCmd)
	RoleCmd.AddCommand(setPermissionsCmd)
}

func adminClient(ctx context.Context) (*sdk.Client, error) {
	return config.MustFromContext(ctx).Provider.AdminClient(ctx)
}

func wrap(ctx context.Context, err error) error {
	return config.MustFromContext(ctx).Provider.Wrap(err)
}
