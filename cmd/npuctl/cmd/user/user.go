package user

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/internal/config"
	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/pkg/sdk"
)

// UserCmd groups account management.
var UserCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage portal accounts and their roles",
}

func init() {
	UserCmd.AddCommand(listCmd)
	UserCmd.AddCommand(createCmd)
	UserCmd.AddCommand(updateCmd)
	UserCmd.AddCommand(deleteCmd)
	UserCmd.AddCommand(assignRoleCmd)
	UserCmd.AddCommand(removeRoleCmd)
}

func adminClient(ctx context.Context) (*sdk.Client, error) {
	return config.MustFromContext(ctx).Provider.AdminClient(ctx)
}

func wrap(ctx context.Context, err error) error {
	return config.MustFromContext(ctx).Provider.Wrap(err)
}

func parseID(arg, what string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id %q", what, arg)
	}
	return id, nil
}
