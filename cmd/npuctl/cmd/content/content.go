// Package content holds the command trees for the portal's content
// collections: notices, tenders, news and events, the gallery, documents,
// schemes and projects, citizen feedback and helpline queries.
package content

import (
	"context"
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/internal/config"
	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/pkg/sdk"
)

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

// confirmDelete prompts unless --yes or non-interactive mode suppressed it.
// Returns false when the operator backed out.
func confirmDelete(cmd *cobra.Command, skip bool, what string, id int) (bool, error) {
	cfg := config.MustFromContext(cmd.Context())
	if skip || cfg.NonInteractive {
		return true, nil
	}
	return pterm.DefaultInteractiveConfirm.Show(fmt.Sprintf("Delete %s %d? This cannot be undone.", what, id))
}

// newDeleteCmd builds the shared delete subcommand every collection uses.
func newDeleteCmd(what string, remove func(ctx context.Context, client *sdk.Client, id int) error) *cobra.Command {
	var yes bool
	cmd := &cobra.Command{
		Use:   "delete [id]",
		Short: "Delete a " + what,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], what)
			if err != nil {
				return err
			}
			ok, err := confirmDelete(cmd, yes, what, id)
			if err != nil || !ok {
				return err
			}
			client, err := adminClient(cmd.Context())
			if err != nil {
				return err
			}
			if err := remove(cmd.Context(), client, id); err != nil {
				return wrap(cmd.Context(), err)
			}
			fmt.Printf("Deleted %s %d\n", what, id)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return cmd
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
