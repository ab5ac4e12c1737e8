package role

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/pkg/sdk"
)

var setPermissionsIDs string

var setPermissionsCmd = &cobra.Command{
	Use:   "set-permissions [role-id]",
	Short: "Reconcile a role's permissions to an exact set",
	Long: `Replaces a role's permission assignment with the given set of
permission ids. Only the difference is applied: permissions in the set
but not yet assigned are granted, assigned permissions outside the set
are revoked, and everything already matching is left alone.

Grants and revokes run concurrently. On partial failure the command
reports exactly which operations failed so they can be retried by
re-running with the same set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		roleID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid role id %q", args[0])
		}

		target, err := parseIDList(setPermissionsIDs)
		if err != nil {
			return err
		}

		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}

		current, err := client.RolePermissions().ListForRole(cmd.Context(), roleID)
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		results, err := client.Reconcile(cmd.Context(), roleID, current, target)
		if err != nil {
			for _, r := range results {
				if r.Err != nil {
					pterm.Error.Printf("%s permission %d: %v\n", r.Op, r.PermissionID, r.Err)
				}
			}
			return wrap(cmd.Context(), err)
		}
		if len(results) == 0 {
			pterm.Info.Println("Permissions already match; nothing to do.")
			return nil
		}

		granted, revoked := 0, 0
		for _, r := range results {
			switch r.Op {
			case sdk.OpGrant:
				granted++
			case sdk.OpRevoke:
				revoked++
			}
		}
		pterm.Success.Printf("Role %d reconciled: %d granted, %d revoked\n", roleID, granted, revoked)
		return nil
	},
}

func parseIDList(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("invalid permission id %q", part)
		}
		ids = append(ids, id)
	}
	return ids, nil
}

func init() {
	setPermissionsCmd.Flags().StringVar(&setPermissionsIDs, "permissions", "", "Comma-separated permission ids; empty revokes everything")
}
