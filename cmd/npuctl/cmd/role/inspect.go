package role

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/pkg/sdk"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [id]",
	Short: "Show a role's permissions, grouped by module",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid role id %q", args[0])
		}

		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}

		roleObj, err := client.Roles().Get(cmd.Context(), id)
		if err != nil {
			return wrap(cmd.Context(), err)
		}
		perms, err := client.ListPermissions(cmd.Context())
		if err != nil {
			return wrap(cmd.Context(), err)
		}
		assigned, err := client.RolePermissions().ListForRole(cmd.Context(), id)
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		have := make(map[int]bool, len(assigned))
		for _, pid := range assigned {
			have[pid] = true
		}
		var assignedPerms []sdk.Permission
		for _, p := range perms {
			if have[p.PermissionID] {
				assignedPerms = append(assignedPerms, p)
			}
		}

		pterm.DefaultSection.Printf("Role '%s' (id %d) - %d permissions\n", roleObj.RoleName, roleObj.RoleID, len(assignedPerms))

		groups := sdk.GroupByModule(assignedPerms)
		modules := make([]string, 0, len(groups))
		for m := range groups {
			modules = append(modules, m)
		}
		sort.Strings(modules)

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "MODULE\tID\tPERMISSION")
		for _, m := range modules {
			for _, p := range groups[m] {
				fmt.Fprintf(w, "%s\t%d\t%s\n", m, p.PermissionID, p.PermissionName)
			}
		}
		w.Flush()
		return nil
	},
}
