package role

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all roles",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}

		roles, err := client.Roles().List(cmd.Context())
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		pairs, err := client.RolePermissions().List(cmd.Context())
		if err != nil {
			return wrap(cmd.Context(), err)
		}
		counts := make(map[int]int)
		for _, p := range pairs {
			counts[p.Role]++
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tNAME\tPERMISSIONS")
		for _, r := range roles {
			fmt.Fprintf(w, "%d\t%s\t%d\n", r.RoleID, r.RoleName, counts[r.RoleID])
		}
		w.Flush()
		return nil
	},
}
