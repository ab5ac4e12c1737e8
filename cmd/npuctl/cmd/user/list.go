package user

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}

		users, err := client.Users().List(cmd.Context())
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		roles, err := client.Roles().List(cmd.Context())
		if err != nil {
			return wrap(cmd.Context(), err)
		}
		roleNames := make(map[int]string, len(roles))
		for _, r := range roles {
			roleNames[r.RoleID] = r.RoleName
		}

		pairs, err := client.UserRoles().List(cmd.Context())
		if err != nil {
			return wrap(cmd.Context(), err)
		}
		byUser := make(map[int][]string)
		for _, p := range pairs {
			byUser[p.User] = append(byUser[p.User], roleNames[p.Role])
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tUSERNAME\tEMAIL\tACTIVE\tSTAFF\tROLES")
		for _, u := range users {
			fmt.Fprintf(w, "%d\t%s\t%s\t%t\t%t\t%s\n",
				u.UserID, u.Username, u.Email, u.IsActive, u.IsStaff, joinOrDash(byUser[u.UserID]))
		}
		w.Flush()
		return nil
	},
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	out := items[0]
	for _, item := range items[1:] {
		out += ", " + item
	}
	return out
}
