package content

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/pkg/sdk"
)

// HelplineCmd triages helpline queries. Queries come in through the public
// site; the console lists, assigns and deletes them.
var HelplineCmd = &cobra.Command{
	Use:   "helpline",
	Short: "Triage helpline queries",
}

var helplineListCmd = &cobra.Command{
	Use:   "list",
	Short: "List helpline queries",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		queries, err := client.HelplineQueries().List(cmd.Context())
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tCONTACT\tRECEIVED\tASSIGNED TO")
		for _, q := range queries {
			assigned := "-"
			if q.AssignedTo != 0 {
				assigned = strconv.Itoa(q.AssignedTo)
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				q.QueryID, orDash(truncate(q.Title, 40)), q.ContactNumber, orDash(q.QueryDate), assigned)
		}
		w.Flush()
		return nil
	},
}

var helplineGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one helpline query",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "helpline query")
		if err != nil {
			return err
		}
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		q, err := client.HelplineQueries().Get(cmd.Context(), id)
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\t%d\n", q.QueryID)
		fmt.Fprintf(w, "Title\t%s\n", orDash(q.Title))
		fmt.Fprintf(w, "Contact\t%s\n", q.ContactNumber)
		fmt.Fprintf(w, "Received\t%s\n", orDash(q.QueryDate))
		if q.AssignedTo != 0 {
			fmt.Fprintf(w, "Assigned to\t%d\n", q.AssignedTo)
		} else {
			fmt.Fprintf(w, "Assigned to\t-\n")
		}
		fmt.Fprintf(w, "Details\t%s\n", q.Details)
		w.Flush()
		return nil
	},
}

var helplineAssignCmd = &cobra.Command{
	Use:   "assign [query-id] [user-id]",
	Short: "Assign a helpline query to a staff account",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		queryID, err := parseID(args[0], "helpline query")
		if err != nil {
			return err
		}
		userID, err := parseID(args[1], "user")
		if err != nil {
			return err
		}
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		current, err := client.HelplineQueries().Get(cmd.Context(), queryID)
		if err != nil {
			return wrap(cmd.Context(), err)
		}
		current.AssignedTo = userID
		if _, err := client.HelplineQueries().Update(cmd.Context(), queryID, *current); err != nil {
			return wrap(cmd.Context(), err)
		}
		fmt.Printf("Assigned query %d to user %d\n", queryID, userID)
		return nil
	},
}

func init() {
	HelplineCmd.AddCommand(helplineListCmd)
	HelplineCmd.AddCommand(helplineGetCmd)
	HelplineCmd.AddCommand(helplineAssignCmd)
	HelplineCmd.AddCommand(newDeleteCmd("helpline query", func(ctx context.Context, client *sdk.Client, id int) error {
		return client.HelplineQueries().Delete(ctx, id)
	}))
}
