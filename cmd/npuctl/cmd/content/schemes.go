package content

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/pkg/sdk"
)

// SchemeCmd manages government schemes and local projects.
var SchemeCmd = &cobra.Command{
	Use:   "scheme",
	Short: "Manage schemes and projects",
}

var schemeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List schemes and projects",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		items, err := client.SchemesProjects().List(cmd.Context())
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTYPE\tNAME\tSTART\tEND\tBUDGET")
		for _, s := range items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
				s.SPID, s.Type, truncate(s.Name, 40), orDash(s.StartDate), orDash(s.EndDate), orDash(s.Budget))
		}
		w.Flush()
		return nil
	},
}

var createScheme sdk.SchemeProject

var schemeCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a scheme or project",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		created, err := client.SchemesProjects().Create(cmd.Context(), createScheme)
		if err != nil {
			return wrap(cmd.Context(), err)
		}
		fmt.Printf("Created %s '%s' (id %d)\n", created.Type, created.Name, created.SPID)
		return nil
	},
}

var schemeUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a scheme or project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "scheme")
		if err != nil {
			return err
		}
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		current, err := client.SchemesProjects().Get(cmd.Context(), id)
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		flags := cmd.Flags()
		if flags.Changed("name") {
			current.Name, _ = flags.GetString("name")
		}
		if flags.Changed("description") {
			current.Description, _ = flags.GetString("description")
		}
		if flags.Changed("start-date") {
			current.StartDate, _ = flags.GetString("start-date")
		}
		if flags.Changed("end-date") {
			current.EndDate, _ = flags.GetString("end-date")
		}
		if flags.Changed("budget") {
			current.Budget, _ = flags.GetString("budget")
		}
		if flags.Changed("type") {
			current.Type, _ = flags.GetString("type")
		}

		updated, err := client.SchemesProjects().Update(cmd.Context(), id, *current)
		if err != nil {
			return wrap(cmd.Context(), err)
		}
		fmt.Printf("Updated %s '%s' (id %d)\n", updated.Type, updated.Name, updated.SPID)
		return nil
	},
}

func init() {
	schemeCreateCmd.Flags().StringVar(&createScheme.Name, "name", "", "Name")
	schemeCreateCmd.Flags().StringVar(&createScheme.Description, "description", "", "Description")
	schemeCreateCmd.Flags().StringVar(&createScheme.StartDate, "start-date", "", "Start date (YYYY-MM-DD)")
	schemeCreateCmd.Flags().StringVar(&createScheme.EndDate, "end-date", "", "End date (YYYY-MM-DD)")
	schemeCreateCmd.Flags().StringVar(&createScheme.Budget, "budget", "", "Budget amount")
	schemeCreateCmd.Flags().StringVar(&createScheme.Type, "type", "Scheme", "Scheme or Project")
	schemeCreateCmd.MarkFlagRequired("name")

	schemeUpdateCmd.Flags().String("name", "", "Name")
	schemeUpdateCmd.Flags().String("description", "", "Description")
	schemeUpdateCmd.Flags().String("start-date", "", "Start date (YYYY-MM-DD)")
	schemeUpdateCmd.Flags().String("end-date", "", "End date (YYYY-MM-DD)")
	schemeUpdateCmd.Flags().String("budget", "", "Budget amount")
	schemeUpdateCmd.Flags().String("type", "", "Scheme or Project")

	SchemeCmd.AddCommand(schemeListCmd)
	SchemeCmd.AddCommand(schemeCreateCmd)
	SchemeCmd.AddCommand(schemeUpdateCmd)
	SchemeCmd.AddCommand(newDeleteCmd("scheme", func(ctx context.Context, client *sdk.Client, id int) error {
		return client.SchemesProjects().Delete(ctx, id)
	}))
}
