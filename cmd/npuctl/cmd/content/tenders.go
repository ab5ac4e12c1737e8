package content

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/pkg/sdk"
)

// TenderCmd manages procurement tenders.
var TenderCmd = &cobra.Command{
	Use:   "tender",
	Short: "Manage tenders",
}

var tenderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List tenders",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		tenders, err := client.Tenders().List(cmd.Context())
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tDEADLINE\tOPENING")
		for _, t := range tenders {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
				t.TenderID, truncate(t.Title, 48), t.SubmissionDeadline, orDash(t.OpeningDate))
		}
		w.Flush()
		return nil
	},
}

var tenderGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one tender",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "tender")
		if err != nil {
			return err
		}
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		t, err := client.Tenders().Get(cmd.Context(), id)
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\t%d\n", t.TenderID)
		fmt.Fprintf(w, "Title\t%s\n", t.Title)
		fmt.Fprintf(w, "Deadline\t%s\n", t.SubmissionDeadline)
		fmt.Fprintf(w, "Opening\t%s\n", orDash(t.OpeningDate))
		fmt.Fprintf(w, "Document\t%s\n", t.TenderDocumentPath)
		fmt.Fprintf(w, "Description\t%s\n", orDash(t.Description))
		w.Flush()
		return nil
	},
}

var createTender sdk.Tender

var tenderCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a tender",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		created, err := client.Tenders().Create(cmd.Context(), createTender)
		if err != nil {
			return wrap(cmd.Context(), err)
		}
		fmt.Printf("Created tender '%s' (id %d)\n", created.Title, created.TenderID)
		return nil
	},
}

var tenderUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a tender",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "tender")
		if err != nil {
			return err
		}
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		current, err := client.Tenders().Get(cmd.Context(), id)
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		flags := cmd.Flags()
		if flags.Changed("title") {
			current.Title, _ = flags.GetString("title")
		}
		if flags.Changed("description") {
			current.Description, _ = flags.GetString("description")
		}
		if flags.Changed("document") {
			current.TenderDocumentPath, _ = flags.GetString("document")
		}
		if flags.Changed("deadline") {
			current.SubmissionDeadline, _ = flags.GetString("deadline")
		}
		if flags.Changed("opening-date") {
			current.OpeningDate, _ = flags.GetString("opening-date")
		}

		updated, err := client.Tenders().Update(cmd.Context(), id, *current)
		if err != nil {
			return wrap(cmd.Context(), err)
		}
		fmt.Printf("Updated tender '%s' (id %d)\n", updated.Title, updated.TenderID)
		return nil
	},
}

func init() {
	tenderCreateCmd.Flags().StringVar(&createTender.Title, "title", "", "Tender title")
	tenderCreateCmd.Flags().StringVar(&createTender.Description, "description", "", "Description")
	tenderCreateCmd.Flags().StringVar(&createTender.TenderDocumentPath, "document", "", "Tender document path")
	tenderCreateCmd.Flags().StringVar(&createTender.SubmissionDeadline, "deadline", "", "Submission deadline (RFC 3339)")
	tenderCreateCmd.Flags().StringVar(&createTender.OpeningDate, "opening-date", "", "Opening timestamp (RFC 3339)")
	tenderCreateCmd.MarkFlagRequired("title")
	tenderCreateCmd.MarkFlagRequired("document")
	tenderCreateCmd.MarkFlagRequired("deadline")

	tenderUpdateCmd.Flags().String("title", "", "Tender title")
	tenderUpdateCmd.Flags().String("description", "", "Description")
	tenderUpdateCmd.Flags().String("document", "", "Tender document path")
	tenderUpdateCmd.Flags().String("deadline", "", "Submission deadline (RFC 3339)")
	tenderUpdateCmd.Flags().String("opening-date", "", "Opening timestamp (RFC 3339)")

	TenderCmd.AddCommand(tenderListCmd)
	TenderCmd.AddCommand(tenderGetCmd)
	TenderCmd.AddCommand(tenderCreateCmd)
	TenderCmd.AddCommand(tenderUpdateCmd)
	TenderCmd.AddCommand(newDeleteCmd("tender", func(ctx context.Context, client *sdk.Client, id int) error {
		return client.Tenders().Delete(ctx, id)
	}))
}
