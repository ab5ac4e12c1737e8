package content

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/pkg/sdk"
)

// FeedbackCmd triages citizen feedback. Feedback is submitted through the
// public site; the console only lists, updates status and deletes.
var FeedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Triage citizen feedback",
}

var feedbackStatusFilter string

var feedbackListCmd = &cobra.Command{
	Use:   "list",
	Short: "List feedback entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		entries, err := client.FeedbackEntries().List(cmd.Context())
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tSTATUS\tSUBJECT\tFROM\tSUBMITTED")
		for _, f := range entries {
			if feedbackStatusFilter != "" && f.Status != feedbackStatusFilter {
				continue
			}
			from := f.CitizenName
			if from == "" {
				from = f.CitizenEmail
			}
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				f.FeedbackID, f.Status, truncate(f.Subject, 40), orDash(from), orDash(f.SubmittedDate))
		}
		w.Flush()
		return nil
	},
}

var feedbackGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one feedback entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "feedback entry")
		if err != nil {
			return err
		}
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		f, err := client.FeedbackEntries().Get(cmd.Context(), id)
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\t%d\n", f.FeedbackID)
		fmt.Fprintf(w, "Status\t%s\n", f.Status)
		fmt.Fprintf(w, "Subject\t%s\n", f.Subject)
		fmt.Fprintf(w, "From\t%s <%s>\n", orDash(f.CitizenName), orDash(f.CitizenEmail))
		fmt.Fprintf(w, "Submitted\t%s\n", orDash(f.SubmittedDate))
		fmt.Fprintf(w, "Message\t%s\n", f.Message)
		w.Flush()
		return nil
	},
}

var feedbackSetStatusCmd = &cobra.Command{
	Use:   "set-status [id] [status]",
	Short: "Set a feedback entry's triage status",
	Long:  `Moves a feedback entry through triage: New, In Progress, Resolved or Closed.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "feedback entry")
		if err != nil {
			return err
		}
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		current, err := client.FeedbackEntries().Get(cmd.Context(), id)
		if err != nil {
			return wrap(cmd.Context(), err)
		}
		current.Status = args[1]
		if _, err := client.FeedbackEntries().Update(cmd.Context(), id, *current); err != nil {
			return wrap(cmd.Context(), err)
		}
		fmt.Printf("Feedback %d is now %s\n", id, args[1])
		return nil
	},
}

func init() {
	feedbackListCmd.Flags().StringVar(&feedbackStatusFilter, "status", "", "Only show entries with this status")

	FeedbackCmd.AddCommand(feedbackListCmd)
	FeedbackCmd.AddCommand(feedbackGetCmd)
	FeedbackCmd.AddCommand(feedbackSetStatusCmd)
	FeedbackCmd.AddCommand(newDeleteCmd("feedback entry", func(ctx context.Context, client *sdk.Client, id int) error {
		return client.FeedbackEntries().Delete(ctx, id)
	}))
}
