package content

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/pkg/sdk"
)

// NoticeCmd manages public notices.
var NoticeCmd = &cobra.Command{
	Use:   "notice",
	Short: "Manage public notices",
}

var noticeListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notices",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		notices, err := client.Notices().List(cmd.Context())
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tSTATUS\tPUBLISHED\tEXPIRES")
		for _, n := range notices {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				n.NoticeID, truncate(n.Title, 48), n.Status, n.PublishDate, orDash(n.ExpiryDate))
		}
		w.Flush()
		return nil
	},
}

var noticeGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one notice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "notice")
		if err != nil {
			return err
		}
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		n, err := client.Notices().Get(cmd.Context(), id)
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\t%d\n", n.NoticeID)
		fmt.Fprintf(w, "Title\t%s\n", n.Title)
		fmt.Fprintf(w, "Status\t%s\n", n.Status)
		fmt.Fprintf(w, "Published\t%s\n", n.PublishDate)
		fmt.Fprintf(w, "Expires\t%s\n", orDash(n.ExpiryDate))
		fmt.Fprintf(w, "Document\t%s\n", orDash(n.DocumentFilePath))
		fmt.Fprintf(w, "Content\t%s\n", orDash(n.Content))
		w.Flush()
		return nil
	},
}

var createNotice sdk.Notice

var noticeCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a notice",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		created, err := client.Notices().Create(cmd.Context(), createNotice)
		if err != nil {
			return wrap(cmd.Context(), err)
		}
		fmt.Printf("Created notice '%s' (id %d)\n", created.Title, created.NoticeID)
		return nil
	},
}

var noticeUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a notice",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "notice")
		if err != nil {
			return err
		}
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		current, err := client.Notices().Get(cmd.Context(), id)
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		flags := cmd.Flags()
		if flags.Changed("title") {
			current.Title, _ = flags.GetString("title")
		}
		if flags.Changed("content") {
			current.Content, _ = flags.GetString("content")
		}
		if flags.Changed("publish-date") {
			current.PublishDate, _ = flags.GetString("publish-date")
		}
		if flags.Changed("expiry-date") {
			current.ExpiryDate, _ = flags.GetString("expiry-date")
		}
		if flags.Changed("document") {
			current.DocumentFilePath, _ = flags.GetString("document")
		}
		if flags.Changed("status") {
			current.Status, _ = flags.GetString("status")
		}

		updated, err := client.Notices().Update(cmd.Context(), id, *current)
		if err != nil {
			return wrap(cmd.Context(), err)
		}
		fmt.Printf("Updated notice '%s' (id %d)\n", updated.Title, updated.NoticeID)
		return nil
	},
}

func init() {
	noticeCreateCmd.Flags().StringVar(&createNotice.Title, "title", "", "Notice title")
	noticeCreateCmd.Flags().StringVar(&createNotice.Content, "content", "", "Body text")
	noticeCreateCmd.Flags().StringVar(&createNotice.PublishDate, "publish-date", "", "Publication timestamp (RFC 3339)")
	noticeCreateCmd.Flags().StringVar(&createNotice.ExpiryDate, "expiry-date", "", "Expiry timestamp (RFC 3339)")
	noticeCreateCmd.Flags().StringVar(&createNotice.DocumentFilePath, "document", "", "Attached document path")
	noticeCreateCmd.Flags().StringVar(&createNotice.Status, "status", sdk.NoticeStatusDraft, "Draft, Published or Archived")
	noticeCreateCmd.MarkFlagRequired("title")
	noticeCreateCmd.MarkFlagRequired("publish-date")

	noticeUpdateCmd.Flags().String("title", "", "Notice title")
	noticeUpdateCmd.Flags().String("content", "", "Body text")
	noticeUpdateCmd.Flags().String("publish-date", "", "Publication timestamp (RFC 3339)")
	noticeUpdateCmd.Flags().String("expiry-date", "", "Expiry timestamp (RFC 3339)")
	noticeUpdateCmd.Flags().String("document", "", "Attached document path")
	noticeUpdateCmd.Flags().String("status", "", "Draft, Published or Archived")

	NoticeCmd.AddCommand(noticeListCmd)
	NoticeCmd.AddCommand(noticeGetCmd)
	NoticeCmd.AddCommand(noticeCreateCmd)
	NoticeCmd.AddCommand(noticeUpdateCmd)
	NoticeCmd.AddCommand(newDeleteCmd("notice", func(ctx context.Context, client *sdk.Client, id int) error {
		return client.Notices().Delete(ctx, id)
	}))
}
