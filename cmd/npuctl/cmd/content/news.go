package content

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/pkg/sdk"
)

// NewsCmd manages news items, events and announcements.
var NewsCmd = &cobra.Command{
	Use:   "news",
	Short: "Manage news, events and announcements",
}

var newsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List news and events",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		items, err := client.NewsEvents().List(cmd.Context())
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTYPE\tTITLE\tEVENT DATE")
		for _, n := range items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
				n.NewsEventID, n.Type, truncate(n.Title, 48), orDash(n.EventDate))
		}
		w.Flush()
		return nil
	},
}

var newsGetCmd = &cobra.Command{
	Use:   "get [id]",
	Short: "Show one news item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "news item")
		if err != nil {
			return err
		}
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		n, err := client.NewsEvents().Get(cmd.Context(), id)
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "ID\t%d\n", n.NewsEventID)
		fmt.Fprintf(w, "Type\t%s\n", n.Type)
		fmt.Fprintf(w, "Title\t%s\n", n.Title)
		fmt.Fprintf(w, "Event date\t%s\n", orDash(n.EventDate))
		fmt.Fprintf(w, "Body\t%s\n", orDash(n.Body))
		w.Flush()
		return nil
	},
}

var createNews sdk.NewsEvent

var newsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a news item, event or announcement",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		created, err := client.NewsEvents().Create(cmd.Context(), createNews)
		if err != nil {
			return wrap(cmd.Context(), err)
		}
		fmt.Printf("Created %s '%s' (id %d)\n", created.Type, created.Title, created.NewsEventID)
		return nil
	},
}

var newsUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a news item",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "news item")
		if err != nil {
			return err
		}
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		current, err := client.NewsEvents().Get(cmd.Context(), id)
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		flags := cmd.Flags()
		if flags.Changed("title") {
			current.Title, _ = flags.GetString("title")
		}
		if flags.Changed("body") {
			current.Body, _ = flags.GetString("body")
		}
		if flags.Changed("event-date") {
			current.EventDate, _ = flags.GetString("event-date")
		}
		if flags.Changed("type") {
			current.Type, _ = flags.GetString("type")
		}

		updated, err := client.NewsEvents().Update(cmd.Context(), id, *current)
		if err != nil {
			return wrap(cmd.Context(), err)
		}
		fmt.Printf("Updated %s '%s' (id %d)\n", updated.Type, updated.Title, updated.NewsEventID)
		return nil
	},
}

func init() {
	newsCreateCmd.Flags().StringVar(&createNews.Title, "title", "", "Title")
	newsCreateCmd.Flags().StringVar(&createNews.Body, "body", "", "Body text")
	newsCreateCmd.Flags().StringVar(&createNews.EventDate, "event-date", "", "Event date (YYYY-MM-DD)")
	newsCreateCmd.Flags().StringVar(&createNews.Type, "type", sdk.NewsEventTypeNews, "News, Event or Announcement")
	newsCreateCmd.MarkFlagRequired("title")

	newsUpdateCmd.Flags().String("title", "", "Title")
	newsUpdateCmd.Flags().String("body", "", "Body text")
	newsUpdateCmd.Flags().String("event-date", "", "Event date (YYYY-MM-DD)")
	newsUpdateCmd.Flags().String("type", "", "News, Event or Announcement")

	NewsCmd.AddCommand(newsListCmd)
	NewsCmd.AddCommand(newsGetCmd)
	NewsCmd.AddCommand(newsCreateCmd)
	NewsCmd.AddCommand(newsUpdateCmd)
	NewsCmd.AddCommand(newDeleteCmd("news item", func(ctx context.Context, client *sdk.Client, id int) error {
		return client.NewsEvents().Delete(ctx, id)
	}))
}
