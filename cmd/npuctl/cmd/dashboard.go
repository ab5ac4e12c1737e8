package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/internal/config"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Summary counts across the portal's collections",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		sdkClient, err := cfg.Provider.AdminClient(cmd.Context())
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 15*time.Second)
		defer cancel()

		type summary struct {
			name  string
			count int
		}
		summaries := []summary{
			{name: "Users"},
			{name: "Notices"},
			{name: "Tenders"},
			{name: "News & Events"},
			{name: "Schemes & Projects"},
			{name: "Feedback"},
			{name: "Helpline Queries"},
		}
		counters := []func(context.Context) (int, error){
			countOf(sdkClient.Users().List),
			countOf(sdkClient.Notices().List),
			countOf(sdkClient.Tenders().List),
			countOf(sdkClient.NewsEvents().List),
			countOf(sdkClient.SchemesProjects().List),
			countOf(sdkClient.FeedbackEntries().List),
			countOf(sdkClient.HelplineQueries().List),
		}

		// The summary fetches are independent; fan them out together.
		g, ctx := errgroup.WithContext(ctx)
		for i := range summaries {
			g.Go(func() error {
				n, err := counters[i](ctx)
				if err != nil {
					return cfg.Provider.Wrap(err)
				}
				summaries[i].count = n
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return fmt.Errorf("failed to load dashboard: %w", err)
		}

		pterm.DefaultSection.Println("Portal Dashboard")
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "COLLECTION\tCOUNT")
		for _, s := range summaries {
			fmt.Fprintf(w, "%s\t%d\n", s.name, s.count)
		}
		w.Flush()
		return nil
	},
}

func countOf[T any](list func(context.Context) ([]T, error)) func(context.Context) (int, error) {
	return func(ctx context.Context) (int, error) {
		items, err := list(ctx)
		if err != nil {
			return 0, err
		}
		return len(items), nil
	}
}
