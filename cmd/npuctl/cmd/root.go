package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	authcmd "github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/cmd/npuctl/cmd/auth"
	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/cmd/npuctl/cmd/content"
	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/cmd/npuctl/cmd/role"
	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/cmd/npuctl/cmd/user"
	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/internal/client"
	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/internal/config"
)

var (
	serverURL      string
	nonInteractive bool
	verbose        bool
)

var rootCmd = &cobra.Command{
	Use:   "npuctl",
	Short: "Nagar Panchayat Ukhimath portal admin console",
	Long: `npuctl is the administrative console for the Nagar Panchayat Ukhimath
web portal. It manages users, roles and permissions, notices, tenders,
news and events, the gallery, documents, schemes, citizen feedback and
helpline queries against the portal's REST backend.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(serverURL, nonInteractive)
		if err != nil {
			return err
		}

		level := slog.LevelWarn
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		cfg.Provider = client.NewProvider(cfg.ServerURL, logger)
		cmd.SetContext(config.InjectConfig(cmd.Context(), cfg))
		return nil
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Portal API server URL (default "+config.DefaultServerURL+")")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Disable interactive prompts (also set via NPUCTL_NON_INTERACTIVE=1)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(authcmd.AuthCmd)
	rootCmd.AddCommand(role.RoleCmd)
	rootCmd.AddCommand(user.UserCmd)
	rootCmd.AddCommand(content.NoticeCmd)
	rootCmd.AddCommand(content.TenderCmd)
	rootCmd.AddCommand(content.NewsCmd)
	rootCmd.AddCommand(content.GalleryCmd)
	rootCmd.AddCommand(content.DocumentCmd)
	rootCmd.AddCommand(content.SchemeCmd)
	rootCmd.AddCommand(content.FeedbackCmd)
	rootCmd.AddCommand(content.HelplineCmd)
	rootCmd.AddCommand(dashboardCmd)
}
