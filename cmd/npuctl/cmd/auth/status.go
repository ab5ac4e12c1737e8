package auth

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/internal/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Display session status",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.MustFromContext(cmd.Context())
		session, err := cfg.Provider.Session(cmd.Context())
		if err != nil {
			return err
		}

		pterm.DefaultSection.Println("Session Status")
		if !session.IsAuthenticated() {
			pterm.Info.Println("Not signed in. Run `npuctl auth login`.")
			return nil
		}

		p := session.Principal()
		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintf(w, "Username\t%s\n", p.Username)
		fmt.Fprintf(w, "Full name\t%s\n", p.FullName)
		fmt.Fprintf(w, "Email\t%s\n", p.Email)
		fmt.Fprintf(w, "Active\t%t\n", p.IsActive)
		fmt.Fprintf(w, "Staff\t%t\n", p.IsStaff)
		fmt.Fprintf(w, "Superuser\t%t\n", p.IsSuperuser)
		fmt.Fprintf(w, "Admin console\t%t\n", session.IsAdmin())
		w.Flush()
		return nil
	},
}
