package role

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/internal/config"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a role",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid role id %q", args[0])
		}

		cfg := config.MustFromContext(cmd.Context())
		if !deleteYes && !cfg.NonInteractive {
			ok, err := pterm.DefaultInteractiveConfirm.Show(fmt.Sprintf("Delete role %d? This cannot be undone.", id))
			if err != nil {
				return err
			}
			if !ok {
				return nil
			}
		}

		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}

		if err := client.Roles().Delete(cmd.Context(), id); err != nil {
			return wrap(cmd.Context(), err)
		}
		fmt.Printf("Deleted role %d\n", id)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "Skip the confirmation prompt")
}
