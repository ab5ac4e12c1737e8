package user

import (
	"fmt"

	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update an account",
	Long: `Updates an account. The current record is fetched first and only the
fields given as flags are changed, so omitted fields keep their values.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "user")
		if err != nil {
			return err
		}

		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}

		current, err := client.Users().Get(cmd.Context(), id)
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		flags := cmd.Flags()
		if flags.Changed("username") {
			current.Username, _ = flags.GetString("username")
		}
		if flags.Changed("email") {
			current.Email, _ = flags.GetString("email")
		}
		if flags.Changed("full-name") {
			current.FullName, _ = flags.GetString("full-name")
		}
		if flags.Changed("active") {
			current.IsActive, _ = flags.GetBool("active")
		}
		if flags.Changed("staff") {
			current.IsStaff, _ = flags.GetBool("staff")
		}

		updated, err := client.Users().Update(cmd.Context(), id, *current)
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		fmt.Printf("Updated account '%s' (id %d)\n", updated.Username, updated.UserID)
		return nil
	},
}

func init() {
	updateCmd.Flags().String("username", "", "Username")
	updateCmd.Flags().String("email", "", "Email address")
	updateCmd.Flags().String("full-name", "", "Full name")
	updateCmd.Flags().Bool("active", true, "Account is active")
	updateCmd.Flags().Bool("staff", false, "Grant admin console access")
}
