package content

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/pkg/sdk"
)

// DocumentCmd manages downloadable documents (forms, applications, reports).
var DocumentCmd = &cobra.Command{
	Use:   "document",
	Short: "Manage downloadable documents",
}

var documentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		docs, err := client.Documents().List(cmd.Context())
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTITLE\tCATEGORY\tFILE")
		for _, d := range docs {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
				d.DocID, truncate(d.Title, 48), orDash(d.Category), d.FilePath)
		}
		w.Flush()
		return nil
	},
}

var createDocument sdk.Document

var documentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a document",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		created, err := client.Documents().Create(cmd.Context(), createDocument)
		if err != nil {
			return wrap(cmd.Context(), err)
		}
		fmt.Printf("Added document '%s' (id %d)\n", created.Title, created.DocID)
		return nil
	},
}

var documentUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "document")
		if err != nil {
			return err
		}
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		current, err := client.Documents().Get(cmd.Context(), id)
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		flags := cmd.Flags()
		if flags.Changed("title") {
			current.Title, _ = flags.GetString("title")
		}
		if flags.Changed("category") {
			current.Category, _ = flags.GetString("category")
		}
		if flags.Changed("file") {
			current.FilePath, _ = flags.GetString("file")
		}

		if _, err := client.Documents().Update(cmd.Context(), id, *current); err != nil {
			return wrap(cmd.Context(), err)
		}
		fmt.Printf("Updated document %d\n", id)
		return nil
	},
}

func init() {
	documentAddCmd.Flags().StringVar(&createDocument.Title, "title", "", "Document title")
	documentAddCmd.Flags().StringVar(&createDocument.Category, "category", "", "Category")
	documentAddCmd.Flags().StringVar(&createDocument.FilePath, "file", "", "File path")
	documentAddCmd.MarkFlagRequired("title")
	documentAddCmd.MarkFlagRequired("file")

	documentUpdateCmd.Flags().String("title", "", "Document title")
	documentUpdateCmd.Flags().String("category", "", "Category")
	documentUpdateCmd.Flags().String("file", "", "File path")

	DocumentCmd.AddCommand(documentListCmd)
	DocumentCmd.AddCommand(documentAddCmd)
	DocumentCmd.AddCommand(documentUpdateCmd)
	DocumentCmd.AddCommand(newDeleteCmd("document", func(ctx context.Context, client *sdk.Client, id int) error {
		return client.Documents().Delete(ctx, id)
	}))
}
