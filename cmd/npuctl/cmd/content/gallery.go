package content

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/llSiddharthll/Nagar-Panchayat-Ukhimath-Web-Portal/pkg/sdk"
)

// GalleryCmd manages gallery photos and videos.
var GalleryCmd = &cobra.Command{
	Use:   "gallery",
	Short: "Manage the photo and video gallery",
}

var galleryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List gallery items",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		items, err := client.Gallery().List(cmd.Context())
		if err != nil {
			return wrap(cmd.Context(), err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tTYPE\tCAPTION\tFILE\tUPLOADED")
		for _, g := range items {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
				g.MediaID, g.Type, orDash(truncate(g.Caption, 40)), g.FilePath, orDash(g.UploadDate))
		}
		w.Flush()
		return nil
	},
}

var createGalleryItem sdk.GalleryItem

var galleryAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a gallery item",
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		created, err := client.Gallery().Create(cmd.Context(), createGalleryItem)
		if err != nil {
			return wrap(cmd.Context(), err)
		}
		fmt.Printf("Added %s (id %d)\n", created.Type, created.MediaID)
		return nil
	},
}

var galleryCaptionCmd = &cobra.Command{
	Use:   "caption [id] [caption]",
	Short: "Set a gallery item's caption",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0], "gallery item")
		if err != nil {
			return err
		}
		client, err := adminClient(cmd.Context())
		if err != nil {
			return err
		}
		current, err := client.Gallery().Get(cmd.Context(), id)
		if err != nil {
			return wrap(cmd.Context(), err)
		}
		current.Caption = args[1]
		if _, err := client.Gallery().Update(cmd.Context(), id, *current); err != nil {
			return wrap(cmd.Context(), err)
		}
		fmt.Printf("Updated caption for item %d\n", id)
		return nil
	},
}

func init() {
	galleryAddCmd.Flags().StringVar(&createGalleryItem.Caption, "caption", "", "Caption")
	galleryAddCmd.Flags().StringVar(&createGalleryItem.FilePath, "file", "", "Media file path")
	galleryAddCmd.Flags().StringVar(&createGalleryItem.Type, "type", sdk.GalleryTypePhoto, "Photo or Video")
	galleryAddCmd.MarkFlagRequired("file")

	GalleryCmd.AddCommand(galleryListCmd)
	GalleryCmd.AddCommand(galleryAddCmd)
	GalleryCmd.AddCommand(galleryCaptionCmd)
	GalleryCmd.AddCommand(newDeleteCmd("gallery item", func(ctx context.Context, client *sdk.Client, id int) error {
		return client.Gallery().Delete(ctx, id)
	}))
}
