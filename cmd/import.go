package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ellawright/folio/internal/content"
	"github.com/ellawright/folio/internal/ui"
)

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Import artworks from markdown files",
	Long: `Scans a directory for markdown files and adds one artwork per file.
Frontmatter fields title, year, medium, dimensions and image map onto the
artwork; a missing title is derived from the file name.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		store, _ := openContent(log)
		store.Hydrate()

		n, err := content.ImportArtworks(store, args[0], log)
		if err != nil {
			return fmt.Errorf("import artworks: %w", err)
		}
		ui.OK(fmt.Sprintf("imported %d artwork(s)", n))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
