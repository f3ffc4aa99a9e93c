package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ellawright/folio/internal/site"
	"github.com/ellawright/folio/internal/ui"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the portfolio as a static site",
	Long: `Renders the current content (defaults overlaid with anything saved
from the editor) into plain HTML under the configured output directory.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		store, _ := openContent(log)
		store.Hydrate()

		b := &site.Builder{
			Store:      store,
			OutputDir:  appConfig.OutputDir,
			ImageHosts: appConfig.ImageHosts,
			Log:        log,
		}
		if err := b.Build(); err != nil {
			return fmt.Errorf("build site: %w", err)
		}
		ui.OK("site built in " + appConfig.OutputDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
