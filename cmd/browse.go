package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ellawright/folio/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Browse the portfolio in the terminal (default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse()
	},
}

func runBrowse() error {
	store, g := openContent(zap.NewNop())
	return tui.Run(store, g)
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
