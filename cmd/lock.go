package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ellawright/folio/internal/ui"
)

var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Lock the editor",
	Long: `Clears the persisted unlock flag, so the edit surface stays hidden
until the secret triple goes through the contact form again.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, g := openContent(zap.NewNop())
		g.Lock()
		ui.OK("editor locked")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lockCmd)
}
