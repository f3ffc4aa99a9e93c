package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ellawright/folio/internal/site"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site locally and rebuild on content changes",
	Long: `Builds the site, serves the output directory on a local port, and
rebuilds whenever the content data directory changes, so edits made in a
concurrently running editor show up on refresh.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log, err := newLogger()
		if err != nil {
			return err
		}
		defer log.Sync()

		store, _ := openContent(log)
		store.Hydrate()

		port := servePort
		if port == 0 {
			port = appConfig.Port
		}

		srv := &site.Server{
			Builder: &site.Builder{
				Store:      store,
				OutputDir:  appConfig.OutputDir,
				ImageHosts: appConfig.ImageHosts,
				Log:        log,
			},
			WatchDir: appConfig.DataDir,
			Addr:     fmt.Sprintf(":%d", port),
			Log:      log,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "port to serve on (defaults to config)")
	rootCmd.AddCommand(serveCmd)
}
