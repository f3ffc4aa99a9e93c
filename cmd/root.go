package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/ellawright/folio/internal/config"
	"github.com/ellawright/folio/internal/content"
	"github.com/ellawright/folio/internal/gate"
	"github.com/ellawright/folio/internal/store/kvstore"
)

var (
	cfgFile   string
	verbose   bool
	appConfig config.Config
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "folio - a single-artist portfolio, editable from the terminal",
	Long: `folio keeps a portfolio site (gallery, about, contact) in a local
content store. Browse it as a TUI, unlock the hidden editor through the
contact form, and build or serve the site as static HTML. All edits live
on this machine only.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initializeConfig()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBrowse()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./folio.yaml or ~/.folio/folio.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
}

func initializeConfig() error {
	v := viper.New()

	v.SetDefault("dataDir", "")
	v.SetDefault("outputDir", "public")
	v.SetDefault("port", 1313)
	v.SetDefault("imageHosts", content.DefaultImageHosts)
	v.SetDefault("secret.name", "edit")
	v.SetDefault("secret.email", "edit@edit.com")
	v.SetDefault("secret.message", "edit")

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(filepath.Join(home, ".folio"))
		}
		v.SetConfigName("folio")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("FOLIO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("read config file: %w", err)
		}
	}

	if err := v.Unmarshal(&appConfig); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if appConfig.DataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		appConfig.DataDir = filepath.Join(home, ".folio")
	}
	return nil
}

// newLogger returns the process logger for non-TUI commands. The TUI owns
// the terminal and always runs with a nop logger.
func newLogger() (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func configuredSecret() gate.Secret {
	return gate.Secret{
		Name:    appConfig.Secret.Name,
		Email:   appConfig.Secret.Email,
		Message: appConfig.Secret.Message,
	}
}

// openContent wires the persistence layer, content store and gate for a
// command. Hydration is left to the caller: the TUI defers it past the
// first frame, CLI commands run it inline.
func openContent(log *zap.Logger) (*content.Store, *gate.Gate) {
	kv := kvstore.Open(appConfig.DataDir, log)
	return content.NewStore(kv, log), gate.New(kv, configuredSecret())
}
