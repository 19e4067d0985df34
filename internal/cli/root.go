// Package cli is for command line interactions with the gotoh aligner.
package cli

import (
	"context"
	"io"
	"log"
	"log/slog"

	"github.com/katalvlaran/gotoh/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Version is stamped at build time with -ldflags "-X ...cli.Version=...".
var Version = "0.1.0"

var (
	// cfgFile is the optional --config path
	cfgFile string

	// v resolves defaults, config file, GOTOH_* env and flags
	v = config.NewViper()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "gotoh",
	Short: "Affine-gap pairwise alignment that reports every co-optimal alignment",
	Long: `Affine-gap pairwise alignment (Gotoh) in global or local mode.

gotoh reads two sequences, a scoring table and gap penalties from an input
file, fills the three DP grids and enumerates every alignment that reaches
the optimal score.

Settings come from, lowest precedence first: built-in defaults, the file
given by --config, GOTOH_* environment variables (GOTOH_MAX_PATHS=10) and
command line flags.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		log.Fatalf("gotoh: %v", err)
	}
}

// RootCmd returns the command tree, for documentation generators.
func RootCmd() *cobra.Command { return rootCmd }

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	rootCmd.PersistentFlags().String(config.KeyLogLevel, "info", "log level: debug, info, warn or error")

	// Bind the persistent settings to viper
	bindRootFlags(v)
}

// bindRootFlags binds the persistent settings flags to v.
func bindRootFlags(v *viper.Viper) {
	v.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup(config.KeyLogLevel))
}

// loadConfig merges the optional config file and decodes the settings.
func loadConfig() (config.Config, error) {
	if cfgFile != "" {
		if err := config.ReadFile(v, cfgFile); err != nil {
			return config.Config{}, err
		}
	}

	return config.Load(v)
}

// newLogger returns a text logger on w at level.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
