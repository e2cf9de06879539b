// Package cmd provides the CLI commands for resolvconf.
package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/munichmade/resolvconf"
	"github.com/munichmade/resolvconf/internal/config"
	"github.com/munichmade/resolvconf/internal/logging"
)

// Build-time variables set via ldflags.
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildDate = "unknown"
)

var (
	flagDialect    string
	flagCollectAll bool
	flagVerbose    bool
)

// settings holds the stored CLI configuration, loaded before any command runs.
var settings *config.Config

var rootCmd = &cobra.Command{
	Use:   "resolvconf",
	Short: "Parse, validate, and render resolv.conf files",
	Long: `resolvconf reads resolver configuration in the resolv.conf family
of formats:

  - Diagnose common misconfigurations with 'resolvconf check'
  - Inspect a parsed file as structured data with 'resolvconf dump'
  - Rewrite files into canonical form with 'resolvconf fmt'
  - Show the effective search domains with 'resolvconf domains'

Files are parsed with the strict glibc grammar by default; select
another platform's rules with --dialect.`,
	Version: Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		settings = loadSettings()

		level := logging.ParseLevel(settings.Logging.Level)
		if flagVerbose {
			level = logging.LevelDebug
		}
		logging.Setup(level, os.Stderr)
	},
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("resolvconf version {{.Version}}\ncommit: %s\nbuilt: %s\n", Commit, BuildDate))

	rootCmd.PersistentFlags().StringVar(&flagDialect, "dialect", "", "parsing dialect: glibc, permissive, or macos")
	rootCmd.PersistentFlags().BoolVar(&flagCollectAll, "collect-all", false, "report every parse error instead of stopping at the first")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")
}

// loadSettings reads the stored CLI settings, falling back to defaults.
func loadSettings() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		slog.Warn("failed to load config, using defaults", "error", err)
		return config.Default()
	}
	return cfg
}

// newParser builds a Parser from the persistent flags, with stored
// settings filling in anything the flags leave unset.
func newParser() (resolvconf.Parser, error) {
	if settings == nil {
		settings = config.Default()
	}

	name := settings.Parser.Dialect
	if rootCmd.PersistentFlags().Changed("dialect") {
		name = flagDialect
	}
	dialect, err := resolvconf.ParseDialect(name)
	if err != nil {
		return resolvconf.Parser{}, err
	}

	policy := resolvconf.PolicyFailFast
	if settings.Parser.CollectAll || flagCollectAll {
		policy = resolvconf.PolicyCollectAll
	}

	return resolvconf.Parser{Dialect: dialect, Policy: policy}, nil
}
