// Package cmd provides the CLI commands for bookkeeper.
package cmd

import (
	"log/slog"
	"os"

	"github.com/SscSPs/bookkeeper/internal/platform/config"
	"github.com/spf13/cobra"
)

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	cfgFile string
	debug   bool
}

// newRootCmd builds the command tree. Tests build a fresh tree per case.
func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "bookkeeper",
		Short: "Double-entry bookkeeping for sole proprietors",
		Long: `bookkeeper records double-entry transactions and derives
per-account ledgers with running balances.

Storage is selected with STORAGE_BACKEND (csv, sqlite or postgres).

Example:
  bookkeeper add
  bookkeeper journal
  bookkeeper ledger 普通預金
  bookkeeper serve`,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logLevel := slog.LevelWarn
			if opts.debug {
				logLevel = slog.LevelDebug
			}
			setCLILogger(logLevel)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "env file to load (default is .env)")
	rootCmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging")

	rootCmd.AddCommand(
		newAddCmd(opts),
		newJournalCmd(opts),
		newLedgerCmd(opts),
		newAccountsCmd(),
		newServeCmd(opts),
	)
	return rootCmd
}

// Execute runs the root command. It is called by main.main().
func Execute() error {
	return newRootCmd().Execute()
}

func setCLILogger(level slog.Level) {
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
}

// cliLogLevel picks the level once configuration is loaded. --debug wins,
// an explicit LOG_LEVEL comes next, and the CLI otherwise stays at warn.
func (o *globalOptions) cliLogLevel(cfg *config.Config) slog.Level {
	switch {
	case o.debug:
		return slog.LevelDebug
	case os.Getenv("LOG_LEVEL") != "":
		return cfg.LogLevel
	default:
		return slog.LevelWarn
	}
}
