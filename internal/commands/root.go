// Package commands wires the CLI onto the ledger store and summary
// engine. Every subcommand is a thin view over one core operation.
package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/buildinfo"
	"github.com/fintrack-dev/fintrack/internal/config"
	"github.com/fintrack-dev/fintrack/internal/ledger"
)

// uncategorized is the label shown and stored when the user leaves the
// category blank.
const uncategorized = "Uncategorized"

// ledgerPathEnv overrides the configured transaction file location.
const ledgerPathEnv = "FINTRACK_LEDGER"

// rootOptions holds the persistent flag values shared by subcommands.
type rootOptions struct {
	configPath string
	ledgerPath string
	verbose    bool
}

// NewRootCommand creates the root CLI command with all subcommands
// registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "fintrack",
		Short:   "Personal finance ledger",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// .env is optional for local overrides; a missing file is fine.
			_ = godotenv.Load()
			setupLogger(opts.verbose)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultFileName, "config file")
	rootCmd.PersistentFlags().StringVar(&opts.ledgerPath, "ledger", "", "transaction file (overrides config and "+ledgerPathEnv+")")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newInitCommand(opts))
	rootCmd.AddCommand(newAddCommand(opts))
	rootCmd.AddCommand(newListCommand(opts))
	rootCmd.AddCommand(newSummaryCommand(opts))
	rootCmd.AddCommand(newChartCommand(opts))
	rootCmd.AddCommand(newCategoriesCommand(opts))
	rootCmd.AddCommand(newImportCommand(opts))
	rootCmd.AddCommand(newExportCommand(opts))

	return rootCmd
}

func setupLogger(verbose bool) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

// resolveLedgerPath picks the backing file: flag, then environment,
// then config file, then the built-in default.
func resolveLedgerPath(flagValue string, cfg *config.Config) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv(ledgerPathEnv); env != "" {
		return env
	}
	if cfg.Ledger.Path != "" {
		return cfg.Ledger.Path
	}
	return config.DefaultLedgerFile
}

// openStore loads configuration and the ledger for a subcommand.
func openStore(opts *rootOptions) (*ledger.Store, *config.Config, error) {
	cfg, err := config.LoadOrDefault(opts.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	store := ledger.NewStore(resolveLedgerPath(opts.ledgerPath, cfg))
	if err := store.Load(); err != nil {
		return nil, nil, err
	}
	return store, cfg, nil
}

// displayCategory maps a blank stored category to the Uncategorized
// label for output. Hand-edited files may carry empty categories even
// though the add command fills them in.
func displayCategory(category string) string {
	if category == "" {
		return uncategorized
	}
	return category
}
