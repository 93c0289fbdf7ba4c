package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/config"
	"github.com/fintrack-dev/fintrack/internal/ledger"
)

func newInitCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Set up a directory for fintrack",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd, absDir, opts.ledgerPath)
		},
	}

	return cmd
}

func runInit(cmd *cobra.Command, dir, ledgerPath string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	cfgPath := filepath.Join(dir, config.DefaultFileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists in %s", config.DefaultFileName, dir)
	}

	cfg := config.Default()
	if ledgerPath != "" {
		cfg.Ledger.Path = ledgerPath
	}
	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write an empty ledger so the first run has a file to load, but
	// never clobber transactions that are already there.
	path := cfg.Ledger.Path
	if !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err := ledger.NewStore(path).Save(); err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized fintrack in %s\n", dir)
	return nil
}
