package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/importer"
)

func newExportCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export the ledger as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExport(cmd, opts, args[0])
		},
	}

	return cmd
}

func runExport(cmd *cobra.Command, opts *rootOptions, path string) error {
	store, _, err := openStore(opts)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	if err := importer.WriteTransactions(f, store.All()); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d transactions to %s\n", store.Len(), path)
	return nil
}
