package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/importer"
)

func newImportCommand(opts *rootOptions) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import transactions from a bank export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runImport(cmd, opts, args[0], format)
		},
	}

	formats := strings.Join(importer.DefaultRegistry().Formats(), ", ")
	cmd.Flags().StringVar(&format, "format", importer.FormatCSV, "file format: "+formats)

	return cmd
}

func runImport(cmd *cobra.Command, opts *rootOptions, path, format string) error {
	p := importer.DefaultRegistry().Get(format)
	if p == nil {
		return fmt.Errorf("unknown import format %q", format)
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	txs, err := p.Parse(f)
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	if len(txs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No transactions found.")
		return nil
	}

	// Bank formats carry no category column.
	for i := range txs {
		if txs[i].Category == "" {
			txs[i].Category = uncategorized
		}
	}

	store, _, err := openStore(opts)
	if err != nil {
		return err
	}
	if err := store.AddAll(txs); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions from %s\n", len(txs), path)
	return nil
}
