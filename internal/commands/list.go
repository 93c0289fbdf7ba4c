package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/model"
)

func newListCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List transactions in entry order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd, opts)
		},
	}

	return cmd
}

func runList(cmd *cobra.Command, opts *rootOptions) error {
	store, _, err := openStore(opts)
	if err != nil {
		return err
	}

	txs := store.All()
	if len(txs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No transactions recorded yet.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "DATE\tDESCRIPTION\tCATEGORY\tAMOUNT")
	for _, tx := range txs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			tx.Date.Format(model.DateFormat), tx.Description, displayCategory(tx.Category), tx.Amount.StringFixed(2))
	}
	return w.Flush()
}
