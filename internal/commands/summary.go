package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/summary"
)

func newSummaryCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show totals and the category breakdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSummary(cmd, opts)
		},
	}

	return cmd
}

func runSummary(cmd *cobra.Command, opts *rootOptions) error {
	store, _, err := openStore(opts)
	if err != nil {
		return err
	}

	eng := summary.NewEngine(store)
	totals := eng.Totals()

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Income:   %s\n", totals.Income.StringFixed(2))
	fmt.Fprintf(out, "Expenses: %s\n", totals.Expense.StringFixed(2))
	fmt.Fprintf(out, "Net:      %s\n", totals.Net.StringFixed(2))

	sums := eng.ByCategory()
	if len(sums) == 0 {
		return nil
	}

	fmt.Fprintln(out, "\nBy category:")
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, bar := range eng.ChartBars() {
		fmt.Fprintf(w, "%s\t%s\n", displayCategory(bar.Category), sums[bar.Category].StringFixed(2))
	}
	return w.Flush()
}
