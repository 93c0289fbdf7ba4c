package commands

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/config"
	"github.com/fintrack-dev/fintrack/internal/summary"
)

func newChartCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Draw category totals as a bar chart",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runChart(cmd, opts)
		},
	}

	return cmd
}

func runChart(cmd *cobra.Command, opts *rootOptions) error {
	store, cfg, err := openStore(opts)
	if err != nil {
		return err
	}

	bars := summary.NewEngine(store).ChartBars()
	if len(bars) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No data to display yet.")
		return nil
	}

	width := cfg.Chart.Width
	if width <= 0 {
		width = config.DefaultChartWidth
	}

	// Bars come back largest first, so the first magnitude is the scale.
	max := bars[0].Magnitude
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	for _, bar := range bars {
		fmt.Fprintf(w, "%s\t%s  %s\n",
			displayCategory(bar.Category), renderBar(bar.Magnitude, max, width), bar.Magnitude.StringFixed(2))
	}
	return w.Flush()
}

// renderBar scales magnitude against max into a run of '#', at least
// one for any non-zero value.
func renderBar(magnitude, max decimal.Decimal, width int) string {
	if magnitude.IsZero() || max.IsZero() {
		return ""
	}

	n := magnitude.Mul(decimal.NewFromInt(int64(width))).Div(max).IntPart()
	if n < 1 {
		n = 1
	}
	if n > int64(width) {
		n = int64(width)
	}
	return strings.Repeat("#", int(n))
}
