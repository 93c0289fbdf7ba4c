package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/summary"
)

func newCategoriesCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List known category labels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCategories(cmd, opts)
		},
	}

	return cmd
}

func runCategories(cmd *cobra.Command, opts *rootOptions) error {
	store, cfg, err := openStore(opts)
	if err != nil {
		return err
	}

	// Before any transactions exist, offer the configured defaults.
	categories := summary.NewEngine(store).Categories()
	if len(categories) == 0 {
		categories = cfg.Categories.Defaults
	}

	for _, category := range categories {
		fmt.Fprintln(cmd.OutOrStdout(), displayCategory(category))
	}
	return nil
}
