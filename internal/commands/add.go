package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/fintrack-dev/fintrack/internal/model"
)

func newAddCommand(opts *rootOptions) *cobra.Command {
	var date string
	var description string
	var category string
	var amount string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record a transaction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, opts, date, description, category, amount)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "transaction date, YYYY-MM-DD (default today)")
	cmd.Flags().StringVar(&description, "description", "", "what the money was for")
	cmd.Flags().StringVar(&category, "category", "", "category label (default "+uncategorized+")")
	cmd.Flags().StringVar(&amount, "amount", "", "signed amount: positive income, negative expense (required)")
	_ = cmd.MarkFlagRequired("amount")

	return cmd
}

func runAdd(cmd *cobra.Command, opts *rootOptions, date, description, category, amount string) error {
	if date == "" {
		date = time.Now().Format(model.DateFormat)
	}
	if category == "" {
		category = uncategorized
	}

	tx, err := model.New(date, description, category, amount)
	if err != nil {
		return err
	}

	store, _, err := openStore(opts)
	if err != nil {
		return err
	}
	if err := store.Add(tx); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Added %s %s (%s) %s\n",
		tx.Date.Format(model.DateFormat), tx.Description, tx.Category, tx.Amount.StringFixed(2))
	return nil
}
