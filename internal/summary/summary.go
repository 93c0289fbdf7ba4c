// Package summary computes aggregate views over the ledger.
package summary

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// Lister provides the transactions to aggregate, in insertion order.
type Lister interface {
	All() []model.Transaction
}

// Engine derives summary figures from a transaction source. It keeps no
// state of its own; every call recomputes from the current sequence.
type Engine struct {
	ledger Lister
}

// NewEngine creates an Engine over a transaction source.
func NewEngine(ledger Lister) *Engine {
	return &Engine{ledger: ledger}
}

// Totals holds the headline figures. Income and Expense are both
// non-negative; Net is income minus expense.
type Totals struct {
	Income  decimal.Decimal
	Expense decimal.Decimal
	Net     decimal.Decimal
}

// Bar is one row of the category chart: a label and the absolute value
// of that category's net sum.
type Bar struct {
	Category  string
	Magnitude decimal.Decimal
}

// Totals sums the ledger. Positive amounts count toward income,
// negative amounts toward expense. An empty ledger yields all zeros.
func (e *Engine) Totals() Totals {
	income, expense := decimal.Zero, decimal.Zero
	for _, tx := range e.ledger.All() {
		if tx.Amount.Sign() >= 0 {
			income = income.Add(tx.Amount)
		} else {
			expense = expense.Add(tx.Amount.Neg())
		}
	}
	return Totals{Income: income, Expense: expense, Net: income.Sub(expense)}
}

// ByCategory returns the signed net sum per category label. Every label
// present in the ledger is a key, including labels whose sum is zero.
func (e *Engine) ByCategory() map[string]decimal.Decimal {
	sums := make(map[string]decimal.Decimal)
	for _, tx := range e.ledger.All() {
		sums[tx.Category] = sums[tx.Category].Add(tx.Amount)
	}
	return sums
}

// ChartBars returns one Bar per category, ordered by descending
// magnitude; equal magnitudes order by category label.
func (e *Engine) ChartBars() []Bar {
	sums := e.ByCategory()
	bars := make([]Bar, 0, len(sums))
	for category, sum := range sums {
		bars = append(bars, Bar{Category: category, Magnitude: sum.Abs()})
	}

	sort.Slice(bars, func(i, j int) bool {
		if !bars[i].Magnitude.Equal(bars[j].Magnitude) {
			return bars[i].Magnitude.GreaterThan(bars[j].Magnitude)
		}
		return bars[i].Category < bars[j].Category
	})
	return bars
}

// Categories returns the distinct category labels in the ledger, sorted.
func (e *Engine) Categories() []string {
	seen := make(map[string]bool)
	var categories []string
	for _, tx := range e.ledger.All() {
		if !seen[tx.Category] {
			seen[tx.Category] = true
			categories = append(categories, tx.Category)
		}
	}
	sort.Strings(categories)
	return categories
}
