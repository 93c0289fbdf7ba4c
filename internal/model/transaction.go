package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the calendar date layout used in files and flags.
const DateFormat = "2006-01-02"

// Transaction is a single ledger entry. Positive amounts are income,
// negative amounts are expenses.
type Transaction struct {
	Date        time.Time
	Description string
	Category    string // free-text label, e.g. "Food"
	Amount      decimal.Decimal
}

// New builds a Transaction from raw field values. The date must be a
// valid YYYY-MM-DD calendar date and the amount a decimal number; every
// failing field is reported in the returned ValidationError, not just
// the first.
func New(date, description, category, amount string) (Transaction, error) {
	var fields []FieldError

	d, err := time.Parse(DateFormat, date)
	if err != nil {
		fields = append(fields, FieldError{
			Field:  "date",
			Value:  date,
			Reason: "must be a valid YYYY-MM-DD calendar date",
		})
	}

	amt, err := decimal.NewFromString(amount)
	if err != nil {
		fields = append(fields, FieldError{
			Field:  "amount",
			Value:  amount,
			Reason: "must be a decimal number",
		})
	}

	if len(fields) > 0 {
		return Transaction{}, &ValidationError{Fields: fields}
	}

	return Transaction{
		Date:        d,
		Description: description,
		Category:    category,
		Amount:      amt,
	}, nil
}

// Validate re-checks a constructed Transaction before it enters the
// ledger. Amounts are decimals by construction, so only the date can be
// missing.
func (t Transaction) Validate() error {
	if t.Date.IsZero() {
		return &ValidationError{Fields: []FieldError{
			{Field: "date", Reason: "required"},
		}}
	}
	return nil
}
