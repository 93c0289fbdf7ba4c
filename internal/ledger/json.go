package ledger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// record is the JSON shape of one transaction in the ledger file. The
// amount is a bare JSON number, never a quoted string.
type record struct {
	Date        string      `json:"date"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Amount      json.Number `json:"amount"`
}

// ReadTransactions decodes a ledger file: a JSON array of records in
// insertion order. An empty (or whitespace-only) input is an empty
// ledger.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading ledger: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var records []record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing ledger JSON: %w", err)
	}

	var txs []model.Transaction
	for i, rec := range records {
		tx, err := unmarshalRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// WriteTransactions encodes transactions as an indented JSON array,
// insertion order preserved.
func WriteTransactions(w io.Writer, txs []model.Transaction) error {
	records := make([]record, len(txs))
	for i, tx := range txs {
		records[i] = marshalRecord(tx)
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding ledger JSON: %w", err)
	}
	data = append(data, '\n')

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}
	return nil
}

func marshalRecord(tx model.Transaction) record {
	return record{
		Date:        tx.Date.Format(model.DateFormat),
		Description: tx.Description,
		Category:    tx.Category,
		Amount:      json.Number(tx.Amount.String()),
	}
}

func unmarshalRecord(rec record) (model.Transaction, error) {
	date, err := time.Parse(model.DateFormat, rec.Date)
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", rec.Date, err)
	}

	amount, err := decimal.NewFromString(rec.Amount.String())
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing amount %q: %w", rec.Amount, err)
	}

	return model.Transaction{
		Date:        date,
		Description: rec.Description,
		Category:    rec.Category,
		Amount:      amount,
	}, nil
}
