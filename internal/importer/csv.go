package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// Header is the CSV header for the exchange format. The export command
// writes this layout and the csv import format reads it back.
const Header = "date,description,category,amount"

const (
	numFields   = 4
	colDate     = 0
	colDesc     = 1
	colCategory = 2
	colAmount   = 3
)

// CSVParser parses the fintrack CSV exchange format.
type CSVParser struct{}

// Format returns the parser name.
func (p *CSVParser) Format() string { return FormatCSV }

// Parse reads an exchange CSV and returns its transactions.
func (p *CSVParser) Parse(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var txs []model.Transaction
	for i, rec := range records[1:] {
		tx, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// WriteTransactions writes transactions in the exchange format,
// header included.
func WriteTransactions(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, tx := range txs {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row ([]string).
// The amount keeps its exact decimal representation so a round-trip is
// lossless.
func MarshalTransaction(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = tx.Date.Format(model.DateFormat)
	row[colDesc] = tx.Description
	row[colCategory] = tx.Category
	row[colAmount] = tx.Amount.String()
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}
	return model.New(record[colDate], record[colDesc], record[colCategory], record[colAmount])
}
