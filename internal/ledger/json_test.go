package ledger

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fintrack-dev/fintrack/internal/model"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func sampleTransactions() []model.Transaction {
	return []model.Transaction{
		{Date: date(2024, 1, 5), Description: "Paycheck", Category: "Salary", Amount: dec("2000")},
		{Date: date(2024, 1, 6), Description: "Groceries", Category: "Food", Amount: dec("-150.50")},
		{Date: date(2024, 1, 7), Description: "Rent", Category: "Housing", Amount: dec("-800")},
	}
}

func TestRoundTrip(t *testing.T) {
	txs := sampleTransactions()

	var buf bytes.Buffer
	err := WriteTransactions(&buf, txs)
	require.NoError(t, err)

	got, err := ReadTransactions(&buf)
	require.NoError(t, err)
	require.Len(t, got, 3)

	for i := range txs {
		assert.True(t, txs[i].Date.Equal(got[i].Date), "date mismatch row %d", i)
		assert.Equal(t, txs[i].Description, got[i].Description)
		assert.Equal(t, txs[i].Category, got[i].Category)
		assert.True(t, txs[i].Amount.Equal(got[i].Amount), "amount mismatch row %d: got %s", i, got[i].Amount)
	}
}

func TestWrite_AmountIsBareNumber(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTransactions(&buf, sampleTransactions())
	require.NoError(t, err)
	contents := buf.String()

	assert.Contains(t, contents, `"amount": 2000`)
	assert.Contains(t, contents, `"amount": -150.5`)
	assert.NotContains(t, contents, `"amount": "`, "amounts must not be quoted strings")
}

func TestWrite_Empty(t *testing.T) {
	var buf bytes.Buffer
	err := WriteTransactions(&buf, nil)
	require.NoError(t, err)
	assert.Equal(t, "[]\n", buf.String())
}

func TestRead_Empty(t *testing.T) {
	txs, err := ReadTransactions(strings.NewReader(""))
	require.NoError(t, err)
	assert.Nil(t, txs)

	txs, err = ReadTransactions(strings.NewReader("  \n\t"))
	require.NoError(t, err)
	assert.Nil(t, txs)
}

func TestRead_EmptyArray(t *testing.T) {
	txs, err := ReadTransactions(strings.NewReader("[]"))
	require.NoError(t, err)
	assert.Empty(t, txs)
}

func TestRead_MalformedJSON(t *testing.T) {
	_, err := ReadTransactions(strings.NewReader("{ this is not json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing ledger JSON")
}

func TestRead_NotAnArray(t *testing.T) {
	_, err := ReadTransactions(strings.NewReader(`{"date": "2024-01-05"}`))
	require.Error(t, err)
}

func TestRead_BadDate(t *testing.T) {
	in := `[{"date": "2024-13-40", "description": "x", "category": "Misc", "amount": 1}]`
	_, err := ReadTransactions(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 1")
	assert.Contains(t, err.Error(), "parsing date")
}

func TestRead_NonNumericAmount(t *testing.T) {
	in := `[{"date": "2024-01-05", "description": "x", "category": "Misc", "amount": "abc"}]`
	_, err := ReadTransactions(strings.NewReader(in))
	require.Error(t, err)
}

func TestRead_MissingAmount(t *testing.T) {
	in := `[{"date": "2024-01-05", "description": "x", "category": "Misc"}]`
	_, err := ReadTransactions(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "amount")
}

func TestRead_BadRecordReportsPosition(t *testing.T) {
	in := `[
  {"date": "2024-01-05", "description": "ok", "category": "Misc", "amount": 1},
  {"date": "nope", "description": "bad", "category": "Misc", "amount": 2}
]`
	_, err := ReadTransactions(strings.NewReader(in))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 2")
}

func TestRead_InsertionOrderPreserved(t *testing.T) {
	// Dates out of order and a duplicate row; file order wins.
	in := `[
  {"date": "2024-02-01", "description": "later", "category": "Misc", "amount": 1},
  {"date": "2024-01-01", "description": "earlier", "category": "Misc", "amount": 2},
  {"date": "2024-01-01", "description": "earlier", "category": "Misc", "amount": 2}
]`
	txs, err := ReadTransactions(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, txs, 3)
	assert.Equal(t, "later", txs[0].Description)
	assert.Equal(t, "earlier", txs[1].Description)
	assert.Equal(t, "earlier", txs[2].Description)
}

func TestDecimalPrecision(t *testing.T) {
	// 0.1 + 0.2 must survive a file round-trip as exactly 0.3.
	txs := []model.Transaction{
		{Date: date(2024, 1, 5), Description: "a", Category: "Misc", Amount: dec("0.1").Add(dec("0.2"))},
	}

	var buf bytes.Buffer
	require.NoError(t, WriteTransactions(&buf, txs))

	got, err := ReadTransactions(&buf)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Amount.Equal(dec("0.3")), "got %s", got[0].Amount)
}
