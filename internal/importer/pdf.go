package importer

import (
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"

	"github.com/ledongthuc/pdf"
	"github.com/shopspring/decimal"

	"github.com/fintrack-dev/fintrack/internal/model"
)

// StatementParser pulls transactions out of bank statement PDFs. It
// scans the extracted text for lines carrying a date and an amount;
// headers, footers, and balance lines are skipped.
type StatementParser struct{}

var (
	stmtDatePattern   = regexp.MustCompile(`\b\d{2}/\d{2}/\d{2,4}\b`)
	stmtAmountPattern = regexp.MustCompile(`\$?(\d+(?:,\d{3})*\.\d{2})`)
)

// Format returns the parser name.
func (p *StatementParser) Format() string { return FormatPDF }

// Parse extracts the statement text page by page and scans it for
// transactions.
func (p *StatementParser) Parse(r io.Reader) ([]model.Transaction, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading statement: %w", err)
	}

	rd, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("opening statement PDF: %w", err)
	}

	var txs []model.Transaction
	for pageIndex := 1; pageIndex <= rd.NumPage(); pageIndex++ {
		page := rd.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			return nil, fmt.Errorf("extracting text from page %d: %w", pageIndex, err)
		}
		txs = append(txs, ExtractTransactions(strings.Split(text, "\n"))...)
	}
	return txs, nil
}

// ExtractTransactions scans statement text lines for transactions. A
// usable line carries a date and a dollar amount; the text between them
// becomes the description. Deposits and credits are recognized by
// keyword, every other amount is treated as an expense.
func ExtractTransactions(lines []string) []model.Transaction {
	var txs []model.Transaction
	for _, line := range lines {
		if len(strings.TrimSpace(line)) < 10 {
			continue
		}

		dateLoc := stmtDatePattern.FindStringIndex(line)
		if dateLoc == nil {
			continue
		}
		date, err := parseStatementDate(line[dateLoc[0]:dateLoc[1]])
		if err != nil {
			continue
		}

		m := stmtAmountPattern.FindStringSubmatchIndex(line)
		if m == nil {
			continue
		}
		amountStr := strings.ReplaceAll(line[m[2]:m[3]], ",", "")
		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			continue
		}
		if !isStatementCredit(line) {
			amount = amount.Neg()
		}

		var description string
		if m[0] > dateLoc[1] {
			description = strings.TrimSpace(line[dateLoc[1]:m[0]])
		}

		txs = append(txs, model.Transaction{
			Date:        date,
			Description: description,
			Amount:      amount,
		})
	}
	return txs
}

// isStatementCredit reports whether a statement line describes money in.
func isStatementCredit(line string) bool {
	l := strings.ToLower(line)
	return strings.Contains(l, "deposit") ||
		strings.Contains(l, "credit") ||
		strings.Contains(l, "payment received")
}

func parseStatementDate(s string) (time.Time, error) {
	if len(s) == len("01/02/2006") {
		return time.Parse("01/02/2006", s)
	}
	return time.Parse("01/02/06", s)
}
