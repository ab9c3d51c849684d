// Package statement reads bank CSV exports and produces transaction params.
// The column layout is auto-detected by matching headers against known
// profiles; the row's description becomes the transaction category.
package statement

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	enc "github.com/MrJamesThe3rd/budgie/internal/encoding"
	"github.com/MrJamesThe3rd/budgie/internal/transaction"
)

var dateFormats = []string{"2006-01-02", "02/01/2006"}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(r io.Reader) ([]transaction.CreateParams, error) {
	utf8r, err := enc.NewUTF8Reader(r)
	if err != nil {
		return nil, fmt.Errorf("detecting encoding: %w", err)
	}

	reader := csv.NewReader(utf8r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading csv: %w", err)
	}

	profile, cols, headerIdx := detectProfile(rows)
	if profile == nil {
		return nil, fmt.Errorf("no matching statement layout: expected Date/Description with Amount or Debit/Credit columns")
	}

	return parseRows(profile, cols, rows[headerIdx+1:])
}

// colIndex maps column names to their index in the row.
type colIndex map[string]int

// detectProfile scans rows for a header matching a known profile.
func detectProfile(rows [][]string) (*Profile, colIndex, int) {
	for rowIdx, row := range rows {
		cols := make(colIndex)

		for i, cell := range row {
			if name := strings.TrimSpace(cell); name != "" {
				cols[name] = i
			}
		}

		for i := range profiles {
			if matchesProfile(&profiles[i], cols) {
				return &profiles[i], cols, rowIdx
			}
		}
	}

	return nil, nil, 0
}

func matchesProfile(p *Profile, cols colIndex) bool {
	for _, name := range p.requiredCols() {
		if _, ok := cols[name]; !ok {
			return false
		}
	}

	return true
}

// parseRows extracts transaction params from data rows. Rows without a
// parseable date or a usable amount are skipped; statements routinely end in
// footer and balance lines.
func parseRows(p *Profile, cols colIndex, rows [][]string) ([]transaction.CreateParams, error) {
	dateIdx := cols[p.DateCol]
	descIdx := cols[p.DescCol]

	var params []transaction.CreateParams

	for _, row := range rows {
		date, ok := parseDate(row, dateIdx)
		if !ok {
			continue
		}

		desc := cellValue(row, descIdx)
		if desc == "" {
			continue
		}

		amount, kind, ok := parseRowAmount(p, cols, row)
		if !ok {
			continue
		}

		params = append(params, transaction.CreateParams{
			Date:     date,
			Type:     kind,
			Category: desc,
			Amount:   amount,
		})
	}

	return params, nil
}

func parseDate(row []string, idx int) (time.Time, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}

	return time.Time{}, false
}

func parseRowAmount(p *Profile, cols colIndex, row []string) (int64, transaction.Type, bool) {
	switch p.AmountMode {
	case amountSigned:
		return parseSignedAmount(row, cols[p.AmountCol])
	case amountSplit:
		return parseSplitAmount(row, cols[p.DebitCol], cols[p.CreditCol])
	}

	return 0, "", false
}

// parseSignedAmount handles a single signed amount column: negative values
// are expenses, positive values income.
func parseSignedAmount(row []string, idx int) (int64, transaction.Type, bool) {
	s := cellValue(row, idx)
	if s == "" {
		return 0, "", false
	}

	cents, err := parseCents(s)
	if err != nil || cents == 0 {
		return 0, "", false
	}

	if cents < 0 {
		return -cents, transaction.TypeExpense, true
	}

	return cents, transaction.TypeIncome, true
}

// parseSplitAmount handles separate debit/credit columns.
func parseSplitAmount(row []string, debitIdx, creditIdx int) (int64, transaction.Type, bool) {
	if s := cellValue(row, debitIdx); s != "" {
		if cents, err := parseCents(s); err == nil && cents != 0 {
			return abs(cents), transaction.TypeExpense, true
		}
	}

	if s := cellValue(row, creditIdx); s != "" {
		if cents, err := parseCents(s); err == nil && cents != 0 {
			return abs(cents), transaction.TypeIncome, true
		}
	}

	return 0, "", false
}

func cellValue(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}

	return strings.TrimSpace(row[idx])
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}

	return n
}
