// Package report renders the downloadable PDF budget report for a user.
package report

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-pdf/fpdf"

	"github.com/MrJamesThe3rd/budgie/internal/summary"
	"github.com/MrJamesThe3rd/budgie/internal/transaction"
	"github.com/MrJamesThe3rd/budgie/internal/user"
)

// Grid column widths in millimeters, matching the report's fixed layout.
var colWidths = [4]float64{40, 30, 60, 30}

var colTitles = [4]string{"Date", "Type", "Category", "Amount"}

type Service struct {
	dataDir  string
	currency string
}

// NewService creates a report service writing into dataDir, formatting
// amounts with the given currency symbol.
func NewService(dataDir, currency string) *Service {
	return &Service{dataDir: dataDir, currency: currency}
}

// Generate writes the user's budget report and returns its path. The layout
// is fixed: a centered title, the three summary lines, then a bordered grid
// with one row per transaction sorted by date ascending. An empty table
// renders the header row only. Page breaks are left to the layout engine.
func (s *Service) Generate(_ context.Context, username string, txs []transaction.Transaction) (string, error) {
	sorted := make([]transaction.Transaction, len(txs))
	copy(sorted, txs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	totals := summary.Totals{
		Income:  summary.TotalIncome(sorted),
		Expense: summary.TotalExpense(sorted),
		Balance: summary.Balance(sorted),
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 10, fmt.Sprintf("%s's Budget Report", user.Normalize(username)), "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.CellFormat(0, 10, s.amountLine("Total Income", totals.Income), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 10, s.amountLine("Total Expenses", totals.Expense), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 10, s.amountLine("Current Balance", totals.Balance), "", 1, "L", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)

	for i, title := range colTitles {
		pdf.CellFormat(colWidths[i], 10, title, "1", 0, "L", false, 0, "")
	}

	pdf.Ln(-1)

	for _, tx := range sorted {
		pdf.CellFormat(colWidths[0], 10, tx.Date.Format("2006-01-02"), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 10, string(tx.Type), "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[2], 10, tx.Category, "1", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[3], 10, fmt.Sprintf("%s %s", s.currency, transaction.FormatAmount(tx.Amount)), "1", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return "", fmt.Errorf("creating data directory: %w", err)
	}

	path := filepath.Join(s.dataDir, user.Slug(username)+"_budget_report.pdf")

	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}

	return path, nil
}

func (s *Service) amountLine(label string, cents int64) string {
	return fmt.Sprintf("%s: %s %s", label, s.currency, transaction.FormatAmount(cents))
}
