// Package summary computes aggregate views over a user's transaction table.
// Everything here is a pure function over the rows, cheap enough to recompute
// on every render.
package summary

import (
	"sort"
	"time"

	"github.com/MrJamesThe3rd/budgie/internal/transaction"
)

// Totals holds the three headline figures, in cents.
type Totals struct {
	Income  int64
	Expense int64
	Balance int64
}

// TrendPoint is the income and expense sum for a single date. Dates with only
// one kind carry an explicit zero for the other, not a gap.
type TrendPoint struct {
	Date    time.Time
	Income  int64
	Expense int64
}

// Summary bundles every aggregate a view needs.
type Summary struct {
	Totals    Totals
	Breakdown map[string]int64
	Trend     []TrendPoint
}

func TotalIncome(txs []transaction.Transaction) int64 {
	return sumByType(txs, transaction.TypeIncome)
}

func TotalExpense(txs []transaction.Transaction) int64 {
	return sumByType(txs, transaction.TypeExpense)
}

// Balance is total income minus total expense. It can go negative.
func Balance(txs []transaction.Transaction) int64 {
	return TotalIncome(txs) - TotalExpense(txs)
}

func sumByType(txs []transaction.Transaction, kind transaction.Type) int64 {
	var total int64

	for _, tx := range txs {
		if tx.Type == kind {
			total += tx.Amount
		}
	}

	return total
}

// CategoryBreakdown sums expense amounts per category. Income rows are
// ignored. The map is empty when there are no expense rows; callers show a
// placeholder instead of a chart in that case.
func CategoryBreakdown(txs []transaction.Transaction) map[string]int64 {
	breakdown := make(map[string]int64)

	for _, tx := range txs {
		if tx.Type == transaction.TypeExpense {
			breakdown[tx.Category] += tx.Amount
		}
	}

	return breakdown
}

// Trend sums amounts per date and kind, sorted by date ascending. Every date
// that appears in the table yields one point with both kinds filled in.
func Trend(txs []transaction.Transaction) []TrendPoint {
	byDate := make(map[time.Time]*TrendPoint)

	for _, tx := range txs {
		p, ok := byDate[tx.Date]
		if !ok {
			p = &TrendPoint{Date: tx.Date}
			byDate[tx.Date] = p
		}

		switch tx.Type {
		case transaction.TypeIncome:
			p.Income += tx.Amount
		case transaction.TypeExpense:
			p.Expense += tx.Amount
		}
	}

	points := make([]TrendPoint, 0, len(byDate))
	for _, p := range byDate {
		points = append(points, *p)
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points
}

// Compute builds the full summary in one pass over the helpers.
func Compute(txs []transaction.Transaction) Summary {
	return Summary{
		Totals: Totals{
			Income:  TotalIncome(txs),
			Expense: TotalExpense(txs),
			Balance: Balance(txs),
		},
		Breakdown: CategoryBreakdown(txs),
		Trend:     Trend(txs),
	}
}
