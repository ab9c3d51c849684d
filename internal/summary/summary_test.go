package summary_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/budgie/internal/summary"
	"github.com/MrJamesThe3rd/budgie/internal/transaction"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}

	return d
}

func sampleTable() []transaction.Transaction {
	return []transaction.Transaction{
		{Date: date("2024-01-01"), Type: transaction.TypeIncome, Category: "Salary", Amount: 5000000},
		{Date: date("2024-01-02"), Type: transaction.TypeExpense, Category: "Rent", Amount: 1500000},
		{Date: date("2024-01-02"), Type: transaction.TypeExpense, Category: "Food", Amount: 200000},
	}
}

func TestTotals(t *testing.T) {
	txs := sampleTable()

	assert.Equal(t, int64(5000000), summary.TotalIncome(txs))
	assert.Equal(t, int64(1700000), summary.TotalExpense(txs))
	assert.Equal(t, int64(3300000), summary.Balance(txs))
}

func TestBalanceIdentity(t *testing.T) {
	tables := [][]transaction.Transaction{
		nil,
		sampleTable(),
		{
			{Date: date("2024-03-01"), Type: transaction.TypeExpense, Category: "Rent", Amount: 1500000},
		},
	}

	for _, txs := range tables {
		assert.Equal(t, summary.TotalIncome(txs)-summary.TotalExpense(txs), summary.Balance(txs))
	}
}

func TestBalanceCanGoNegative(t *testing.T) {
	txs := []transaction.Transaction{
		{Date: date("2024-01-01"), Type: transaction.TypeExpense, Category: "Rent", Amount: 1500000},
	}

	assert.Equal(t, int64(-1500000), summary.Balance(txs))
}

func TestCategoryBreakdown(t *testing.T) {
	got := summary.CategoryBreakdown(sampleTable())

	// Income rows never contribute to the breakdown.
	assert.Equal(t, map[string]int64{
		"Rent": 1500000,
		"Food": 200000,
	}, got)
}

func TestCategoryBreakdownAccumulates(t *testing.T) {
	txs := []transaction.Transaction{
		{Date: date("2024-01-02"), Type: transaction.TypeExpense, Category: "Food", Amount: 200000},
		{Date: date("2024-01-05"), Type: transaction.TypeExpense, Category: "Food", Amount: 100000},
	}

	assert.Equal(t, map[string]int64{"Food": 300000}, summary.CategoryBreakdown(txs))
}

func TestCategoryBreakdownEmpty(t *testing.T) {
	txs := []transaction.Transaction{
		{Date: date("2024-01-01"), Type: transaction.TypeIncome, Category: "Salary", Amount: 5000000},
	}

	assert.Empty(t, summary.CategoryBreakdown(txs))
}

func TestTrend(t *testing.T) {
	got := summary.Trend(sampleTable())

	assert.Equal(t, []summary.TrendPoint{
		{Date: date("2024-01-01"), Income: 5000000, Expense: 0},
		{Date: date("2024-01-02"), Income: 0, Expense: 1700000},
	}, got)
}

func TestTrendSortsByDate(t *testing.T) {
	txs := []transaction.Transaction{
		{Date: date("2024-02-10"), Type: transaction.TypeExpense, Category: "Rent", Amount: 1500000},
		{Date: date("2024-01-05"), Type: transaction.TypeIncome, Category: "Salary", Amount: 5000000},
		{Date: date("2024-02-10"), Type: transaction.TypeIncome, Category: "Bonus", Amount: 1000000},
	}

	got := summary.Trend(txs)

	assert.Equal(t, []summary.TrendPoint{
		{Date: date("2024-01-05"), Income: 5000000},
		{Date: date("2024-02-10"), Income: 1000000, Expense: 1500000},
	}, got)
}

func TestCompute(t *testing.T) {
	got := summary.Compute(sampleTable())

	assert.Equal(t, int64(3300000), got.Totals.Balance)
	assert.Len(t, got.Breakdown, 2)
	assert.Len(t, got.Trend, 2)
}

func TestComputeEmptyTable(t *testing.T) {
	got := summary.Compute(nil)

	assert.Equal(t, summary.Totals{}, got.Totals)
	assert.Empty(t, got.Breakdown)
	assert.Empty(t, got.Trend)
}
