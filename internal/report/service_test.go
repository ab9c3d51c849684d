package report_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/budgie/internal/report"
	"github.com/MrJamesThe3rd/budgie/internal/transaction"
)

func date(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}

	return d
}

func TestService_Generate(t *testing.T) {
	dir := t.TempDir()
	svc := report.NewService(dir, "Rs.")

	txs := []transaction.Transaction{
		{Date: date("2024-01-02"), Type: transaction.TypeExpense, Category: "Rent", Amount: 1500000},
		{Date: date("2024-01-01"), Type: transaction.TypeIncome, Category: "Salary", Amount: 5000000},
	}

	path, err := svc.Generate(context.Background(), "Asha Rao", txs)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "asha_rao_budget_report.pdf"), path)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, len(data) > 4 && string(data[:4]) == "%PDF")
}

func TestService_GenerateEmptyTable(t *testing.T) {
	dir := t.TempDir()
	svc := report.NewService(dir, "Rs.")

	path, err := svc.Generate(context.Background(), "Asha", nil)
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestService_GenerateOverwrites(t *testing.T) {
	dir := t.TempDir()
	svc := report.NewService(dir, "Rs.")
	ctx := context.Background()

	first, err := svc.Generate(ctx, "Asha", nil)
	require.NoError(t, err)

	second, err := svc.Generate(ctx, "Asha", []transaction.Transaction{
		{Date: date("2024-01-01"), Type: transaction.TypeIncome, Category: "Salary", Amount: 5000000},
	})
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestService_GenerateDoesNotMutateInput(t *testing.T) {
	svc := report.NewService(t.TempDir(), "Rs.")

	txs := []transaction.Transaction{
		{Date: date("2024-02-01"), Type: transaction.TypeExpense, Category: "Rent", Amount: 1500000},
		{Date: date("2024-01-01"), Type: transaction.TypeIncome, Category: "Salary", Amount: 5000000},
	}

	_, err := svc.Generate(context.Background(), "Asha", txs)
	require.NoError(t, err)

	// The report sorts its own copy; the caller's slice keeps its order.
	assert.Equal(t, "Rent", txs[0].Category)
	assert.Equal(t, "Salary", txs[1].Category)
}
