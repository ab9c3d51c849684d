package view

import (
	"context"
	"fmt"
	"time"

	"github.com/MrJamesThe3rd/budgie/internal/transaction"
)

const storeTimeout = 5 * time.Second

// FormatDate formats a time.Time into YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// FormatMoney renders cents with the configured currency symbol.
func FormatMoney(currency string, cents int64) string {
	return fmt.Sprintf("%s %s", currency, transaction.FormatAmount(cents))
}

// StoreCtx returns a context with a standard timeout for storage operations.
func StoreCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), storeTimeout)
}
