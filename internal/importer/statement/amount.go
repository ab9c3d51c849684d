package statement

import (
	"strings"

	"github.com/shopspring/decimal"
)

// parseCents parses a statement amount string into signed cents.
// Handles "1,234.56" (comma thousands) and "1234,56" (comma decimals).
func parseCents(s string) (int64, error) {
	clean := strings.TrimSpace(s)

	if strings.Contains(clean, ".") {
		clean = strings.ReplaceAll(clean, ",", "")
	} else {
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, err
	}

	return d.Mul(decimal.NewFromInt(100)).Round(0).IntPart(), nil
}
