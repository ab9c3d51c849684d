package transaction

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a decimal currency string into cents.
// Both "12.34" and "12,34" are accepted; the value must be strictly positive.
func ParseAmount(s string) (int64, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ",", ".")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return 0, ErrInvalidAmount
	}

	cents := d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}

	return cents, nil
}

// FormatAmount renders cents as a two-decimal string, the form used in the
// CSV file, the report, and every display surface.
func FormatAmount(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}
