package transaction

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Type represents the kind of transaction (income or expense).
type Type string

const (
	TypeIncome  Type = "Income"
	TypeExpense Type = "Expense"
)

// Valid reports whether t is one of the two known types.
func (t Type) Valid() bool {
	return t == TypeIncome || t == TypeExpense
}

var (
	ErrEmptyCategory   = errors.New("category cannot be empty")
	ErrInvalidAmount   = errors.New("amount must be greater than zero")
	ErrInvalidType     = errors.New("type must be Income or Expense")
	ErrIndexOutOfRange = errors.New("no transaction at that position")
)

// Transaction represents a single recorded income or expense event.
// Rows have no identity beyond their position in the user's table.
type Transaction struct {
	Date     time.Time // calendar date, no time component
	Type     Type
	Category string
	Amount   int64 // amount in cents, always positive
}

// CreateParams carries the raw user input for an add or edit operation.
type CreateParams struct {
	Date     time.Time
	Type     Type
	Category string
	Amount   int64
}

// normalize validates the params and produces the transaction that will be
// stored: category trimmed and title-cased, the date truncated to midnight UTC.
func (p CreateParams) normalize() (Transaction, error) {
	category := strings.TrimSpace(p.Category)
	if category == "" {
		return Transaction{}, ErrEmptyCategory
	}

	if p.Amount <= 0 {
		return Transaction{}, ErrInvalidAmount
	}

	if !p.Type.Valid() {
		return Transaction{}, ErrInvalidType
	}

	return Transaction{
		Date:     truncateToDay(p.Date),
		Type:     p.Type,
		Category: cases.Title(language.Und).String(category),
		Amount:   p.Amount,
	}, nil
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
