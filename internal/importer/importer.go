package importer

import (
	"io"

	"github.com/MrJamesThe3rd/budgie/internal/transaction"
)

// Format identifies a supported statement file layout.
type Format string

const (
	FormatStatement Format = "statement"
)

type Importer interface {
	Parse(r io.Reader) ([]transaction.CreateParams, error)
}
