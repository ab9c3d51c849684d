package importer

import (
	"fmt"
	"io"

	"github.com/MrJamesThe3rd/budgie/internal/importer/statement"
	"github.com/MrJamesThe3rd/budgie/internal/transaction"
)

type Service struct {
	statementImporter Importer
}

func NewService() *Service {
	return &Service{
		statementImporter: statement.NewParser(),
	}
}

func (s *Service) Import(format Format, r io.Reader) ([]transaction.CreateParams, error) {
	switch format {
	case FormatStatement:
		return s.statementImporter.Parse(r)
	default:
		return nil, fmt.Errorf("unknown format: %s", format)
	}
}
