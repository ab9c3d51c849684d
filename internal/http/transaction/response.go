package transaction

import (
	"time"

	"github.com/MrJamesThe3rd/budgie/internal/transaction"
)

type transactionResponse struct {
	Index    int              `json:"index"`
	Date     string           `json:"date"`
	Type     transaction.Type `json:"type"`
	Category string           `json:"category"`
	Amount   int64            `json:"amount"` // cents
	Display  string           `json:"display_amount"`
}

func toResponse(index int, tx transaction.Transaction) transactionResponse {
	return transactionResponse{
		Index:    index,
		Date:     tx.Date.Format(time.DateOnly),
		Type:     tx.Type,
		Category: tx.Category,
		Amount:   tx.Amount,
		Display:  transaction.FormatAmount(tx.Amount),
	}
}

func toResponseList(txs []transaction.Transaction) []transactionResponse {
	resp := make([]transactionResponse, len(txs))
	for i, tx := range txs {
		resp[i] = toResponse(i, tx)
	}

	return resp
}
