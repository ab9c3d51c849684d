package summary

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/budgie/internal/summary"
	"github.com/MrJamesThe3rd/budgie/internal/transaction"
)

type Handler struct {
	txSvc *transaction.Service
}

func NewHandler(txSvc *transaction.Service) *Handler {
	return &Handler{txSvc: txSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.get)
}

type trendPointResponse struct {
	Date    string `json:"date"`
	Income  int64  `json:"income"`
	Expense int64  `json:"expense"`
}

type summaryResponse struct {
	TotalIncome       int64                `json:"total_income"`
	TotalExpense      int64                `json:"total_expense"`
	Balance           int64                `json:"balance"`
	CategoryBreakdown map[string]int64     `json:"category_breakdown"`
	Trend             []trendPointResponse `json:"trend"`
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(chi.URLParam(r, "username"))
	if username == "" {
		http.Error(w, "username is required", http.StatusBadRequest)
		return
	}

	txs, err := h.txSvc.List(r.Context(), username)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	sum := summary.Compute(txs)

	trend := make([]trendPointResponse, len(sum.Trend))
	for i, p := range sum.Trend {
		trend[i] = trendPointResponse{
			Date:    p.Date.Format(time.DateOnly),
			Income:  p.Income,
			Expense: p.Expense,
		}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(summaryResponse{
		TotalIncome:       sum.Totals.Income,
		TotalExpense:      sum.Totals.Expense,
		Balance:           sum.Totals.Balance,
		CategoryBreakdown: sum.Breakdown,
		Trend:             trend,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}
