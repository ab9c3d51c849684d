package report

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/MrJamesThe3rd/budgie/internal/report"
	"github.com/MrJamesThe3rd/budgie/internal/transaction"
)

type Handler struct {
	reportSvc *report.Service
	txSvc     *transaction.Service
}

func NewHandler(reportSvc *report.Service, txSvc *transaction.Service) *Handler {
	return &Handler{reportSvc: reportSvc, txSvc: txSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.generate)
	r.Get("/download", h.download)
}

type generateResponse struct {
	Path string `json:"path"`
	Rows int    `json:"rows"`
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	username, txs, ok := h.loadTable(w, r)
	if !ok {
		return
	}

	path, err := h.reportSvc.Generate(r.Context(), username, txs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(generateResponse{Path: path, Rows: len(txs)}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	username, txs, ok := h.loadTable(w, r)
	if !ok {
		return
	}

	path, err := h.reportSvc.Generate(r.Context(), username, txs)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", filepath.Base(path)))

	http.ServeFile(w, r, path)
}

func (h *Handler) loadTable(w http.ResponseWriter, r *http.Request) (string, []transaction.Transaction, bool) {
	username := strings.TrimSpace(chi.URLParam(r, "username"))
	if username == "" {
		http.Error(w, "username is required", http.StatusBadRequest)
		return "", nil, false
	}

	txs, err := h.txSvc.List(r.Context(), username)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return "", nil, false
	}

	return username, txs, true
}
