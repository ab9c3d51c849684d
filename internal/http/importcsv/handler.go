package importcsv

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/budgie/internal/importer"
	"github.com/MrJamesThe3rd/budgie/internal/transaction"
)

type Handler struct {
	importSvc *importer.Service
	txSvc     *transaction.Service
}

func NewHandler(importSvc *importer.Service, txSvc *transaction.Service) *Handler {
	return &Handler{importSvc: importSvc, txSvc: txSvc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/", h.importCSV)
}

type importedRow struct {
	Index    int              `json:"index"`
	Date     string           `json:"date"`
	Type     transaction.Type `json:"type"`
	Category string           `json:"category"`
	Amount   int64            `json:"amount"` // cents
}

type importResponse struct {
	ImportID uuid.UUID     `json:"import_id"`
	Created  int           `json:"created"`
	Skipped  int           `json:"skipped"`
	Rows     []importedRow `json:"rows"`
}

func (h *Handler) importCSV(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(chi.URLParam(r, "username"))
	if username == "" {
		http.Error(w, "username is required", http.StatusBadRequest)
		return
	}

	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "failed to parse form: "+err.Error(), http.StatusBadRequest)
		return
	}

	format := importer.Format(r.FormValue("format"))
	if format == "" {
		format = importer.FormatStatement
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "file field is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	params, err := h.importSvc.Import(format, file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.txSvc.Register(r.Context(), username); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	importID := uuid.New()

	var (
		rows    []importedRow
		skipped int
	)

	for _, p := range params {
		index, tx, err := h.txSvc.Add(r.Context(), username, p)
		if err != nil {
			// Rows the statement parser let through but the table rejects
			// (e.g. blank description) are skipped, not fatal.
			if isValidationError(err) {
				skipped++
				continue
			}

			http.Error(w, err.Error(), http.StatusInternalServerError)

			return
		}

		rows = append(rows, importedRow{
			Index:    index,
			Date:     tx.Date.Format(time.DateOnly),
			Type:     tx.Type,
			Category: tx.Category,
			Amount:   tx.Amount,
		})
	}

	slog.Info("statement imported",
		"import_id", importID,
		"username", username,
		"created", len(rows),
		"skipped", skipped,
	)

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(importResponse{
		ImportID: importID,
		Created:  len(rows),
		Skipped:  skipped,
		Rows:     rows,
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func isValidationError(err error) bool {
	return errors.Is(err, transaction.ErrEmptyCategory) ||
		errors.Is(err, transaction.ErrInvalidAmount) ||
		errors.Is(err, transaction.ErrInvalidType)
}
