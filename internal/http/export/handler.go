package export

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/export"
	"github.com/lepetitpoucetlyon-sketch/restobooks/internal/fec"
)

type Handler struct {
	svc *export.Service
}

func NewHandler(svc *export.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Routes(r chi.Router) {
	r.Post("/fec", h.metadata)
	r.Post("/fec/download", h.download)
}

type exportRequest struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

type exportMetadataResponse struct {
	Filename     string `json:"filename"`
	Transactions int    `json:"transactions"`
	Lines        int    `json:"lines"`
	Summary      string `json:"summary"`
}

func (h *Handler) generate(w http.ResponseWriter, r *http.Request) (*export.Export, bool) {
	var req exportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil, false
	}

	if req.EndDate.IsZero() {
		http.Error(w, "end_date is required", http.StatusBadRequest)
		return nil, false
	}

	ex, err := h.svc.Generate(r.Context(), fec.Period{Start: req.StartDate, End: req.EndDate})
	if err != nil {
		if errors.Is(err, fec.ErrPayrollNotSupported) {
			http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			return nil, false
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return nil, false
	}

	return ex, true
}

func (h *Handler) metadata(w http.ResponseWriter, r *http.Request) {
	ex, ok := h.generate(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(exportMetadataResponse{
		Filename:     ex.Filename,
		Transactions: ex.Transactions,
		Lines:        len(ex.Entries),
		Summary:      h.svc.Summary(ex),
	}); err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	ex, ok := h.generate(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ex.Filename))

	if _, err := w.Write(ex.Content); err != nil {
		slog.Error("failed to write export", "error", err)
	}
}
