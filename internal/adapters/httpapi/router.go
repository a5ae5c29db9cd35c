// Package httpapi exposes a read-only view of the grind session over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/bnema/grindbot/internal/domain"
	"github.com/go-chi/chi/v5"
)

const maxSessionsLimit = 1000

type StatusSource interface {
	Status() domain.SessionSummary
}

type SessionLister interface {
	Recent(ctx context.Context, limit int) ([]domain.SessionRecord, error)
}

type statusResponse struct {
	Label string `json:"label"`
	domain.SessionSummary
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewRouter builds the routes. sessions may be nil when no archive is
// configured; /sessions then answers with an empty list.
func NewRouter(status StatusSource, sessions SessionLister, logger *slog.Logger) *chi.Mux {
	if logger == nil {
		logger = slog.Default()
	}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recovery(logger))

	h := &handler{status: status, sessions: sessions}
	r.Get("/healthz", h.health)
	r.Get("/status", h.currentStatus)
	r.Get("/sessions", h.listSessions)

	return r
}

type handler struct {
	status   StatusSource
	sessions SessionLister
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handler) currentStatus(w http.ResponseWriter, _ *http.Request) {
	summary := h.status.Status()
	writeJSON(w, http.StatusOK, statusResponse{
		Label:          string(summary.Label()),
		SessionSummary: summary,
	})
}

func (h *handler) listSessions(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 || parsed > maxSessionsLimit {
			writeError(w, http.StatusBadRequest, "limit must be an integer between 0 and 1000")
			return
		}
		limit = parsed
	}

	records := []domain.SessionRecord{}
	if h.sessions != nil {
		found, err := h.sessions.Recent(r.Context(), limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		records = append(records, found...)
	}

	writeJSON(w, http.StatusOK, records)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
