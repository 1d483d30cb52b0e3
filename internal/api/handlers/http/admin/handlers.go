package admin

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"citygis/internal/domain"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type AdminIncidents interface {
	UpdateStatus(ctx context.Context, id string, status domain.IncidentStatus) error
	Delete(ctx context.Context, id string) error
}

type Handler struct {
	logger    *slog.Logger
	Incidents AdminIncidents
}

func NewHandler(logger *slog.Logger, incidents AdminIncidents) *Handler {
	return &Handler{
		logger:    logger,
		Incidents: incidents,
	}
}

func (h *Handler) log(r *http.Request) *slog.Logger {
	reqID := chimw.GetReqID(r.Context())
	if reqID == "" {
		return h.logger
	}
	return h.logger.With(slog.String("request_id", reqID))
}

func (h *Handler) UpdateIncidentStatus(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id := chi.URLParam(r, "id")
	if id == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing id"})
		return
	}

	var req domain.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	if err := h.Incidents.UpdateStatus(r.Context(), id, req.Status); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incident status updated",
		slog.String("id", id),
		slog.String("status", string(req.Status)),
	)
	h.writeJSON(w, http.StatusOK, map[string]string{"id": id, "status": string(req.Status)})
}

// DeleteIncident removes an incident from both stores; the service keeps
// them consistent or reports the failure.
func (h *Handler) DeleteIncident(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	id := chi.URLParam(r, "id")
	if id == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing id"})
		return
	}

	if err := h.Incidents.Delete(r.Context(), id); err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incident deleted", slog.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}
