package public

import (
	"context"
	"encoding/json"
	"net/http"

	"log/slog"

	"github.com/go-chi/chi/v5"

	"citygis/internal/domain"
	"citygis/internal/geojson"
)

//go:generate mockgen -source=handlers.go -destination=mocks/mock.go
type IncidentReporter interface {
	Report(ctx context.Context, req domain.ReportIncidentRequest) (*domain.Incident, error)
	Get(ctx context.Context, id string) (*domain.Incident, error)
	List(ctx context.Context) ([]*domain.Incident, error)
}

type MapQueries interface {
	ListAll(ctx context.Context) (geojson.FeatureCollection, error)
	FindNearby(ctx context.Context, lat, lng, radiusMeters float64) (geojson.FeatureCollection, error)
}

type Handler struct {
	logger    *slog.Logger
	Incidents IncidentReporter
	Queries   MapQueries
}

func NewHandler(logger *slog.Logger, incidents IncidentReporter, queries MapQueries) *Handler {
	return &Handler{
		logger:    logger,
		Incidents: incidents,
		Queries:   queries,
	}
}

func (h *Handler) ReportIncident(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	var req domain.ReportIncidentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.Warn("invalid JSON", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON"})
		return
	}

	inc, err := h.Incidents.Report(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	l.Info("incident reported",
		slog.String("id", inc.ID),
		slog.String("category", string(inc.Category)),
	)
	h.writeJSON(w, http.StatusCreated, inc)
}

func (h *Handler) ListIncidents(w http.ResponseWriter, r *http.Request) {
	incidents, err := h.Incidents.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]any{
		"incidents": incidents,
		"count":     len(incidents),
	})
}

func (h *Handler) GetIncident(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "missing id"})
		return
	}

	inc, err := h.Incidents.Get(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, inc)
}

// MapIncidents serves every incident location as a GeoJSON
// FeatureCollection, straight off the spatial store.
func (h *Handler) MapIncidents(w http.ResponseWriter, r *http.Request) {
	fc, err := h.Queries.ListAll(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, fc)
}

// NearbyIncidents serves incidents within radius meters of (lat, lng).
// All three query params are required; absence is a client error, not a
// default.
func (h *Handler) NearbyIncidents(w http.ResponseWriter, r *http.Request) {
	l := h.log(r)

	q := r.URL.Query()
	lat, err := parseFloatParam(q, "lat")
	if err != nil {
		l.Warn("bad lat", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	lng, err := parseFloatParam(q, "lng")
	if err != nil {
		l.Warn("bad lng", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	radius, err := parseFloatParam(q, "radius")
	if err != nil {
		l.Warn("bad radius", slog.String("error", err.Error()))
		h.writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	fc, err := h.Queries.FindNearby(r.Context(), lat, lng, radius)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	h.writeJSON(w, http.StatusOK, fc)
}
