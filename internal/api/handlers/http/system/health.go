package system

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"log/slog"
)

// Pinger is implemented by the storage clients; Ping must be cheap.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	logger   *slog.Logger
	document Pinger
	spatial  Pinger
}

func NewHandler(logger *slog.Logger, document, spatial Pinger) *Handler {
	return &Handler{
		logger:   logger,
		document: document,
		spatial:  spatial,
	}
}

// SystemHealth is a bare liveness probe.
func (h *Handler) SystemHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// SystemStatus probes both stores. The endpoint answers 503 when either
// store is down, so load balancers stop routing writes that the saga
// would only have to compensate.
func (h *Handler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	status := map[string]string{
		"document_store": "up",
		"spatial_store":  "up",
	}
	healthy := true

	if err := h.document.Ping(ctx); err != nil {
		h.logger.Warn("document store unreachable", slog.Any("error", err))
		status["document_store"] = "down"
		healthy = false
	}
	if err := h.spatial.Ping(ctx); err != nil {
		h.logger.Warn("spatial store unreachable", slog.Any("error", err))
		status["spatial_store"] = "down"
		healthy = false
	}

	code := http.StatusOK
	if !healthy {
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(status)
}
