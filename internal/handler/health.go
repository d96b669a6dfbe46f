package handler

import (
	"net/http"

	"github.com/tinyapp/tinyapp/internal/session"
	"github.com/tinyapp/tinyapp/internal/store"
)

// HealthHandler provides liveness and readiness endpoints.
type HealthHandler struct {
	store    store.Store
	sessions session.Store
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(s store.Store, sessions session.Store) *HealthHandler {
	return &HealthHandler{
		store:    s,
		sessions: sessions,
	}
}

// Healthz handles GET /healthz. Liveness only: the process is up.
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz handles GET /readyz. Verifies both backends are reachable.
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	checks := map[string]string{
		"store":    "ok",
		"sessions": "ok",
	}
	healthy := true

	if err := h.store.Ping(r.Context()); err != nil {
		checks["store"] = err.Error()
		healthy = false
	}
	if err := h.sessions.Ping(r.Context()); err != nil {
		checks["sessions"] = err.Error()
		healthy = false
	}

	status := http.StatusOK
	if !healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, checks)
}
