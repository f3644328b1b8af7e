package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SystemHandler provides operational endpoints.
type SystemHandler struct {
	metrics http.Handler
}

// NewSystemHandler creates a new SystemHandler. metrics serves the
// Prometheus exposition.
func NewSystemHandler(metrics http.Handler) *SystemHandler {
	return &SystemHandler{metrics: metrics}
}

// Routes registers the health and metrics routes on the given chi router.
func (h *SystemHandler) Routes(r chi.Router) {
	r.Get("/healthz", h.Health)
	r.Method(http.MethodGet, "/metrics", h.metrics)
}

// Health reports that the process is serving requests.
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
