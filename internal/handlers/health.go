package handlers

import (
	"context"
	"net/http"
	"time"

	"dexsearch/internal/api"
	"dexsearch/internal/contextutil"
)

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	backend            Backend
	healthCheckTimeout time.Duration
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(backend Backend) *HealthHandler {
	return &HealthHandler{
		backend:            backend,
		healthCheckTimeout: 5 * time.Second,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status: "healthy" or "unhealthy"
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`

	// Individual check results
	Checks map[string]string `json:"checks"`

	// Backend's own health reply, when it answered
	Backend *api.HealthStatus `json:"backend,omitempty"`

	// List of issues (only present if status is unhealthy)
	Issues []string `json:"issues,omitempty"`
}

// ServeHTTP reports the dashboard as healthy when the search backend answers.
// Returns 200 OK if healthy, 503 Service Unavailable otherwise.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	checkCtx, cancel := context.WithTimeout(ctx, h.healthCheckTimeout)
	defer cancel()

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    map[string]string{"dashboard": "ok"},
	}
	httpStatus := http.StatusOK

	backendHealth, err := h.backend.Health(checkCtx)
	if err != nil {
		logger.WarnContext(ctx, "backend health check failed", "error", err)
		response.Checks["backend"] = "error"
		response.Issues = append(response.Issues, "backend_unavailable")
		response.Status = "unhealthy"
		httpStatus = http.StatusServiceUnavailable
	} else {
		response.Checks["backend"] = "ok"
		response.Backend = &backendHealth
	}

	writeJSON(ctx, w, httpStatus, response)
}
