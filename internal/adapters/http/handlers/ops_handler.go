package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/architeacher/svc-project-messaging/internal/adapters/http/mappers"
	"github.com/architeacher/svc-project-messaging/internal/infrastructure"
	"github.com/architeacher/svc-project-messaging/internal/ports"
)

const contentTypeJSON = "application/json"

// OpsHandler serves the operational endpoints of the worker process.
type OpsHandler struct {
	healthChecker  ports.HealthChecker
	metricsHandler http.Handler
	logger         infrastructure.Logger
}

func NewOpsHandler(healthChecker ports.HealthChecker, metricsHandler http.Handler, logger infrastructure.Logger) *OpsHandler {
	return &OpsHandler{
		healthChecker:  healthChecker,
		metricsHandler: metricsHandler,
		logger:         logger,
	}
}

// Routes registers the handlers on router. /livez is kept as an alias of /healthz.
func (h *OpsHandler) Routes(router chi.Router) {
	router.Get("/healthz", h.GetLiveness)
	router.Get("/livez", h.GetLiveness)
	router.Get("/readyz", h.GetReadiness)

	if h.metricsHandler != nil {
		router.Method(http.MethodGet, "/metrics", h.metricsHandler)
	}
}

func (h *OpsHandler) GetLiveness(w http.ResponseWriter, r *http.Request) {
	result := h.healthChecker.CheckLiveness(r.Context())

	h.writeJSON(w, mappers.LivenessStatusToHTTP(result.OverallStatus), result)
}

func (h *OpsHandler) GetReadiness(w http.ResponseWriter, r *http.Request) {
	result := h.healthChecker.CheckReadiness(r.Context())

	h.writeJSON(w, mappers.ReadinessStatusToHTTP(result.OverallStatus), result)
}

func (h *OpsHandler) writeJSON(w http.ResponseWriter, statusCode int, body any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error().Err(err).Msg("failed to encode response")
	}
}
