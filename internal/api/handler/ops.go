// Package handler provides HTTP handlers for the Aina Weather API.
package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/ainaweather/ainaweather/internal/api/models"
	"github.com/ainaweather/ainaweather/internal/api/response"
)

// Pinger checks connectivity to a backing dependency.
type Pinger func(ctx context.Context) error

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	storePing Pinger
}

// NewOpsHandler creates a new OpsHandler. storePing may be nil, in which
// case readiness only reports process liveness.
func NewOpsHandler(version, buildTime string, storePing Pinger) *OpsHandler {
	return &OpsHandler{
		version:   version,
		buildTime: buildTime,
		storePing: storePing,
	}
}

// HealthCheck handles GET /v1/ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// ReadinessCheck handles GET /v1/ops/ready - readiness check. Reports FAIL
// with a 503 when the document store is unreachable.
func (h *OpsHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
	}

	if h.storePing != nil {
		if err := h.storePing(r.Context()); err != nil {
			health.Status = models.HealthStatusFail
			health.Details = map[string]interface{}{"store": err.Error()}
			response.JSON(w, r, http.StatusServiceUnavailable, health)
			return
		}
	}

	response.JSON(w, r, http.StatusOK, health)
}
