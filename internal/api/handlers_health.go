// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/models"
)

// Health handles GET /api/v1/health.
//
// The dataset is validated before the server starts, so a running server
// is always healthy. An open poster circuit is reported as "degraded"
// because recommendations still work with placeholder images.
//
// @Summary Get service health
// @Description Returns catalog size, data source, poster lookup state and uptime. Status is "degraded" while the TMDB circuit breaker is open.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse{data=models.HealthStatus} "Health status"
// @Failure 429 {object} models.APIResponse "Rate limit exceeded"
// @Router /health [get]
func (h *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	metrics.UpdateUptime(h.startTime)

	status := models.HealthStatus{
		Status:        "healthy",
		Version:       h.version,
		DataSource:    h.config.Data.Source,
		CatalogSize:   h.engine.Index().Len(),
		PostersActive: h.posters.Enabled(),
		PosterBreaker: h.posters.BreakerState(),
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}
	if status.PosterBreaker == "open" {
		status.Status = "degraded"
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data:   status,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthLive handles GET /api/v1/health/live for liveness probes.
//
// @Summary Liveness probe
// @Description Returns 200 while the process is serving.
// @Tags Core
// @Produce json
// @Success 200 {object} models.APIResponse "Service is alive"
// @Router /health/live [get]
func (h *Handler) HealthLive(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data:   map[string]string{"status": "alive"},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
