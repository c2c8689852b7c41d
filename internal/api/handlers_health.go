// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package api

import (
	"net/http"
	"time"

	"github.com/Pranjal0798/product-recommendation-system/internal/models"
)

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK whenever the process can serve HTTP.
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data: map[string]interface{}{
			"alive":  true,
			"uptime": time.Since(h.startTime).Seconds(),
		},
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK once a dataset has been published, 503 before that.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	health := models.HealthStatus{
		Status:  "not_ready",
		Version: h.version,
	}
	status := http.StatusServiceUnavailable

	if ds, err := h.data.Current(); err == nil {
		health.Status = "ready"
		health.Ready = true
		health.Generation = ds.Generation
		health.Products = ds.Catalog.Len()
		status = http.StatusOK
	}

	respondJSON(w, status, &models.APIResponse{
		Status: models.StatusSuccess,
		Data:   health,
		Metadata: models.Metadata{
			Timestamp: time.Now(),
		},
	})
}
