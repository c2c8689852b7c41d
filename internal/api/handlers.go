// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package api

import (
	"time"

	"github.com/Pranjal0798/product-recommendation-system/internal/dataset"
)

// recommendTimeout bounds a single recommendation computation.
const recommendTimeout = 10 * time.Second

// Handler contains dependencies for API handlers
//
// Handler methods are split across files:
//   - handlers_customers.go: customer search, purchase history, recommendations
//   - handlers_dataset.go: statistics and reload
//   - handlers_health.go: liveness and readiness probes
type Handler struct {
	data      *dataset.Manager
	version   string
	startTime time.Time
}

// NewHandler creates a handler serving queries from data.
//
//	handler := api.NewHandler(manager, version)
//	router := api.NewRouter(handler, chiConfig)
//	http.ListenAndServe(":8080", router.SetupChi())
func NewHandler(data *dataset.Manager, version string) *Handler {
	return &Handler{
		data:      data,
		version:   version,
		startTime: time.Now(),
	}
}
