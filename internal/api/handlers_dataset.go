// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/Pranjal0798/product-recommendation-system/internal/dataset"
	"github.com/Pranjal0798/product-recommendation-system/internal/logging"
	"github.com/Pranjal0798/product-recommendation-system/internal/models"
)

// Stats handles GET /api/v1/stats
// Returns counts for the published dataset and the response cache.
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	s, err := h.data.Stats()
	if err != nil {
		respondDatasetError(w, err, "")
		return
	}

	respondSuccess(w, r, toDatasetStats(s), start)
}

// ReloadDataset handles POST /api/v1/dataset/reload
// Re-reads the configured purchase file. The request carries no path: only
// the file named in configuration can be loaded.
func (h *Handler) ReloadDataset(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	// a client disconnect must not abort a load halfway through
	ds, err := h.data.Reload(context.WithoutCancel(r.Context()))
	if err != nil {
		respondDatasetError(w, err, "")
		return
	}

	s, err := h.data.Stats()
	if err != nil {
		respondDatasetError(w, err, "")
		return
	}

	logging.Ctx(r.Context()).Info().
		Uint64("generation", ds.Generation).
		Str("source", sanitizeLogValue(ds.Source)).
		Msg("dataset reloaded via API")

	respondSuccess(w, r, toDatasetStats(s), start)
}

func toDatasetStats(s dataset.Stats) models.DatasetStats {
	columns := s.Columns
	if columns == nil {
		columns = []string{}
	}
	return models.DatasetStats{
		Source:          s.Source,
		Generation:      s.Generation,
		LoadedAt:        s.LoadedAt,
		LoadDurationMS:  s.LoadDuration.Milliseconds(),
		UniqueProducts:  s.Catalog.Products,
		TotalCustomers:  s.Catalog.Customers,
		TotalPurchases:  s.Catalog.Purchases,
		RowsProcessed:   s.Catalog.Rows,
		RowsIgnored:     s.Catalog.IgnoredRows,
		RowsSkipped:     s.RowsSkipped,
		Columns:         columns,
		CacheHits:       s.Cache.Hits,
		CacheMisses:     s.Cache.Misses,
		CacheEntries:    s.Cache.Size,
		FeatureKeywords: s.Keywords,
	}
}
