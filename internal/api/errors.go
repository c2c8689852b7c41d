// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/Pranjal0798/product-recommendation-system/internal/dataset"
	"github.com/Pranjal0798/product-recommendation-system/internal/ingest"
	"github.com/Pranjal0798/product-recommendation-system/internal/models"
	"github.com/Pranjal0798/product-recommendation-system/internal/recommend"
)

// User-facing messages for recoverable recommendation outcomes.
const (
	msgEmptyHistory = "No purchase history found for this customer"
	msgNoCandidates = "Customer has purchased all available products!"
)

// respondDatasetError maps query and load failures onto HTTP responses.
// Expected outcomes are not logged as errors.
func respondDatasetError(w http.ResponseWriter, err error, customerID string) {
	switch {
	case errors.Is(err, dataset.ErrNotLoaded):
		respondError(w, http.StatusServiceUnavailable, models.ErrCodeDatasetNotLoaded,
			"Dataset has not been loaded yet", nil)
	case errors.Is(err, dataset.ErrCustomerNotFound):
		respondError(w, http.StatusNotFound, models.ErrCodeCustomerNotFound,
			fmt.Sprintf("Customer %s not found", sanitizeLogValue(customerID)), nil)
	case errors.Is(err, recommend.ErrEmptyHistory):
		respondError(w, http.StatusUnprocessableEntity, models.ErrCodeEmptyHistory, msgEmptyHistory, nil)
	case errors.Is(err, recommend.ErrNoCandidates):
		respondError(w, http.StatusUnprocessableEntity, models.ErrCodeNoCandidates, msgNoCandidates, nil)
	case errors.Is(err, dataset.ErrReloadInProgress):
		respondError(w, http.StatusConflict, models.ErrCodeReloadInProgress,
			"A dataset reload is already running", nil)
	case errors.Is(err, ingest.ErrIngestion):
		respondError(w, http.StatusInternalServerError, models.ErrCodeIngestion,
			"Dataset could not be read; the previous dataset is still being served", err)
	case errors.Is(err, context.DeadlineExceeded):
		respondError(w, http.StatusGatewayTimeout, models.ErrCodeInternal, "Request timed out", err)
	default:
		respondError(w, http.StatusInternalServerError, models.ErrCodeInternal, "Internal server error", err)
	}
}
