// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package api

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/Pranjal0798/product-recommendation-system/internal/logging"
	"github.com/Pranjal0798/product-recommendation-system/internal/middleware"
	"github.com/Pranjal0798/product-recommendation-system/internal/models"
	"github.com/Pranjal0798/product-recommendation-system/internal/validation"
)

// sanitizeLogValue escapes control characters so request-derived strings
// cannot forge log lines.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// respondJSON sends a JSON response with proper headers
func respondJSON(w http.ResponseWriter, status int, response *models.APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Vary", "Accept-Encoding")

	data, err := json.Marshal(response)
	if err != nil {
		logging.Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("ETag", generateETag(data))

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// respondSuccess wraps data in the success envelope.
func respondSuccess(w http.ResponseWriter, r *http.Request, data interface{}, start time.Time) {
	resp := models.NewSuccess(data, start)
	resp.Metadata.RequestID = middleware.GetRequestID(r.Context())
	respondJSON(w, http.StatusOK, &resp)
}

// generateETag creates a quoted ETag from data using FNV-1a.
func generateETag(data []byte) string {
	hash := uint32(2166136261)
	for _, b := range data {
		hash ^= uint32(b)
		hash *= 16777619
	}
	return `"` + strconv.FormatUint(uint64(hash), 16) + `"`
}

// respondError sends an error response
func respondError(w http.ResponseWriter, status int, code, message string, err error) {
	if err != nil {
		logging.Error().
			Str("code", sanitizeLogValue(code)).
			Str("error", sanitizeLogValue(err.Error())).
			Int("status", status).
			Msg("API Error")
	}

	resp := models.NewError(code, message, nil)
	respondJSON(w, status, &resp)
}

// respondValidationError sends a 400 carrying the field details.
func respondValidationError(w http.ResponseWriter, apiErr *models.APIError) {
	resp := models.NewError(apiErr.Code, apiErr.Message, apiErr.Details)
	respondJSON(w, http.StatusBadRequest, &resp)
}

// validateRequest validates a struct using go-playground/validator.
// Returns nil if validation passes, or a models.APIError if validation fails.
//
//	req := CustomerRequest{CustomerID: id}
//	if apiErr := validateRequest(&req); apiErr != nil {
//	    respondValidationError(w, apiErr)
//	    return
//	}
func validateRequest(v interface{}) *models.APIError {
	validationErr := validation.ValidateStruct(v)
	if validationErr == nil {
		return nil
	}

	apiErr := validationErr.ToAPIError()
	return &models.APIError{
		Code:    apiErr.Code,
		Message: apiErr.Message,
		Details: apiErr.Details,
	}
}

// parseIntQuery reads an optional integer query parameter. ok is false when
// the value is present but not an integer.
func parseIntQuery(r *http.Request, key string) (value int, ok bool) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return 0, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return n, true
}

// customerIDParam returns the decoded {customerID} path segment. chi matches
// on RawPath when the request has one, so an ID such as "A/1" arrives as
// "A%2F1" and must be unescaped here.
func customerIDParam(r *http.Request) (string, bool) {
	id := chi.URLParam(r, "customerID")
	if r.URL.RawPath == "" {
		return id, true
	}
	decoded, err := url.PathUnescape(id)
	if err != nil {
		return "", false
	}
	return decoded, true
}
