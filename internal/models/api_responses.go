// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error codes returned in APIError.Code.
const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeDatasetNotLoaded = "DATASET_NOT_LOADED"
	ErrCodeCustomerNotFound = "CUSTOMER_NOT_FOUND"
	ErrCodeEmptyHistory     = "EMPTY_HISTORY"
	ErrCodeNoCandidates     = "NO_CANDIDATES"
	ErrCodeIngestion        = "INGESTION_ERROR"
	ErrCodeReloadInProgress = "RELOAD_IN_PROGRESS"
	ErrCodeRateLimited      = "RATE_LIMIT_EXCEEDED"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"
	ErrCodeInternal         = "INTERNAL_ERROR"
)

// APIResponse is the envelope for every JSON endpoint.
//
// Success:
//
//	{
//	  "status": "success",
//	  "data": {...},
//	  "metadata": {"timestamp": "2026-01-01T12:00:00Z", "query_time_ms": 2}
//	}
//
// Error:
//
//	{
//	  "status": "error",
//	  "data": null,
//	  "error": {"code": "CUSTOMER_NOT_FOUND", "message": "Customer C9999 not found"},
//	  "metadata": {"timestamp": "2026-01-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata describes how a response was produced.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError is a machine-readable error with a human message.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// NewSuccess wraps data, timing from start.
func NewSuccess(data interface{}, start time.Time) APIResponse {
	return APIResponse{
		Status: StatusSuccess,
		Data:   data,
		Metadata: Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	}
}

// NewError builds an error envelope.
func NewError(code, message string, details map[string]interface{}) APIResponse {
	return APIResponse{
		Status:   StatusError,
		Metadata: Metadata{Timestamp: time.Now()},
		Error: &APIError{
			Code:    code,
			Message: message,
			Details: details,
		},
	}
}
