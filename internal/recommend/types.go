// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package recommend

import (
	"errors"
	"time"

	"github.com/Pranjal0798/product-recommendation-system/internal/catalog"
)

var (
	// ErrEmptyHistory means the customer has no purchases to compare against.
	ErrEmptyHistory = errors.New("no purchase history found for this customer")

	// ErrNoCandidates means the customer has bought every product.
	ErrNoCandidates = errors.New("customer has purchased all available products")
)

// Request represents a recommendation request.
type Request struct {
	// Customer is the customer to recommend for.
	Customer *catalog.Customer `json:"-"`

	// Limit is the number of recommendations to return.
	// Defaults to Config.Limit if zero, capped at MaxLimit.
	Limit int `json:"limit,omitempty"`

	// RequestID correlates logs. Generated if empty.
	RequestID string `json:"request_id,omitempty"`
}

// ScoredProduct is a candidate with its mean similarity to the history.
type ScoredProduct struct {
	// Product is the recommended catalog product.
	Product *catalog.Product `json:"product"`

	// Score is the mean similarity over the purchase history.
	Score float64 `json:"score"`

	// Breakdown is the mean contribution of each component to Score.
	Breakdown Breakdown `json:"breakdown"`

	// SharedFeatures lists tags the product shares with any purchased product.
	SharedFeatures []string `json:"shared_features,omitempty"`
}

// Response contains ranked recommendations and metadata.
type Response struct {
	// Items is the ordered list of recommendations, best first.
	Items []ScoredProduct `json:"items"`

	// TotalCandidates is the number of unpurchased products scored.
	TotalCandidates int `json:"total_candidates"`

	// Metadata contains timing and diagnostic information.
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata contains timing and diagnostic information.
type ResponseMetadata struct {
	RequestID   string    `json:"request_id"`
	CustomerID  string    `json:"customer_id"`
	HistorySize int       `json:"history_size"`
	LatencyMS   int64     `json:"latency_ms"`
	CacheHit    bool      `json:"cache_hit"`
	Timestamp   time.Time `json:"timestamp"`
}

// Metrics tracks engine usage since start.
type Metrics struct {
	RequestCount int64 `json:"request_count"`
	ErrorCount   int64 `json:"error_count"`
}
