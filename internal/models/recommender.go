// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package models

import "time"

// CustomerSummary identifies a customer in listings.
type CustomerSummary struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	PurchaseCount int    `json:"purchase_count"`
}

// CustomerList is the response for customer search.
type CustomerList struct {
	Search    string            `json:"search,omitempty"`
	Total     int               `json:"total"`
	Customers []CustomerSummary `json:"customers"`
}

// Product is the wire form of a catalog product.
type Product struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Brand    string   `json:"brand"`
	Price    float64  `json:"price"`
	Rating   float64  `json:"rating"`
	Features []string `json:"features"`
	Color    string   `json:"color,omitempty"`
	Size     string   `json:"size,omitempty"`
	Season   string   `json:"season,omitempty"`
}

// PurchaseHistory lists a customer's purchased products.
type PurchaseHistory struct {
	Customer CustomerSummary `json:"customer"`
	Products []Product       `json:"products"`
}

// ScoreBreakdown is the mean contribution of each similarity component.
type ScoreBreakdown struct {
	Features float64 `json:"features"`
	Category float64 `json:"category"`
	Brand    float64 `json:"brand"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
}

// Recommendation is one ranked product.
type Recommendation struct {
	Rank           int            `json:"rank"`
	Product        Product        `json:"product"`
	Score          float64        `json:"score"`
	Breakdown      ScoreBreakdown `json:"breakdown"`
	SharedFeatures []string       `json:"shared_features,omitempty"`
}

// RecommendationList is the response for a customer's recommendations.
type RecommendationList struct {
	Customer        CustomerSummary  `json:"customer"`
	Recommendations []Recommendation `json:"recommendations"`
	TotalCandidates int              `json:"total_candidates"`
	HistorySize     int              `json:"history_size"`
	Generation      uint64           `json:"generation"`
}

// DatasetStats describes the published dataset.
type DatasetStats struct {
	Source          string    `json:"source"`
	Generation      uint64    `json:"generation"`
	LoadedAt        time.Time `json:"loaded_at"`
	LoadDurationMS  int64     `json:"load_duration_ms"`
	UniqueProducts  int       `json:"unique_products"`
	TotalCustomers  int       `json:"total_customers"`
	TotalPurchases  int       `json:"total_purchases"`
	RowsProcessed   int       `json:"rows_processed"`
	RowsIgnored     int       `json:"rows_ignored"`
	RowsSkipped     int64     `json:"rows_skipped"`
	Columns         []string  `json:"columns"`
	CacheHits       int64     `json:"cache_hits"`
	CacheMisses     int64     `json:"cache_misses"`
	CacheEntries    int       `json:"cache_entries"`
	FeatureKeywords []string  `json:"feature_keywords"`
}

// HealthStatus is the readiness probe body.
type HealthStatus struct {
	Status     string `json:"status"`
	Ready      bool   `json:"ready"`
	Generation uint64 `json:"generation"`
	Products   int    `json:"products"`
	Version    string `json:"version,omitempty"`
}
