// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for recommendation requests.
const (
	OutcomeServed       = "served"
	OutcomeEmptyHistory = "empty_history"
	OutcomeNoCandidates = "no_candidates"
	OutcomeNotFound     = "not_found"
	OutcomeError        = "error"
)

var (
	// Dataset Metrics
	DatasetLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_loads_total",
			Help: "Total number of dataset load attempts",
		},
		[]string{"result"}, // "success", "error"
	)

	DatasetLoadDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "dataset_load_duration_seconds",
			Help:    "Time to read a purchase file and build the catalog",
			Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		},
	)

	DatasetRows = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "dataset_rows",
			Help: "Rows seen by the last successful load, by disposition",
		},
		[]string{"disposition"}, // "processed", "ignored", "skipped"
	)

	DatasetGeneration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_generation",
			Help: "Generation number of the published catalog snapshot",
		},
	)

	DatasetLastSuccess = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "dataset_last_success_timestamp",
			Help: "Unix timestamp of the last successful dataset load",
		},
	)

	// Catalog Metrics
	CatalogProducts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_products",
			Help: "Number of unique products in the published catalog",
		},
	)

	CatalogCustomers = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_customers",
			Help: "Number of customers in the published catalog",
		},
	)

	CatalogPurchases = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_purchases",
			Help: "Number of distinct customer purchases in the published catalog",
		},
	)

	// Recommendation Metrics
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Total number of recommendation requests by outcome",
		},
		[]string{"outcome"},
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time to score and rank candidates for one customer",
			Buckets: []float64{0.0005, 0.001, 0.0025, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 1},
		},
	)

	RecommendationCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_cache_hits_total",
			Help: "Total number of recommendation cache hits",
		},
	)

	RecommendationCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_cache_misses_total",
			Help: "Total number of recommendation cache misses",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)
)

// LoadSummary carries the counts recorded after a successful load.
type LoadSummary struct {
	Generation  uint64
	Products    int
	Customers   int
	Purchases   int
	Rows        int
	IgnoredRows int
	SkippedRows int64
}

// RecordDatasetLoad records one load attempt. summary is only read on success.
func RecordDatasetLoad(duration time.Duration, summary LoadSummary, err error) {
	DatasetLoadDuration.Observe(duration.Seconds())
	if err != nil {
		DatasetLoadsTotal.WithLabelValues("error").Inc()
		return
	}

	DatasetLoadsTotal.WithLabelValues("success").Inc()
	DatasetLastSuccess.Set(float64(time.Now().Unix()))
	DatasetGeneration.Set(float64(summary.Generation))
	DatasetRows.WithLabelValues("processed").Set(float64(summary.Rows))
	DatasetRows.WithLabelValues("ignored").Set(float64(summary.IgnoredRows))
	DatasetRows.WithLabelValues("skipped").Set(float64(summary.SkippedRows))
	CatalogProducts.Set(float64(summary.Products))
	CatalogCustomers.Set(float64(summary.Customers))
	CatalogPurchases.Set(float64(summary.Purchases))
}

// RecordRecommendation records one recommendation request. duration is only
// observed for requests that were scored.
func RecordRecommendation(outcome string, duration time.Duration) {
	RecommendationRequests.WithLabelValues(outcome).Inc()
	if outcome == OutcomeServed && duration > 0 {
		RecommendationDuration.Observe(duration.Seconds())
	}
}

// RecordCacheLookup records a recommendation cache hit or miss.
func RecordCacheLookup(hit bool) {
	if hit {
		RecommendationCacheHits.Inc()
	} else {
		RecommendationCacheMisses.Inc()
	}
}

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// RecordRateLimitHit records a request rejected by the rate limiter.
func RecordRateLimitHit(endpoint string) {
	APIRateLimitHits.WithLabelValues(endpoint).Inc()
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}
