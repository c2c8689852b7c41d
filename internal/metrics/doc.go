// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

/*
Package metrics provides Prometheus instrumentation for the recommender.

All collectors are registered with the default registry via promauto and
exposed at /metrics.

# Available Metrics

Dataset:

	dataset_loads_total{result}              loads by success or error
	dataset_load_duration_seconds            read plus build time
	dataset_rows{disposition}                processed, ignored and skipped rows
	dataset_generation                       published snapshot number
	dataset_last_success_timestamp           unix time of last good load

Catalog:

	catalog_products, catalog_customers, catalog_purchases

Recommendations:

	recommendation_requests_total{outcome}   served, empty_history, no_candidates, not_found, error
	recommendation_duration_seconds          scoring latency
	recommendation_cache_hits_total
	recommendation_cache_misses_total

API:

	api_requests_total{method,endpoint,status_code}
	api_request_duration_seconds{method,endpoint}
	api_active_requests
	api_rate_limit_hits_total{endpoint}

The endpoint label is the chi route pattern, not the raw path, so customer
IDs never become label values.
*/
package metrics
