// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

/*
Package api provides the HTTP interface to the recommendation dataset.

Routes are served by a Chi router. All JSON responses share the
models.APIResponse envelope and carry an ETag.

# Endpoints

	GET  /api/v1/health/live                               liveness probe
	GET  /api/v1/health/ready                              503 until a dataset is published
	GET  /api/v1/customers?search=term                     customer search
	GET  /api/v1/customers/{customerID}/purchases          purchase history
	GET  /api/v1/customers/{customerID}/recommendations    ranked products (?limit=1..1000)
	GET  /api/v1/stats                                     dataset and cache statistics
	POST /api/v1/dataset/reload                            re-read the configured file
	GET  /metrics                                          Prometheus exposition

# Errors

Query failures map to status codes and error codes in models:

	dataset not loaded        503 DATASET_NOT_LOADED
	unknown customer          404 CUSTOMER_NOT_FOUND
	empty purchase history    422 EMPTY_HISTORY
	nothing left to recommend 422 NO_CANDIDATES
	reload already running    409 RELOAD_IN_PROGRESS
	unreadable dataset        500 INGESTION_ERROR
	bad parameters            400 VALIDATION_ERROR
	throttled                 429 RATE_LIMIT_EXCEEDED

# Middleware

Every request passes through RealIP, request ID assignment, access logging,
panic recovery, CORS and response compression. Query routes add per-client
rate limiting (go-chi/httprate), security headers and Prometheus request
metrics; reload has its own stricter limit.
*/
package api
