// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

/*
Package middleware provides HTTP middleware for the API server.

Key Components:

  - RequestID: assigns or propagates X-Request-ID and seeds the logging context
  - AccessLog: one zerolog line per request
  - PrometheusMetrics: request count, latency and in-flight gauge

All three take and return http.HandlerFunc. The api package adapts them to
chi's func(http.Handler) http.Handler signature.

Ordering:

RequestID must run before AccessLog so log lines carry the request ID.
PrometheusMetrics and AccessLog read the chi route pattern after the handler
returns, when routing has completed.
*/
package middleware
