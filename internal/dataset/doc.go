// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

// Package dataset owns the published catalog snapshot and answers queries
// against it.
//
// # Loading
//
// Manager.Load reads the configured purchase file, builds a catalog and
// publishes it as a new Dataset with the next generation number. Loads are
// serialized; Reload refuses to queue behind a running load and returns
// ErrReloadInProgress instead. A failed load leaves the previous snapshot
// published.
//
// # Queries
//
//   - ListCustomers: case-insensitive substring search over ID and label
//   - PurchaseHistory: a customer's purchased products in catalog order
//   - Recommendations: ranked suggestions from the recommend engine
//   - Stats: counts for the published snapshot
//
// Every query reads one snapshot pointer, so a concurrent publish never
// yields a mixed view. Before the first successful load, queries return
// ErrNotLoaded.
//
// # Caching
//
// Recommendation responses are memoized per (generation, customer, limit)
// in an LRU from the cache package. Publishing a snapshot purges it.
package dataset
