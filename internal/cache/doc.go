// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

/*
Package cache provides in-memory data structures for the recommendation
hot path: a thread-safe LRU cache with TTL support and an Aho-Corasick
keyword automaton.

The dataset layer uses the LRU to memoize recommendation responses per
catalog snapshot, so repeated requests for the same customer skip scoring.
The catalog feature extractor uses the automaton to find vocabulary keywords
in product names in one pass.

# Overview

The cache provides:
  - Generic keys and values
  - O(1) Get, Add and Remove through a map plus doubly-linked list
  - Least recently used eviction at capacity
  - Lazy TTL expiration on Get, plus CleanupExpired for bulk removal
  - Hit, miss and eviction counters

# Usage Example

	c := cache.NewLRU[string, *Response](1024, 10*time.Minute)

	c.Add("C0001", resp)
	if resp, ok := c.Get("C0001"); ok {
	    // serve cached response
	}

	// drop everything when the underlying data changes
	c.Purge()

# Keyword Matching

	ac := cache.NewAhoCorasick([]string{"wireless", "cotton", "sport"})
	ac.Matches("Wireless Sports Earbuds") // ["wireless", "sport"]

# Thread Safety

All LRU methods are safe for concurrent use. An AhoCorasick is immutable
after construction. Values are returned as stored, so
callers must treat cached pointers as read-only.
*/
package cache

import "time"

const (
	// DefaultCapacity is used when NewLRU is given a non-positive capacity.
	DefaultCapacity = 10000

	// DefaultTTL is used when NewLRU is given a non-positive TTL.
	DefaultTTL = 5 * time.Minute
)
