// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package dataset

import "errors"

var (
	// ErrNotLoaded means no dataset has been published yet.
	ErrNotLoaded = errors.New("dataset not loaded")

	// ErrCustomerNotFound means the customer ID is not in the catalog.
	ErrCustomerNotFound = errors.New("customer not found")

	// ErrReloadInProgress means another load holds the writer lock.
	ErrReloadInProgress = errors.New("dataset reload already in progress")
)
