// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

// Package recommend ranks catalog products for a customer by content
// similarity to the products they already bought.
//
// # Scoring
//
// Scorer compares two products and adds up weighted components:
//
//   - SharedFeature per feature tag present on both products (default 3)
//   - Category when the categories match exactly (default 4)
//   - Brand when the derived brands match exactly (default 1.5)
//   - Price when both prices are positive and |a-b|/a is below
//     PriceTolerance (default 1, tolerance 0.4)
//   - Rating when the ratings differ by less than RatingTolerance
//     (default 0.5, tolerance 0.5)
//
// The price component divides by the first product's price, so Score(a, b)
// and Score(b, a) can differ. A zero price on either side earns no price
// points.
//
// # Ranking
//
// Engine.Recommend scores every product the customer has not bought by its
// mean similarity to each product they have bought, then sorts descending
// with a stable sort so ties keep catalog order, and returns the first
// Config.Limit entries.
//
// Two outcomes are reported as errors rather than empty results:
//
//   - ErrEmptyHistory: the customer has no purchases
//   - ErrNoCandidates: the customer already bought every product
//
// # Usage
//
//	engine, err := recommend.NewEngine(recommend.DefaultConfig(), logger)
//	if err != nil {
//	    return err
//	}
//
//	resp, err := engine.Recommend(ctx, cat, customer)
//	switch {
//	case errors.Is(err, recommend.ErrEmptyHistory):
//	    // nothing to compare against
//	case errors.Is(err, recommend.ErrNoCandidates):
//	    // nothing left to suggest
//	}
//
// # Thread Safety
//
// Engine holds only configuration and is safe for concurrent use. It reads
// the catalog it is given and never modifies it.
//
// This package depends only on the catalog package.
package recommend
