// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package recommend

import (
	"fmt"
	"math"
)

// MaxLimit caps the number of recommendations per request.
const MaxLimit = 1000

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Weights are the points awarded per matching component.
	Weights Weights `json:"weights"`

	// PriceTolerance is the relative price difference, measured against the
	// purchased product, below which the price component applies.
	PriceTolerance float64 `json:"price_tolerance"`

	// RatingTolerance is the absolute rating difference below which the
	// rating component applies.
	RatingTolerance float64 `json:"rating_tolerance"`

	// Limit is the maximum number of recommendations returned.
	Limit int `json:"limit"`
}

// Weights holds the points for each similarity component.
type Weights struct {
	// SharedFeature is awarded once per common feature tag.
	SharedFeature float64 `json:"shared_feature"`

	// Category is awarded for an exact category match.
	Category float64 `json:"category"`

	// Brand is awarded for an exact brand match.
	Brand float64 `json:"brand"`

	// Price is awarded when prices are within PriceTolerance.
	Price float64 `json:"price"`

	// Rating is awarded when ratings are within RatingTolerance.
	Rating float64 `json:"rating"`
}

// DefaultConfig returns the standard retail weighting.
func DefaultConfig() *Config {
	return &Config{
		Weights: Weights{
			SharedFeature: 3,
			Category:      4,
			Brand:         1.5,
			Price:         1,
			Rating:        0.5,
		},
		PriceTolerance:  0.4,
		RatingTolerance: 0.5,
		Limit:           10,
	}
}

// Validate checks the configuration for values the engine cannot use.
func (c *Config) Validate() error {
	weights := map[string]float64{
		"weights.shared_feature": c.Weights.SharedFeature,
		"weights.category":       c.Weights.Category,
		"weights.brand":          c.Weights.Brand,
		"weights.price":          c.Weights.Price,
		"weights.rating":         c.Weights.Rating,
	}
	for _, name := range []string{
		"weights.shared_feature", "weights.category", "weights.brand", "weights.price", "weights.rating",
	} {
		w := weights[name]
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return fmt.Errorf("%s must be a non-negative finite number, got %f", name, w)
		}
	}

	if c.PriceTolerance <= 0 || math.IsNaN(c.PriceTolerance) {
		return fmt.Errorf("price_tolerance must be positive, got %f", c.PriceTolerance)
	}
	if c.RatingTolerance <= 0 || math.IsNaN(c.RatingTolerance) {
		return fmt.Errorf("rating_tolerance must be positive, got %f", c.RatingTolerance)
	}

	if c.Limit < 1 || c.Limit > MaxLimit {
		return fmt.Errorf("limit must be between 1 and %d, got %d", MaxLimit, c.Limit)
	}

	return nil
}
