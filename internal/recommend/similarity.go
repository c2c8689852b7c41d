// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package recommend

import (
	"math"

	"github.com/Pranjal0798/product-recommendation-system/internal/catalog"
)

// Breakdown is the contribution of each component to a similarity score.
type Breakdown struct {
	Features float64 `json:"features"`
	Category float64 `json:"category"`
	Brand    float64 `json:"brand"`
	Price    float64 `json:"price"`
	Rating   float64 `json:"rating"`
}

// Total sums the components.
func (b Breakdown) Total() float64 {
	return b.Features + b.Category + b.Brand + b.Price + b.Rating
}

func (b *Breakdown) add(o Breakdown) {
	b.Features += o.Features
	b.Category += o.Category
	b.Brand += o.Brand
	b.Price += o.Price
	b.Rating += o.Rating
}

func (b Breakdown) scale(f float64) Breakdown {
	return Breakdown{
		Features: b.Features * f,
		Category: b.Category * f,
		Brand:    b.Brand * f,
		Price:    b.Price * f,
		Rating:   b.Rating * f,
	}
}

// Scorer computes pairwise product similarity.
type Scorer struct {
	weights         Weights
	priceTolerance  float64
	ratingTolerance float64
}

// NewScorer creates a scorer from cfg. A nil cfg selects DefaultConfig.
func NewScorer(cfg *Config) *Scorer {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	return &Scorer{
		weights:         cfg.Weights,
		priceTolerance:  cfg.PriceTolerance,
		ratingTolerance: cfg.RatingTolerance,
	}
}

// Score returns the similarity of candidate b to purchased product a.
func (s *Scorer) Score(a, b *catalog.Product) float64 {
	return s.Explain(a, b).Total()
}

// Explain returns the per-component similarity of b to a.
func (s *Scorer) Explain(a, b *catalog.Product) Breakdown {
	var out Breakdown

	out.Features = s.weights.SharedFeature * float64(a.Features.Intersect(b.Features))

	if a.Category == b.Category {
		out.Category = s.weights.Category
	}
	if a.Brand == b.Brand {
		out.Brand = s.weights.Brand
	}

	// relative to a; no bonus when either price is unknown
	if a.Price > 0 && b.Price > 0 {
		if math.Abs(a.Price-b.Price)/a.Price < s.priceTolerance {
			out.Price = s.weights.Price
		}
	}

	if math.Abs(a.Rating-b.Rating) < s.ratingTolerance {
		out.Rating = s.weights.Rating
	}

	return out
}
