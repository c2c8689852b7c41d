// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package catalog

import (
	"iter"
	"math"

	"github.com/spf13/cast"
)

// Record is one raw row: column name to cell text.
type Record map[string]string

// Builder folds purchase rows into a Catalog. Build memoizes header
// spellings in the builder, so a Builder must not run Build concurrently;
// callers serialize builds or use one Builder per goroutine.
type Builder struct {
	extractor *FeatureExtractor
	resolver  *resolver
}

// NewBuilder creates a builder. Nil arguments select the default extractor
// and alias table.
func NewBuilder(extractor *FeatureExtractor, aliases ColumnAliases) *Builder {
	if extractor == nil {
		extractor = NewFeatureExtractor(nil)
	}
	return &Builder{
		extractor: extractor,
		resolver:  newResolver(aliases),
	}
}

// Build consumes records in order and returns the finished catalog. Rows
// without an item name add nothing; rows without a customer add only the
// product. Build never fails: unusable cells fall back to zero values.
func (b *Builder) Build(records iter.Seq[Record]) *Catalog {
	cat := newCatalog()

	for rec := range records {
		cat.rows++
		row := b.resolver.row(rec)

		item := b.resolver.lookup(row, FieldItem)
		if item == "" {
			cat.ignoredRows++
			continue
		}

		category := b.resolver.lookup(row, FieldCategory)
		if category == "" {
			category = UncategorizedCategory
		}

		key := NewProductKey(item, category)
		if _, exists := cat.productIndex[key]; !exists {
			cat.addProduct(b.newProduct(row, key, item, category))
		}

		customerID := b.resolver.lookup(row, FieldCustomerID)
		if customerID == "" {
			continue
		}
		customer, exists := cat.customerIndex[customerID]
		if !exists {
			customer = newCustomer(customerID, b.resolver.lookup(row, FieldCustomerName))
			cat.addCustomer(customer)
		}
		if customer.addPurchase(key) {
			cat.purchases++
		}
	}

	return cat
}

func (b *Builder) newProduct(row map[string]string, key ProductKey, item, category string) *Product {
	color := b.resolver.lookup(row, FieldColor)
	size := b.resolver.lookup(row, FieldSize)
	season := b.resolver.lookup(row, FieldSeason)

	price := parseNumber(b.resolver.lookup(row, FieldPrice))
	if price < 0 {
		price = 0
	}

	return &Product{
		Key:      key,
		Name:     item,
		Category: category,
		Brand:    DeriveBrand(item, category),
		Price:    price,
		Rating:   parseNumber(b.resolver.lookup(row, FieldRating)),
		Features: b.extractor.Extract(item, category, color, size, season),
		Color:    color,
		Size:     size,
		Season:   season,
	}
}

// parseNumber coerces a cell to float64, returning 0 for empty, malformed or
// non-finite input.
func parseNumber(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := cast.ToFloat64E(s)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
