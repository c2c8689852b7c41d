// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package catalog

import (
	"regexp"
	"strings"
)

// UncategorizedCategory is used when a row carries no category.
const UncategorizedCategory = "Uncategorized"

var whitespaceRun = regexp.MustCompile(`\s+`)

// ProductKey identifies a product by its normalized name and category.
type ProductKey string

// NewProductKey builds the key for a (name, category) pair: lowercased, with
// every whitespace run replaced by an underscore.
func NewProductKey(name, category string) ProductKey {
	raw := strings.ToLower(name + "_" + category)
	return ProductKey(whitespaceRun.ReplaceAllString(raw, "_"))
}

// Product is a deduplicated catalog entry.
type Product struct {
	Key      ProductKey `json:"id"`
	Name     string     `json:"name"`
	Category string     `json:"category"`
	Brand    string     `json:"brand"`
	Price    float64    `json:"price"`
	Rating   float64    `json:"rating"`
	Features FeatureSet `json:"features"`
	Color    string     `json:"color,omitempty"`
	Size     string     `json:"size,omitempty"`
	Season   string     `json:"season,omitempty"`
}

// DeriveBrand returns the first word of the name for multi-word names and
// falls back to the category otherwise.
func DeriveBrand(name, category string) string {
	words := strings.Fields(name)
	if len(words) > 1 {
		return words[0]
	}
	return category
}

// Customer is a buyer and the products they purchased, in first-seen order.
type Customer struct {
	ID        string       `json:"id"`
	Label     string       `json:"name"`
	Purchases []ProductKey `json:"purchases"`

	purchased map[ProductKey]struct{}
}

// DefaultLabel is the display label used when the source has no customer name.
func DefaultLabel(id string) string {
	return "Customer " + id
}

func newCustomer(id, label string) *Customer {
	if label == "" {
		label = DefaultLabel(id)
	}
	return &Customer{
		ID:        id,
		Label:     label,
		Purchases: make([]ProductKey, 0, 4),
		purchased: make(map[ProductKey]struct{}),
	}
}

// HasPurchased reports whether key is in the customer's history.
func (c *Customer) HasPurchased(key ProductKey) bool {
	if c.purchased == nil {
		for _, k := range c.Purchases {
			if k == key {
				return true
			}
		}
		return false
	}
	_, ok := c.purchased[key]
	return ok
}

// addPurchase appends key unless it is already recorded.
func (c *Customer) addPurchase(key ProductKey) bool {
	if c.HasPurchased(key) {
		return false
	}
	c.purchased[key] = struct{}{}
	c.Purchases = append(c.Purchases, key)
	return true
}
