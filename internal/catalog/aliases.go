// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package catalog

import (
	"strings"
	"unicode"
)

// Field is a logical column of a purchase row.
type Field int

const (
	FieldCustomerID Field = iota
	FieldCustomerName
	FieldItem
	FieldCategory
	FieldPrice
	FieldRating
	FieldColor
	FieldSize
	FieldSeason
)

var fieldNames = map[Field]string{
	FieldCustomerID:   "customer_id",
	FieldCustomerName: "customer_name",
	FieldItem:         "item",
	FieldCategory:     "category",
	FieldPrice:        "price",
	FieldRating:       "rating",
	FieldColor:        "color",
	FieldSize:         "size",
	FieldSeason:       "season",
}

// String returns the field's canonical name.
func (f Field) String() string {
	if name, ok := fieldNames[f]; ok {
		return name
	}
	return "unknown"
}

// ColumnAliases maps each logical field to the header names that may carry it,
// highest priority first.
type ColumnAliases map[Field][]string

// DefaultColumnAliases covers the retail export layouts seen in practice.
// Matching ignores case, spaces and punctuation, so "Customer ID",
// "customer_id" and "CustomerID" are the same alias.
var DefaultColumnAliases = ColumnAliases{
	FieldCustomerID:   {"Customer ID", "customer_id", "CustomerID"},
	FieldCustomerName: {"Customer Name", "customer_name"},
	FieldItem:         {"Item Purchased", "item_purchased", "product_name", "ProductName", "Item", "Product"},
	FieldCategory:     {"Category"},
	FieldPrice:        {"Purchase Amount (USD)", "price", "Price", "amount"},
	FieldRating:       {"Review Rating", "rating", "Rating"},
	FieldColor:        {"Color", "Colour"},
	FieldSize:         {"Size"},
	FieldSeason:       {"Season"},
}

// NormalizeColumn lowercases a header name and strips everything that is not
// a letter or digit.
func NormalizeColumn(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

// resolver looks up logical fields in a record.
type resolver struct {
	aliases map[Field][]string
	// normalized header spellings, reused across rows; written by Build
	headers map[string]string
}

func newResolver(aliases ColumnAliases) *resolver {
	if len(aliases) == 0 {
		aliases = DefaultColumnAliases
	}
	normalized := make(map[Field][]string, len(aliases))
	for field, names := range aliases {
		seen := make(map[string]struct{}, len(names))
		for _, name := range names {
			n := NormalizeColumn(name)
			if n == "" {
				continue
			}
			if _, dup := seen[n]; dup {
				continue
			}
			seen[n] = struct{}{}
			normalized[field] = append(normalized[field], n)
		}
	}
	return &resolver{aliases: normalized, headers: make(map[string]string)}
}

// row indexes a record by normalized column name. Values are trimmed and empty
// values are dropped. When two non-empty columns normalize to the same name
// the column whose raw name sorts first wins, so the result does not depend on
// map iteration order.
func (r *resolver) row(rec Record) map[string]string {
	type cell struct{ col, val string }
	cells := make(map[string]cell, len(rec))
	for col, val := range rec {
		n, ok := r.headers[col]
		if !ok {
			n = NormalizeColumn(col)
			r.headers[col] = n
		}
		val = strings.TrimSpace(val)
		if val == "" {
			continue
		}
		if prev, exists := cells[n]; !exists || col < prev.col {
			cells[n] = cell{col: col, val: val}
		}
	}
	out := make(map[string]string, len(cells))
	for n, c := range cells {
		out[n] = c.val
	}
	return out
}

// lookup returns the first non-empty value among the field's aliases.
func (r *resolver) lookup(row map[string]string, field Field) string {
	for _, alias := range r.aliases[field] {
		if v := row[alias]; v != "" {
			return v
		}
	}
	return ""
}
