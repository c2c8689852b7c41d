// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

/*
Package catalog turns raw purchase rows into an immutable product catalog and
customer purchase index.

# Overview

A purchase export contains one row per transaction. The same product shows up
many times and column names vary between exports ("Item Purchased",
"product_name", "ProductName", ...). The Builder resolves those variants
through an explicit alias table, deduplicates products by their ProductKey,
derives a brand and a feature tag set for each product, and records each
customer's purchase history in first-seen order.

# Components

  - FeatureExtractor: derives lowercase feature tags from category, color,
    size, season and vocabulary keywords found in the name
  - ColumnAliases: maps header spellings to logical fields
  - Builder: folds an iter.Seq[Record] into a Catalog
  - Catalog: read-only snapshot with ordered products and customers

# Usage

	b := catalog.NewBuilder(catalog.NewFeatureExtractor(nil), nil)
	cat := b.Build(records)

	for _, p := range cat.Products() {
	    fmt.Println(p.Key, p.Features)
	}

# Ordering

Products and customers keep the order in which they were first seen. The
first row for a ProductKey decides every attribute of that product; later rows
only add purchase history. The recommendation engine relies on catalog order
to break score ties.

# Thread Safety

A Catalog never changes after Build returns and is safe for concurrent
readers. A Builder is single use per Build call and not safe for concurrent
use.
*/
package catalog
