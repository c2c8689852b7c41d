// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"strconv"
)

// Options controls the size and shape of a generated dataset.
type Options struct {
	Customers    int
	MinPurchases int
	MaxPurchases int
	Seed         uint64
}

// DefaultOptions returns 100 customers with 3 to 15 purchases each.
func DefaultOptions() Options {
	return Options{
		Customers:    100,
		MinPurchases: 3,
		MaxPurchases: 15,
		Seed:         42,
	}
}

// Validate rejects option sets that cannot produce a dataset.
func (o Options) Validate() error {
	if o.Customers < 1 {
		return fmt.Errorf("customers must be at least 1, got %d", o.Customers)
	}
	if o.MinPurchases < 1 {
		return fmt.Errorf("min purchases must be at least 1, got %d", o.MinPurchases)
	}
	if o.MaxPurchases < o.MinPurchases {
		return fmt.Errorf("max purchases (%d) must not be below min purchases (%d)", o.MaxPurchases, o.MinPurchases)
	}
	return nil
}

// Purchase is one generated row.
type Purchase struct {
	CustomerID   string
	CustomerName string
	ProductID    string
	ProductName  string
	Category     string
	Price        float64
	Brand        string
	Rating       float64
}

// header is the column layout written by WriteCSV.
var header = []string{
	"customer_id", "customer_name", "product_id", "product_name",
	"category", "price", "brand", "rating",
}

func (p Purchase) record() []string {
	return []string{
		p.CustomerID,
		p.CustomerName,
		p.ProductID,
		p.ProductName,
		p.Category,
		strconv.FormatFloat(p.Price, 'f', 2, 64),
		p.Brand,
		strconv.FormatFloat(p.Rating, 'f', 1, 64),
	}
}

// Generate draws purchases from the built-in catalog. The same options
// always produce the same rows. Customers may buy a product more than once.
func Generate(opts Options) ([]Purchase, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	ids := productIDs()

	avg := (opts.MinPurchases + opts.MaxPurchases) / 2
	out := make([]Purchase, 0, opts.Customers*avg)

	for n := 1; n <= opts.Customers; n++ {
		count := opts.MinPurchases + rng.IntN(opts.MaxPurchases-opts.MinPurchases+1)
		for range count {
			c := categories[rng.IntN(len(categories))]
			t := c.Products[rng.IntN(len(c.Products))]
			out = append(out, Purchase{
				CustomerID:   fmt.Sprintf("C%04d", n),
				CustomerName: fmt.Sprintf("Customer %d", n),
				ProductID:    ids[c.Name+"_"+t.Name],
				ProductName:  t.Name,
				Category:     c.Name,
				Price:        round(t.MinPrice+rng.Float64()*(t.MaxPrice-t.MinPrice), 2),
				Brand:        t.Brand,
				Rating:       round(3.5+rng.Float64()*1.5, 1),
			})
		}
	}
	return out, nil
}

// productIDs numbers the catalog P0001, P0002, ... in table order.
func productIDs() map[string]string {
	ids := make(map[string]string)
	next := 1
	for _, c := range categories {
		for _, t := range c.Products {
			ids[c.Name+"_"+t.Name] = fmt.Sprintf("P%04d", next)
			next++
		}
	}
	return ids
}

func round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}

// WriteCSV writes the header and one row per purchase.
func WriteCSV(w io.Writer, purchases []Purchase) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for i, p := range purchases {
		if err := cw.Write(p.record()); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Summary describes a generated dataset.
type Summary struct {
	Output         string  `json:"output"`
	Seed           uint64  `json:"seed"`
	Customers      int     `json:"total_customers"`
	UniqueProducts int     `json:"unique_products"`
	Categories     int     `json:"categories"`
	Purchases      int     `json:"total_purchases"`
	AvgPerCustomer float64 `json:"avg_purchases_per_customer"`
	CatalogSize    int     `json:"catalog_size"`
}

// Summarize counts distinct customers, products and categories.
func Summarize(purchases []Purchase) Summary {
	customers := make(map[string]struct{})
	products := make(map[string]struct{})
	cats := make(map[string]struct{})
	for _, p := range purchases {
		customers[p.CustomerID] = struct{}{}
		products[p.ProductID] = struct{}{}
		cats[p.Category] = struct{}{}
	}

	s := Summary{
		Customers:      len(customers),
		UniqueProducts: len(products),
		Categories:     len(cats),
		Purchases:      len(purchases),
		CatalogSize:    len(productIDs()),
	}
	if s.Customers > 0 {
		s.AvgPerCustomer = round(float64(s.Purchases)/float64(s.Customers), 1)
	}
	return s
}
