// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

// Command gendata writes a synthetic purchase export for local runs and
// load testing.
//
//	go run ./cmd/gendata -out data/purchases.csv -customers 100 -seed 42
//
// The file uses the customer_id, customer_name, product_id, product_name,
// category, price, brand, rating layout, which the server's default column
// aliases understand. A JSON summary is printed to stdout.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-json"

	"github.com/Pranjal0798/product-recommendation-system/internal/logging"
)

func main() {
	opts := DefaultOptions()
	out := flag.String("out", "data/purchases.csv", "output file")
	flag.IntVar(&opts.Customers, "customers", opts.Customers, "number of customers")
	flag.IntVar(&opts.MinPurchases, "min", opts.MinPurchases, "minimum purchases per customer")
	flag.IntVar(&opts.MaxPurchases, "max", opts.MaxPurchases, "maximum purchases per customer")
	flag.Uint64Var(&opts.Seed, "seed", opts.Seed, "random seed")
	flag.Parse()

	summary, err := run(*out, opts)
	if err != nil {
		logging.Fatal().Err(err).Str("out", *out).Msg("Failed to generate purchase data")
	}

	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to encode summary")
	}
	fmt.Println(string(data))
}

// run generates purchases and writes them to path, creating parent
// directories as needed.
func run(path string, opts Options) (Summary, error) {
	purchases, err := Generate(opts)
	if err != nil {
		return Summary{}, err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Summary{}, fmt.Errorf("create %s: %w", dir, err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return Summary{}, fmt.Errorf("create %s: %w", path, err)
	}
	if err := WriteCSV(f, purchases); err != nil {
		f.Close() //nolint:errcheck // write error takes precedence
		return Summary{}, fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return Summary{}, fmt.Errorf("close %s: %w", path, err)
	}

	summary := Summarize(purchases)
	summary.Output = path
	summary.Seed = opts.Seed

	logging.Info().
		Str("out", path).
		Int("customers", summary.Customers).
		Int("purchases", summary.Purchases).
		Int("products", summary.UniqueProducts).
		Msg("Purchase data generated")

	return summary, nil
}
