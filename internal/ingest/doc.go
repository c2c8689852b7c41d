// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

/*
Package ingest reads delimited purchase exports into catalog records.

The first row is the header. Every following row becomes a catalog.Record
keyed by header name. Rows are produced lazily through Reader.Records so the
catalog builder can consume a file without holding the raw rows in memory.

# Error Model

Two classes of problems are kept apart:

  - Source failures (file cannot be opened, no header row, I/O error while
    reading) abort ingestion. They wrap ErrIngestion and are reported by
    Reader.Err after iteration stops.
  - Row problems (unbalanced quotes, stray fields) skip the row, bump
    Stats.Skipped and never fail the load.

Blank lines and all-empty rows are ignored. A UTF-8 byte order mark in front
of the header is removed. Rows shorter than the header leave the missing
columns empty; cells beyond the header width are dropped.

# Example

	r, err := ingest.Open("purchases.csv", ingest.Options{})
	if err != nil {
	    return err
	}
	defer r.Close()

	cat := catalog.NewBuilder(nil, nil).Build(r.Records(ctx))
	if err := r.Err(); err != nil {
	    return err // discard cat
	}
*/
package ingest
