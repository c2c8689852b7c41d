// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/Pranjal0798/product-recommendation-system/internal/catalog"
)

// ErrIngestion marks a failure of the whole source.
var ErrIngestion = errors.New("ingestion failed")

const utf8BOM = "\uFEFF"

// Options configures a Reader.
type Options struct {
	// Delimiter separates fields. Default: ','
	Delimiter rune

	// LazyQuotes accepts stray quotes inside fields instead of skipping the
	// row. Default: false
	LazyQuotes bool

	// Logger receives per-row diagnostics. Default: disabled.
	Logger *zerolog.Logger
}

// Stats describes one pass over a source.
type Stats struct {
	Source    string    `json:"source"`
	Columns   int       `json:"columns"`
	Rows      int64     `json:"rows"`
	Skipped   int64     `json:"skipped"`
	Blank     int64     `json:"blank"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
}

// Duration returns how long the pass took, or has taken so far.
func (s *Stats) Duration() time.Duration {
	if s.EndTime.IsZero() {
		return time.Since(s.StartTime)
	}
	return s.EndTime.Sub(s.StartTime)
}

// Reader yields records from a delimited source.
type Reader struct {
	csv    *csv.Reader
	closer io.Closer
	header []string
	logger zerolog.Logger

	stats    Stats
	err      error
	consumed bool
}

// Open opens a file and reads its header.
func Open(path string, opts Options) (*Reader, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrIngestion, path, err)
	}

	r, err := newReader(f, filepath.Base(path), opts)
	if err != nil {
		f.Close() //nolint:errcheck // best-effort cleanup on error path
		return nil, err
	}
	r.closer = f
	return r, nil
}

// NewReader wraps src and reads its header. name labels the source in stats
// and logs.
func NewReader(src io.Reader, name string, opts Options) (*Reader, error) {
	return newReader(src, name, opts)
}

func newReader(src io.Reader, name string, opts Options) (*Reader, error) {
	cr := csv.NewReader(src)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = opts.LazyQuotes
	cr.ReuseRecord = true
	if opts.Delimiter != 0 {
		cr.Comma = opts.Delimiter
	}

	logger := zerolog.Nop()
	if opts.Logger != nil {
		logger = opts.Logger.With().Str("component", "ingest").Str("source", name).Logger()
	}

	r := &Reader{
		csv:    cr,
		logger: logger,
		stats: Stats{
			Source:    name,
			StartTime: time.Now(),
		},
	}

	header, err := r.readHeader()
	if err != nil {
		return nil, err
	}
	r.header = header
	r.stats.Columns = len(header)
	return r, nil
}

// readHeader returns the first non-empty row, trimmed and BOM-free.
func (r *Reader) readHeader() ([]string, error) {
	for {
		fields, err := r.csv.Read()
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: %s has no header row", ErrIngestion, r.stats.Source)
		}
		if err != nil {
			return nil, fmt.Errorf("%w: read header of %s: %w", ErrIngestion, r.stats.Source, err)
		}
		if isBlank(fields) {
			continue
		}

		header := make([]string, len(fields))
		for i, f := range fields {
			if i == 0 {
				f = strings.TrimPrefix(f, utf8BOM)
			}
			header[i] = strings.TrimSpace(f)
		}
		return header, nil
	}
}

// Header returns the column names.
func (r *Reader) Header() []string {
	out := make([]string, len(r.header))
	copy(out, r.header)
	return out
}

// Records returns a single-use sequence of rows. Iteration stops early when
// ctx is done or the source fails; check Err afterwards.
func (r *Reader) Records(ctx context.Context) iter.Seq[catalog.Record] {
	return func(yield func(catalog.Record) bool) {
		if r.consumed {
			r.err = fmt.Errorf("%w: %s already consumed", ErrIngestion, r.stats.Source)
			return
		}
		r.consumed = true
		defer func() { r.stats.EndTime = time.Now() }()

		for {
			if err := ctx.Err(); err != nil {
				r.err = err
				return
			}

			fields, err := r.csv.Read()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				var parseErr *csv.ParseError
				if errors.As(err, &parseErr) {
					r.stats.Skipped++
					r.logger.Debug().Err(err).Int("line", parseErr.Line).Msg("skipping malformed row")
					continue
				}
				r.err = fmt.Errorf("%w: read %s: %w", ErrIngestion, r.stats.Source, err)
				return
			}

			if isBlank(fields) {
				r.stats.Blank++
				continue
			}

			r.stats.Rows++
			if !yield(r.record(fields)) {
				return
			}
		}
	}
}

func (r *Reader) record(fields []string) catalog.Record {
	rec := make(catalog.Record, len(r.header))
	for i, col := range r.header {
		if col == "" {
			continue
		}
		val := ""
		if i < len(fields) {
			val = fields[i]
		}
		// repeated header names keep the first non-empty cell
		if prev, seen := rec[col]; seen && prev != "" {
			continue
		}
		rec[col] = val
	}
	return rec
}

// Err returns the failure that stopped iteration, if any.
func (r *Reader) Err() error {
	return r.err
}

// Stats returns counters for the pass so far.
func (r *Reader) Stats() Stats {
	return r.stats
}

// Close releases the underlying file, if the reader opened one.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	err := r.closer.Close()
	r.closer = nil
	return err
}

func isBlank(fields []string) bool {
	for _, f := range fields {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
