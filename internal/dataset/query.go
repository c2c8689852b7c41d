// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package dataset

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"

	"github.com/Pranjal0798/product-recommendation-system/internal/cache"
	"github.com/Pranjal0798/product-recommendation-system/internal/catalog"
	"github.com/Pranjal0798/product-recommendation-system/internal/logging"
	"github.com/Pranjal0798/product-recommendation-system/internal/metrics"
	"github.com/Pranjal0798/product-recommendation-system/internal/recommend"
)

// CustomerSummary identifies a customer in listings.
type CustomerSummary struct {
	ID            string
	Label         string
	PurchaseCount int
}

func summarize(c *catalog.Customer) CustomerSummary {
	return CustomerSummary{ID: c.ID, Label: c.Label, PurchaseCount: len(c.Purchases)}
}

// Result is a ranked recommendation list with the snapshot it came from.
type Result struct {
	Customer   CustomerSummary
	Generation uint64
	*recommend.Response
}

// Stats describes the published snapshot.
type Stats struct {
	Source       string
	Generation   uint64
	LoadedAt     time.Time
	LoadDuration time.Duration
	Catalog      catalog.Stats
	RowsSkipped  int64
	Columns      []string
	Keywords     []string
	Cache        cache.Stats
}

// ListCustomers returns customers whose ID or label contains term, ignoring
// case, in catalog order. term is trimmed first; an empty term matches
// everyone.
func (m *Manager) ListCustomers(term string) ([]CustomerSummary, error) {
	ds, err := m.Current()
	if err != nil {
		return nil, err
	}

	customers := ds.Catalog.Customers()
	out := make([]CustomerSummary, 0, len(customers))

	term = strings.TrimSpace(term)
	if term == "" {
		for _, c := range customers {
			out = append(out, summarize(c))
		}
		return out, nil
	}

	// a Caser keeps state, so each call gets its own
	fold := cases.Fold()
	needle := fold.String(term)
	for _, c := range customers {
		if strings.Contains(fold.String(c.ID), needle) || strings.Contains(fold.String(c.Label), needle) {
			out = append(out, summarize(c))
		}
	}
	return out, nil
}

// Customer returns one customer's summary.
func (m *Manager) Customer(id string) (CustomerSummary, error) {
	ds, err := m.Current()
	if err != nil {
		return CustomerSummary{}, err
	}
	c, err := lookup(ds, id)
	if err != nil {
		return CustomerSummary{}, err
	}
	return summarize(c), nil
}

// PurchaseHistory returns the customer's purchased products in catalog order.
func (m *Manager) PurchaseHistory(id string) (CustomerSummary, []*catalog.Product, error) {
	ds, err := m.Current()
	if err != nil {
		return CustomerSummary{}, nil, err
	}
	c, err := lookup(ds, id)
	if err != nil {
		return CustomerSummary{}, nil, err
	}
	return summarize(c), ds.Catalog.PurchasedProducts(c), nil
}

// Recommendations ranks unpurchased products for the customer. limit <= 0
// selects the engine default.
func (m *Manager) Recommendations(ctx context.Context, id string, limit int) (*Result, error) {
	start := time.Now()

	ds, err := m.Current()
	if err != nil {
		metrics.RecordRecommendation(metrics.OutcomeError, 0)
		return nil, err
	}
	c, err := lookup(ds, id)
	if err != nil {
		metrics.RecordRecommendation(metrics.OutcomeNotFound, 0)
		return nil, err
	}

	if limit <= 0 {
		limit = m.engine.Config().Limit
	}
	limit = min(limit, recommend.MaxLimit)

	key := cacheKey{generation: ds.Generation, customerID: c.ID, limit: limit}
	if resp, ok := m.cachedResponse(ctx, key); ok {
		metrics.RecordRecommendation(metrics.OutcomeServed, 0)
		return &Result{Customer: summarize(c), Generation: ds.Generation, Response: resp}, nil
	}

	resp, err := m.engine.Recommend(ctx, ds.Catalog, recommend.Request{
		Customer:  c,
		Limit:     limit,
		RequestID: logging.RequestIDFromContext(ctx),
	})
	switch {
	case errors.Is(err, recommend.ErrEmptyHistory):
		metrics.RecordRecommendation(metrics.OutcomeEmptyHistory, 0)
		return nil, err
	case errors.Is(err, recommend.ErrNoCandidates):
		metrics.RecordRecommendation(metrics.OutcomeNoCandidates, 0)
		return nil, err
	case err != nil:
		metrics.RecordRecommendation(metrics.OutcomeError, 0)
		logging.Ctx(ctx).Error().Err(err).Str("customer_id", c.ID).Msg("recommendation failed")
		return nil, err
	}

	metrics.RecordRecommendation(metrics.OutcomeServed, time.Since(start))
	if m.cache != nil {
		m.cache.Add(key, resp)
	}
	return &Result{Customer: summarize(c), Generation: ds.Generation, Response: resp}, nil
}

// cachedResponse returns a copy of a memoized response, restamped for this
// request. Items are shared and read-only.
func (m *Manager) cachedResponse(ctx context.Context, key cacheKey) (*recommend.Response, bool) {
	if m.cache == nil {
		return nil, false
	}
	cached, ok := m.cache.Get(key)
	metrics.RecordCacheLookup(ok)
	if !ok {
		return nil, false
	}

	resp := *cached
	resp.Metadata.CacheHit = true
	resp.Metadata.LatencyMS = 0
	resp.Metadata.Timestamp = time.Now()
	if id := logging.RequestIDFromContext(ctx); id != "" {
		resp.Metadata.RequestID = id
	}
	return &resp, true
}

// Stats returns counts for the published snapshot.
func (m *Manager) Stats() (Stats, error) {
	ds, err := m.Current()
	if err != nil {
		return Stats{}, err
	}
	s := Stats{
		Source:       ds.Source,
		Generation:   ds.Generation,
		LoadedAt:     ds.LoadedAt,
		LoadDuration: ds.LoadDuration,
		Catalog:      ds.Catalog.Stats(),
		RowsSkipped:  ds.Ingest.Skipped,
		Columns:      ds.Columns,
		Keywords:     m.keywords,
	}
	if m.cache != nil {
		s.Cache = m.cache.Stats()
	}
	return s, nil
}

func lookup(ds *Dataset, id string) (*catalog.Customer, error) {
	c, ok := ds.Catalog.Customer(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrCustomerNotFound, id)
	}
	return c, nil
}
