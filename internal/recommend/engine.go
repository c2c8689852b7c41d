// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Pranjal0798/product-recommendation-system/internal/catalog"
)

// cancelCheckInterval is how many candidates are scored between context checks.
const cancelCheckInterval = 256

// Engine ranks unpurchased products for a customer.
// It is safe for concurrent use.
type Engine struct {
	config *Config
	scorer *Scorer
	logger zerolog.Logger

	requestCount atomic.Int64
	errorCount   atomic.Int64
}

// NewEngine creates a new recommendation engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		config: cfg,
		scorer: NewScorer(cfg),
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return *e.config
}

// Scorer returns the pairwise scorer used by the engine.
func (e *Engine) Scorer() *Scorer {
	return e.scorer
}

// Recommend ranks every product in cat that req.Customer has not bought.
func (e *Engine) Recommend(ctx context.Context, cat *catalog.Catalog, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if cat == nil || req.Customer == nil {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("catalog and customer are required")
	}

	req = e.prepareRequest(req)
	logger := e.createRequestLogger(req)
	logger.Debug().Msg("processing recommendation request")

	history := cat.PurchasedProducts(req.Customer)
	if len(history) == 0 {
		logger.Debug().Msg("customer has no purchase history")
		return nil, ErrEmptyHistory
	}

	candidates := e.filterCandidates(cat.Products(), req.Customer)
	if len(candidates) == 0 {
		logger.Debug().Msg("no candidates available")
		return nil, ErrNoCandidates
	}

	scored, err := e.scoreCandidates(ctx, history, candidates)
	if err != nil {
		e.errorCount.Add(1)
		return nil, fmt.Errorf("score candidates: %w", err)
	}

	// stable so equal scores keep catalog order
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})
	if len(scored) > req.Limit {
		scored = scored[:req.Limit]
	}
	for i := range scored {
		scored[i].SharedFeatures = sharedFeatures(scored[i].Product, history)
	}

	resp := &Response{
		Items:           scored,
		TotalCandidates: len(candidates),
		Metadata: ResponseMetadata{
			RequestID:   req.RequestID,
			CustomerID:  req.Customer.ID,
			HistorySize: len(history),
			LatencyMS:   time.Since(start).Milliseconds(),
			Timestamp:   time.Now(),
		},
	}

	logger.Debug().
		Int("history", len(history)).
		Int("candidates", len(candidates)).
		Int("returned", len(scored)).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// prepareRequest applies defaults and generates a request ID if needed.
func (e *Engine) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = uuid.New().String()
	}
	if req.Limit <= 0 {
		req.Limit = e.config.Limit
	}
	if req.Limit > MaxLimit {
		req.Limit = MaxLimit
	}
	return req
}

func (e *Engine) createRequestLogger(req Request) zerolog.Logger {
	return e.logger.With().
		Str("request_id", req.RequestID).
		Str("customer_id", req.Customer.ID).
		Int("limit", req.Limit).
		Logger()
}

// filterCandidates keeps catalog order and drops purchased products.
func (e *Engine) filterCandidates(products []*catalog.Product, customer *catalog.Customer) []*catalog.Product {
	out := make([]*catalog.Product, 0, len(products))
	for _, p := range products {
		if !customer.HasPurchased(p.Key) {
			out = append(out, p)
		}
	}
	return out
}

// scoreCandidates averages each candidate's similarity over the history.
func (e *Engine) scoreCandidates(ctx context.Context, history, candidates []*catalog.Product) ([]ScoredProduct, error) {
	n := float64(len(history))
	out := make([]ScoredProduct, 0, len(candidates))

	for i, c := range candidates {
		if i%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		var total float64
		var sum Breakdown
		for _, h := range history {
			b := e.scorer.Explain(h, c)
			total += b.Total()
			sum.add(b)
		}

		out = append(out, ScoredProduct{
			Product:   c,
			Score:     total / n,
			Breakdown: sum.scale(1 / n),
		})
	}
	return out, nil
}

// sharedFeatures returns the candidate's tags found on any purchased product.
func sharedFeatures(c *catalog.Product, history []*catalog.Product) []string {
	var out []string
	for _, tag := range c.Features {
		for _, h := range history {
			if h.Features.Contains(tag) {
				out = append(out, tag)
				break
			}
		}
	}
	return out
}

// Metrics returns a snapshot of engine counters.
func (e *Engine) Metrics() Metrics {
	return Metrics{
		RequestCount: e.requestCount.Load(),
		ErrorCount:   e.errorCount.Load(),
	}
}

// IsOutcome reports whether err is an expected recommendation outcome rather
// than a failure.
func IsOutcome(err error) bool {
	return errors.Is(err, ErrEmptyHistory) || errors.Is(err, ErrNoCandidates)
}
