// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package dataset

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/Pranjal0798/product-recommendation-system/internal/cache"
	"github.com/Pranjal0798/product-recommendation-system/internal/catalog"
	"github.com/Pranjal0798/product-recommendation-system/internal/ingest"
	"github.com/Pranjal0798/product-recommendation-system/internal/logging"
	"github.com/Pranjal0798/product-recommendation-system/internal/metrics"
	"github.com/Pranjal0798/product-recommendation-system/internal/recommend"
)

// Options configures a Manager.
type Options struct {
	// Path is the purchase file read by Load and Reload.
	Path string

	// Delimiter separates fields. Default: ','
	Delimiter rune

	// LazyQuotes keeps rows with stray quotes instead of skipping them.
	LazyQuotes bool

	// Keywords replaces the feature vocabulary. Default: catalog.DefaultVocabulary
	Keywords []string

	// Aliases replaces the column alias table. Default: catalog.DefaultColumnAliases
	Aliases catalog.ColumnAliases

	// CacheSize is the number of memoized recommendation responses.
	// Zero disables the cache.
	CacheSize int

	// CacheTTL bounds how long a memoized response is served.
	CacheTTL time.Duration
}

// Dataset is one published, immutable catalog snapshot.
type Dataset struct {
	Catalog      *catalog.Catalog
	Generation   uint64
	Source       string
	Columns      []string
	Ingest       ingest.Stats
	LoadedAt     time.Time
	LoadDuration time.Duration
}

type cacheKey struct {
	generation uint64
	customerID string
	limit      int
}

// Manager loads purchase data and serves queries against the latest snapshot.
// It is safe for concurrent use.
type Manager struct {
	opts     Options
	engine   *recommend.Engine
	builder  *catalog.Builder
	keywords []string
	logger   zerolog.Logger

	current atomic.Pointer[Dataset]

	// loadMu admits one writer; generation and builder are guarded by it
	loadMu     sync.Mutex
	generation uint64

	cache *cache.LRU[cacheKey, *recommend.Response]
}

// NewManager creates a manager. Nothing is loaded until Load is called.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewManager(opts Options, engine *recommend.Engine, logger zerolog.Logger) (*Manager, error) {
	if engine == nil {
		return nil, fmt.Errorf("recommendation engine is required")
	}
	if opts.CacheSize < 0 {
		return nil, fmt.Errorf("cache size must not be negative, got %d", opts.CacheSize)
	}

	extractor := catalog.NewFeatureExtractor(opts.Keywords)
	m := &Manager{
		opts:     opts,
		engine:   engine,
		builder:  catalog.NewBuilder(extractor, opts.Aliases),
		keywords: extractor.Vocabulary(),
		logger:   logger.With().Str("component", "dataset").Logger(),
	}
	if opts.CacheSize > 0 {
		m.cache = cache.NewLRU[cacheKey, *recommend.Response](opts.CacheSize, opts.CacheTTL)
	}
	return m, nil
}

// Path returns the configured purchase file.
func (m *Manager) Path() string {
	return m.opts.Path
}

// Load reads the configured file and publishes it, waiting for any running
// load to finish first.
func (m *Manager) Load(ctx context.Context) (*Dataset, error) {
	m.loadMu.Lock()
	defer m.loadMu.Unlock()
	return m.loadFile(ctx, m.opts.Path)
}

// Reload is Load without waiting: it fails with ErrReloadInProgress when
// another load is running.
func (m *Manager) Reload(ctx context.Context) (*Dataset, error) {
	if !m.loadMu.TryLock() {
		return nil, ErrReloadInProgress
	}
	defer m.loadMu.Unlock()
	return m.loadFile(ctx, m.opts.Path)
}

// LoadReader reads purchase rows from src and publishes them. name labels
// the source in stats and logs.
func (m *Manager) LoadReader(ctx context.Context, src io.Reader, name string) (*Dataset, error) {
	m.loadMu.Lock()
	defer m.loadMu.Unlock()
	return m.load(ctx, name, func(opts ingest.Options) (*ingest.Reader, error) {
		return ingest.NewReader(src, name, opts)
	})
}

func (m *Manager) loadFile(ctx context.Context, path string) (*Dataset, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no dataset path configured", ingest.ErrIngestion)
	}
	return m.load(ctx, path, func(opts ingest.Options) (*ingest.Reader, error) {
		return ingest.Open(path, opts)
	})
}

// load must be called with loadMu held.
func (m *Manager) load(ctx context.Context, source string, open func(ingest.Options) (*ingest.Reader, error)) (*Dataset, error) {
	start := time.Now()
	ctx = logging.ContextWithNewCorrelationID(ctx)
	logger := m.logger.With().
		Str("source", source).
		Str("correlation_id", logging.CorrelationIDFromContext(ctx)).
		Logger()
	logger.Info().Msg("loading dataset")

	fail := func(err error) (*Dataset, error) {
		metrics.RecordDatasetLoad(time.Since(start), metrics.LoadSummary{}, err)
		logger.Error().Err(err).Msg("dataset load failed, keeping previous snapshot")
		return nil, err
	}

	r, err := open(ingest.Options{
		Delimiter:  m.opts.Delimiter,
		LazyQuotes: m.opts.LazyQuotes,
		Logger:     &logger,
	})
	if err != nil {
		return fail(err)
	}
	defer r.Close() //nolint:errcheck // read-only file

	cat := m.builder.Build(r.Records(ctx))
	if err := r.Err(); err != nil {
		return fail(fmt.Errorf("load %s: %w", source, err))
	}

	ds := &Dataset{
		Catalog:      cat,
		Generation:   m.generation + 1,
		Source:       r.Stats().Source,
		Columns:      r.Header(),
		Ingest:       r.Stats(),
		LoadedAt:     time.Now(),
		LoadDuration: time.Since(start),
	}
	m.publish(ds)

	stats := cat.Stats()
	metrics.RecordDatasetLoad(ds.LoadDuration, metrics.LoadSummary{
		Generation:  ds.Generation,
		Products:    stats.Products,
		Customers:   stats.Customers,
		Purchases:   stats.Purchases,
		Rows:        stats.Rows,
		IgnoredRows: stats.IgnoredRows,
		SkippedRows: ds.Ingest.Skipped,
	}, nil)

	logger.Info().
		Uint64("generation", ds.Generation).
		Int("products", stats.Products).
		Int("customers", stats.Customers).
		Int("purchases", stats.Purchases).
		Int("rows", stats.Rows).
		Int("rows_ignored", stats.IgnoredRows).
		Int64("rows_skipped", ds.Ingest.Skipped).
		Dur("duration", ds.LoadDuration).
		Msg("dataset published")

	return ds, nil
}

// publish must be called with loadMu held.
func (m *Manager) publish(ds *Dataset) {
	m.generation = ds.Generation
	m.current.Store(ds)
	if m.cache != nil {
		m.cache.Purge()
	}
}

// Current returns the published snapshot.
func (m *Manager) Current() (*Dataset, error) {
	ds := m.current.Load()
	if ds == nil {
		return nil, ErrNotLoaded
	}
	return ds, nil
}

// Ready reports whether a snapshot has been published.
func (m *Manager) Ready() bool {
	return m.current.Load() != nil
}
