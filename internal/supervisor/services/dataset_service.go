// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/Pranjal0798/product-recommendation-system/internal/dataset"
)

// DatasetLoader is the part of *dataset.Manager the service drives.
type DatasetLoader interface {
	Path() string
	Ready() bool
	Load(ctx context.Context) (*dataset.Dataset, error)
	Reload(ctx context.Context) (*dataset.Dataset, error)
}

// DatasetServiceConfig holds configuration for the dataset service.
type DatasetServiceConfig struct {
	// LoadOnStartup loads the configured file when the service starts.
	LoadOnStartup bool

	// ReloadInterval is how often the file is checked for changes.
	// Zero disables scheduled reloads.
	ReloadInterval time.Duration

	// LoadTimeout bounds a single load. Default: 5m
	LoadTimeout time.Duration
}

// fileVersion identifies one revision of the purchase file.
type fileVersion struct {
	size    int64
	modTime time.Time
}

// DatasetService loads the purchase file under supervision and reloads it
// when it changes on disk.
//
// A failed initial load is returned to the supervisor, which restarts the
// service with backoff until a dataset is published. Failed scheduled
// reloads are logged and the previous snapshot keeps serving.
type DatasetService struct {
	loader DatasetLoader
	config DatasetServiceConfig
	logger zerolog.Logger
	name   string

	seen fileVersion
}

// NewDatasetService creates a new dataset service.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewDatasetService(loader DatasetLoader, cfg DatasetServiceConfig, logger zerolog.Logger) *DatasetService {
	if cfg.LoadTimeout <= 0 {
		cfg.LoadTimeout = 5 * time.Minute
	}
	return &DatasetService{
		loader: loader,
		config: cfg,
		logger: logger.With().Str("service", "dataset").Logger(),
		name:   "dataset-service",
	}
}

// Serve implements suture.Service.
func (s *DatasetService) Serve(ctx context.Context) error {
	s.logger.Info().
		Str("path", s.loader.Path()).
		Bool("load_on_startup", s.config.LoadOnStartup).
		Dur("reload_interval", s.config.ReloadInterval).
		Msg("dataset service starting")

	// a restart after a later failure must not reload a healthy snapshot
	if s.config.LoadOnStartup && !s.loader.Ready() {
		version, _ := s.stat()
		if err := s.run(ctx, s.loader.Load); err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return fmt.Errorf("initial dataset load: %w", err)
		}
		s.seen = version
	}

	if s.config.ReloadInterval <= 0 {
		<-ctx.Done()
		s.logger.Info().Msg("dataset service shutting down")
		return ctx.Err()
	}

	ticker := time.NewTicker(s.config.ReloadInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("dataset service shutting down")
			return ctx.Err()

		case <-ticker.C:
			s.reloadIfChanged(ctx)
		}
	}
}

// reloadIfChanged reloads when the file's size or modification time moved
// since the last successful load, or when nothing is published yet. A file
// that cannot be stat'ed leaves a published snapshot alone.
func (s *DatasetService) reloadIfChanged(ctx context.Context) {
	version, err := s.stat()
	if s.loader.Ready() {
		if err != nil {
			s.logger.Debug().Err(err).Msg("dataset file unavailable, keeping current snapshot")
			return
		}
		if version == s.seen {
			return
		}
	}

	s.logger.Debug().Msg("scheduled reload triggered")
	err = s.run(ctx, s.loader.Reload)
	switch {
	case err == nil:
		s.seen = version
	case errors.Is(err, dataset.ErrReloadInProgress):
		s.logger.Debug().Msg("reload already running, skipping tick")
	case ctx.Err() != nil:
	default:
		s.logger.Warn().Err(err).Msg("scheduled reload failed, previous snapshot retained")
	}
}

func (s *DatasetService) run(ctx context.Context, load func(context.Context) (*dataset.Dataset, error)) error {
	loadCtx, cancel := context.WithTimeout(ctx, s.config.LoadTimeout)
	defer cancel()
	_, err := load(loadCtx)
	return err
}

func (s *DatasetService) stat() (fileVersion, error) {
	info, err := os.Stat(s.loader.Path())
	if err != nil {
		return fileVersion{}, err
	}
	return fileVersion{size: info.Size(), modTime: info.ModTime()}, nil
}

// String returns the service name for logging.
func (s *DatasetService) String() string {
	return s.name
}
