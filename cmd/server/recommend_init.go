// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package main

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Pranjal0798/product-recommendation-system/internal/api"
	"github.com/Pranjal0798/product-recommendation-system/internal/config"
	"github.com/Pranjal0798/product-recommendation-system/internal/dataset"
	"github.com/Pranjal0798/product-recommendation-system/internal/recommend"
	"github.com/Pranjal0798/product-recommendation-system/internal/supervisor/services"
)

// DataComponents holds the scoring engine and the dataset it serves.
type DataComponents struct {
	Engine  *recommend.Engine
	Manager *dataset.Manager
	Service *services.DatasetService
}

// initData builds the engine, the dataset manager and its supervised service.
//
//nolint:gocritic // hugeParam: logger passed by value for zerolog chaining
func initData(cfg *config.Config, logger zerolog.Logger) (*DataComponents, error) {
	engine, err := recommend.NewEngine(buildEngineConfig(cfg), logger)
	if err != nil {
		return nil, fmt.Errorf("create recommendation engine: %w", err)
	}

	manager, err := dataset.NewManager(buildDatasetOptions(cfg), engine, logger)
	if err != nil {
		return nil, fmt.Errorf("create dataset manager: %w", err)
	}

	service := services.NewDatasetService(manager, services.DatasetServiceConfig{
		LoadOnStartup:  cfg.Dataset.LoadOnStartup,
		ReloadInterval: cfg.Dataset.ReloadInterval,
	}, logger)

	logger.Info().
		Str("path", cfg.Dataset.Path).
		Int("limit", cfg.Recommend.Limit).
		Int("cache_size", cfg.Recommend.CacheSize).
		Dur("reload_interval", cfg.Dataset.ReloadInterval).
		Msg("recommendation components initialized")

	return &DataComponents{Engine: engine, Manager: manager, Service: service}, nil
}

// buildEngineConfig maps application config onto the engine's config.
func buildEngineConfig(cfg *config.Config) *recommend.Config {
	w := cfg.Recommend.Weights
	return &recommend.Config{
		Weights: recommend.Weights{
			SharedFeature: w.SharedFeature,
			Category:      w.Category,
			Brand:         w.Brand,
			Price:         w.Price,
			Rating:        w.Rating,
		},
		PriceTolerance:  cfg.Recommend.PriceTolerance,
		RatingTolerance: cfg.Recommend.RatingTolerance,
		Limit:           cfg.Recommend.Limit,
	}
}

// buildDatasetOptions maps application config onto the manager's options.
func buildDatasetOptions(cfg *config.Config) dataset.Options {
	return dataset.Options{
		Path:       cfg.Dataset.Path,
		Delimiter:  cfg.Dataset.DelimiterRune(),
		LazyQuotes: cfg.Dataset.LazyQuotes,
		Keywords:   cfg.Recommend.Keywords,
		CacheSize:  cfg.Recommend.CacheSize,
		CacheTTL:   cfg.Recommend.CacheTTL,
	}
}

// buildMiddlewareConfig maps security settings onto the router middleware.
func buildMiddlewareConfig(cfg *config.Config) *api.ChiMiddlewareConfig {
	mw := api.DefaultChiMiddlewareConfig()
	mw.CORSAllowedOrigins = cfg.Security.CORSOrigins
	mw.RateLimitRequests = cfg.Security.RateLimitReqs
	mw.RateLimitWindow = cfg.Security.RateLimitWindow
	mw.RateLimitDisabled = cfg.Security.RateLimitDisabled
	return mw
}
