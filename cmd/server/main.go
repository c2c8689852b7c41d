// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Pranjal0798/product-recommendation-system/internal/api"
	"github.com/Pranjal0798/product-recommendation-system/internal/config"
	"github.com/Pranjal0798/product-recommendation-system/internal/logging"
	"github.com/Pranjal0798/product-recommendation-system/internal/supervisor"
	"github.com/Pranjal0798/product-recommendation-system/internal/supervisor/services"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

func main() {
	// Load configuration first to get logging settings
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("version", version).
		Str("environment", cfg.Server.Environment).
		Str("dataset", cfg.Dataset.Path).
		Msg("Starting product recommender")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("SECURITY WARNING: CORS allows any origin (CORS_ORIGINS=*) in production")
		logging.Warn().Msg("  Set CORS_ORIGINS to the storefront origins, e.g. CORS_ORIGINS=https://shop.example.com")
	}

	data, err := initData(cfg, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize recommendation components")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// sutureslog needs slog; bridge it onto zerolog
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	router := api.NewRouter(api.NewHandler(data.Manager, version), buildMiddlewareConfig(cfg))
	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.Timeout,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       60 * time.Second,
	}

	tree.AddDataService(data.Service)
	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout, logging.Logger()))

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	errCh := tree.ServeBackground(ctx)

	var serveErr error
	select {
	case <-ctx.Done():
		logging.Info().Msg("Shutdown signal received, waiting for services to stop")
		serveErr = <-errCh
	case serveErr = <-errCh:
	}
	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		logging.Error().Err(serveErr).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Product recommender stopped")
}
