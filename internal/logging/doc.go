// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

// Package logging provides the application's global zerolog logger.
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Str("path", path).Msg("dataset loaded")
//	logging.Err(err).Msg("reload failed")
//
//	// request-scoped fields
//	logging.Ctx(ctx).Debug().Str("customer_id", id).Msg("recommend")
//
// # Configuration
//
// The config package maps LOG_LEVEL, LOG_FORMAT and LOG_CALLER onto Config.
// Unknown levels fall back to info.
//
// # slog
//
// NewSlogLogger exposes the same output as a *slog.Logger for libraries that
// require one. The supervisor tree uses it for suture events.
//
// Always terminate event chains with Msg or Send; an unterminated event is
// never written.
package logging
