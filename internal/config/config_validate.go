// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package config

import (
	"fmt"
	"math"
	"slices"
	"time"
	"unicode/utf8"
)

// maxRecommendLimit mirrors the engine's hard cap.
const maxRecommendLimit = 1000

// Rate limit constants
const (
	minRateLimitRequests = 1
	maxRateLimitRequests = 100000
	minRateLimitWindow   = time.Second
	maxRateLimitWindow   = time.Hour
)

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

var validEnvironments = map[string]bool{
	"development": true,
	"staging":     true,
	"production":  true,
}

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateDataset(); err != nil {
		return err
	}

	if err := c.validateRecommend(); err != nil {
		return err
	}

	if err := c.validateRateLimits(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates the HTTP listener configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	if c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("HTTP_SHUTDOWN_TIMEOUT must not be negative")
	}
	if c.Server.Environment != "" && !validEnvironments[c.Server.Environment] {
		return fmt.Errorf("ENVIRONMENT must be one of: development, staging, production")
	}
	return nil
}

// validateDataset validates the purchase file settings
func (c *Config) validateDataset() error {
	if c.Dataset.LoadOnStartup && c.Dataset.Path == "" {
		return fmt.Errorf("DATASET_PATH is required when DATASET_LOAD_ON_STARTUP=true")
	}
	if err := c.validateDelimiter(); err != nil {
		return err
	}
	if c.Dataset.ReloadInterval < 0 {
		return fmt.Errorf("DATASET_RELOAD_INTERVAL must not be negative")
	}
	if c.Dataset.ReloadInterval > 0 && c.Dataset.ReloadInterval < time.Second {
		return fmt.Errorf("DATASET_RELOAD_INTERVAL must be at least 1s when set")
	}
	return nil
}

// validateDelimiter accepts a single character other than quote, CR or LF
func (c *Config) validateDelimiter() error {
	d := c.Dataset.Delimiter
	if d == "" || d == "tab" || d == `\t` {
		return nil
	}
	if utf8.RuneCountInString(d) != 1 {
		return fmt.Errorf("DATASET_DELIMITER must be a single character or \"tab\", got %q", d)
	}
	switch c.Dataset.DelimiterRune() {
	case '"', '\r', '\n', utf8.RuneError:
		return fmt.Errorf("DATASET_DELIMITER %q is not a valid field separator", d)
	}
	return nil
}

// validateRecommend validates scoring and cache settings
func (c *Config) validateRecommend() error {
	r := c.Recommend
	if r.Limit < 1 || r.Limit > maxRecommendLimit {
		return fmt.Errorf("RECOMMEND_LIMIT must be between 1 and %d", maxRecommendLimit)
	}
	if err := c.validateWeights(); err != nil {
		return err
	}
	if !positiveFinite(r.PriceTolerance) {
		return fmt.Errorf("RECOMMEND_PRICE_TOLERANCE must be a positive number")
	}
	if !positiveFinite(r.RatingTolerance) {
		return fmt.Errorf("RECOMMEND_RATING_TOLERANCE must be a positive number")
	}
	if r.CacheSize < 0 {
		return fmt.Errorf("RECOMMEND_CACHE_SIZE must not be negative")
	}
	if r.CacheTTL < 0 {
		return fmt.Errorf("RECOMMEND_CACHE_TTL must not be negative")
	}
	return nil
}

// validateWeights rejects negative or non-finite weights
func (c *Config) validateWeights() error {
	w := c.Recommend.Weights
	weights := []struct {
		env   string
		value float64
	}{
		{"RECOMMEND_WEIGHT_SHARED_FEATURE", w.SharedFeature},
		{"RECOMMEND_WEIGHT_CATEGORY", w.Category},
		{"RECOMMEND_WEIGHT_BRAND", w.Brand},
		{"RECOMMEND_WEIGHT_PRICE", w.Price},
		{"RECOMMEND_WEIGHT_RATING", w.Rating},
	}
	for _, wt := range weights {
		if wt.value < 0 || math.IsNaN(wt.value) || math.IsInf(wt.value, 0) {
			return fmt.Errorf("%s must be a non-negative number", wt.env)
		}
	}
	return nil
}

func positiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !validLogLevels[c.Logging.Level] {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error")
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	return slices.Contains(c.Security.CORSOrigins, "*")
}

// ShouldWarnAboutCORS reports a wildcard origin list in production, which
// should be logged at startup.
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.IsProduction() && c.hasWildcardCORS()
}

// IsProduction reports whether ENVIRONMENT=production.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// IsDevelopment reports whether the server runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "" || c.Server.Environment == "development"
}
