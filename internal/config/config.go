// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package config

import (
	"fmt"
	"time"
	"unicode/utf8"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Logging   LoggingConfig   `koanf:"logging"`
	Dataset   DatasetConfig   `koanf:"dataset"`
	Recommend RecommendConfig `koanf:"recommend"`
	Security  SecurityConfig  `koanf:"security"`
}

// ServerConfig holds HTTP listener settings.
type ServerConfig struct {
	Port            int           `koanf:"port"`
	Host            string        `koanf:"host"`
	Timeout         time.Duration `koanf:"timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
	Environment     string        `koanf:"environment"` // development, staging or production
}

// Addr returns the listen address.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	// Default: info
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	// Default: json
	Format string `koanf:"format"`

	// Caller adds file:line to each entry.
	// Default: false
	Caller bool `koanf:"caller"`
}

// DatasetConfig describes the purchase file.
type DatasetConfig struct {
	// Path is the delimited purchase export. Reload re-reads this file.
	Path string `koanf:"path"`

	// Delimiter is a single character, or "tab".
	// Default: ","
	Delimiter string `koanf:"delimiter"`

	// LazyQuotes keeps rows with stray quotes instead of skipping them.
	LazyQuotes bool `koanf:"lazy_quotes"`

	// LoadOnStartup loads Path before the API starts serving.
	// Default: true
	LoadOnStartup bool `koanf:"load_on_startup"`

	// ReloadInterval re-reads Path periodically. Zero disables.
	ReloadInterval time.Duration `koanf:"reload_interval"`
}

// DelimiterRune returns the configured field separator.
func (d DatasetConfig) DelimiterRune() rune {
	switch d.Delimiter {
	case "", ",":
		return ','
	case "tab", `\t`:
		return '\t'
	}
	r, _ := utf8.DecodeRuneInString(d.Delimiter)
	return r
}

// RecommendConfig holds scoring and serving settings.
type RecommendConfig struct {
	// Limit is the default number of recommendations per customer.
	// Default: 10
	Limit int `koanf:"limit"`

	// Keywords replaces the feature vocabulary matched in product names.
	Keywords []string `koanf:"keywords"`

	Weights WeightsConfig `koanf:"weights"`

	// PriceTolerance is the maximum relative price difference for the price bonus.
	// Default: 0.4
	PriceTolerance float64 `koanf:"price_tolerance"`

	// RatingTolerance is the maximum absolute rating difference for the rating bonus.
	// Default: 0.5
	RatingTolerance float64 `koanf:"rating_tolerance"`

	// CacheSize bounds memoized responses. Zero disables the cache.
	// Default: 10000
	CacheSize int `koanf:"cache_size"`

	// CacheTTL bounds how long a memoized response is served.
	// Default: 5m
	CacheTTL time.Duration `koanf:"cache_ttl"`
}

// WeightsConfig holds the per-signal similarity weights.
type WeightsConfig struct {
	SharedFeature float64 `koanf:"shared_feature"`
	Category      float64 `koanf:"category"`
	Brand         float64 `koanf:"brand"`
	Price         float64 `koanf:"price"`
	Rating        float64 `koanf:"rating"`
}

// SecurityConfig holds CORS and rate limit settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Load reads configuration from defaults, an optional YAML file and the
// environment.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
