// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

package config

import (
	"math"
	"strings"
	"testing"
	"time"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"port zero", func(c *Config) { c.Server.Port = 0 }, "HTTP_PORT"},
		{"zero timeout", func(c *Config) { c.Server.Timeout = 0 }, "HTTP_TIMEOUT"},
		{"negative shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = -time.Second }, "HTTP_SHUTDOWN_TIMEOUT"},
		{"unknown environment", func(c *Config) { c.Server.Environment = "qa" }, "ENVIRONMENT"},
		{"no path but lazy load", func(c *Config) {
			c.Dataset.Path = ""
			c.Dataset.LoadOnStartup = false
		}, ""},
		{"quote delimiter", func(c *Config) { c.Dataset.Delimiter = `"` }, "DATASET_DELIMITER"},
		{"semicolon delimiter", func(c *Config) { c.Dataset.Delimiter = ";" }, ""},
		{"pipe delimiter", func(c *Config) { c.Dataset.Delimiter = "|" }, ""},
		{"sub-second reload", func(c *Config) { c.Dataset.ReloadInterval = time.Millisecond }, "DATASET_RELOAD_INTERVAL"},
		{"negative reload", func(c *Config) { c.Dataset.ReloadInterval = -time.Minute }, "DATASET_RELOAD_INTERVAL"},
		{"limit above cap", func(c *Config) { c.Recommend.Limit = 1001 }, "RECOMMEND_LIMIT"},
		{"NaN weight", func(c *Config) { c.Recommend.Weights.Rating = math.NaN() }, "RECOMMEND_WEIGHT_RATING"},
		{"zero weights allowed", func(c *Config) { c.Recommend.Weights = WeightsConfig{} }, ""},
		{"zero price tolerance", func(c *Config) { c.Recommend.PriceTolerance = 0 }, "RECOMMEND_PRICE_TOLERANCE"},
		{"infinite rating tolerance", func(c *Config) { c.Recommend.RatingTolerance = math.Inf(1) }, "RECOMMEND_RATING_TOLERANCE"},
		{"negative cache size", func(c *Config) { c.Recommend.CacheSize = -1 }, "RECOMMEND_CACHE_SIZE"},
		{"rate limit too high", func(c *Config) { c.Security.RateLimitReqs = 200000 }, "RATE_LIMIT_REQUESTS"},
		{"rate limit window too short", func(c *Config) { c.Security.RateLimitWindow = time.Millisecond }, "RATE_LIMIT_WINDOW"},
		{"rate limit disabled skips bounds", func(c *Config) {
			c.Security.RateLimitDisabled = true
			c.Security.RateLimitReqs = 0
		}, ""},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()

			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error mentioning %s", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %q, want mention of %s", err, tt.wantErr)
			}
		})
	}
}

func TestDelimiterRune(t *testing.T) {
	tests := []struct {
		in   string
		want rune
	}{
		{"", ','},
		{",", ','},
		{"tab", '\t'},
		{`\t`, '\t'},
		{";", ';'},
		{"|", '|'},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := (DatasetConfig{Delimiter: tt.in}).DelimiterRune(); got != tt.want {
				t.Errorf("DelimiterRune(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestShouldWarnAboutCORS(t *testing.T) {
	cfg := defaultConfig()
	if cfg.ShouldWarnAboutCORS() {
		t.Error("wildcard CORS should not warn in development")
	}
	if !cfg.IsDevelopment() {
		t.Error("default environment should be development")
	}

	cfg.Server.Environment = "production"
	if !cfg.ShouldWarnAboutCORS() {
		t.Error("wildcard CORS should warn in production")
	}

	cfg.Security.CORSOrigins = []string{"https://shop.example.com"}
	if cfg.ShouldWarnAboutCORS() {
		t.Error("explicit origins should not warn")
	}
}

func TestServerAddr(t *testing.T) {
	s := ServerConfig{Host: "127.0.0.1", Port: 8080}
	if got := s.Addr(); got != "127.0.0.1:8080" {
		t.Errorf("Addr() = %q, want 127.0.0.1:8080", got)
	}
}
