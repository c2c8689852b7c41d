// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

/*
Package config provides centralized configuration management for the
recommendation server.

# Configuration Sources

Configuration is layered with Koanf, later layers overriding earlier ones:
  - Built-in defaults (defaultConfig)
  - An optional YAML file: CONFIG_PATH, or config.yaml in the working directory
  - Environment variables, through an explicit name mapping

# Environment Variables

Server (ServerConfig):
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 8080)
  - HTTP_TIMEOUT: Read/write timeout (default: 30s)
  - HTTP_SHUTDOWN_TIMEOUT: Graceful shutdown budget (default: 10s)
  - ENVIRONMENT: development, staging or production (default: development)

Logging (LoggingConfig):
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json or console (default: json)
  - LOG_CALLER: Include file:line (default: false)

Dataset (DatasetConfig):
  - DATASET_PATH: Purchase export to load (default: data/purchases.csv)
  - DATASET_DELIMITER: Single character or "tab" (default: ,)
  - DATASET_LAZY_QUOTES: Tolerate stray quotes (default: false)
  - DATASET_LOAD_ON_STARTUP: Load before serving (default: true)
  - DATASET_RELOAD_INTERVAL: Periodic re-read, 0 disables (default: 0)

Recommendations (RecommendConfig):
  - RECOMMEND_LIMIT: Default list length (default: 10)
  - RECOMMEND_KEYWORDS: Comma-separated feature vocabulary override
  - RECOMMEND_WEIGHT_SHARED_FEATURE, RECOMMEND_WEIGHT_CATEGORY,
    RECOMMEND_WEIGHT_BRAND, RECOMMEND_WEIGHT_PRICE, RECOMMEND_WEIGHT_RATING:
    Similarity weights (defaults: 3, 4, 1.5, 1, 0.5)
  - RECOMMEND_PRICE_TOLERANCE: Relative price band (default: 0.4)
  - RECOMMEND_RATING_TOLERANCE: Absolute rating band (default: 0.5)
  - RECOMMEND_CACHE_SIZE: Memoized responses, 0 disables (default: 10000)
  - RECOMMEND_CACHE_TTL: Memoized response lifetime (default: 5m)

Security (SecurityConfig):
  - CORS_ORIGINS: Comma-separated allowed origins (default: *)
  - RATE_LIMIT_REQUESTS: Requests per window per client IP (default: 100)
  - RATE_LIMIT_WINDOW: Window length (default: 1m)
  - DISABLE_RATE_LIMIT: Turn rate limiting off (default: false)

# Usage

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}
	addr := cfg.Server.Addr()

# Validation

Validate returns the first problem found, naming the environment variable to
fix, for example "HTTP_PORT must be between 1 and 65535".
*/
package config
