// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

/*
Package main is the entry point for the recommendation server.

The server reads a delimited export of customer purchases, builds a product
catalog from it, and answers content-based recommendation queries over HTTP.

# Application Architecture

	RootSupervisor ("product-recommender")
	├── DataSupervisor ("data-layer")
	│   └── Dataset service (initial load, scheduled reloads)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (Chi router)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, config.yaml and environment
 2. Logging: zerolog with JSON/console output modes
 3. Recommendation engine: scoring weights and tolerances
 4. Dataset manager: ingestion options and response cache
 5. Supervisor tree: dataset service and HTTP server

The HTTP server starts immediately. Readiness reports 503 until the first
dataset is published.

# Configuration

Priority: Environment variables > Config file > Defaults

	# Server
	HTTP_PORT=8080
	HTTP_HOST=0.0.0.0
	ENVIRONMENT=development       # development, staging, production
	LOG_LEVEL=info                # trace, debug, info, warn, error
	LOG_FORMAT=json               # json or console

	# Dataset
	DATASET_PATH=data/purchases.csv
	DATASET_DELIMITER=,           # single character or "tab"
	DATASET_RELOAD_INTERVAL=0     # e.g. 5m; 0 disables

	# Scoring
	RECOMMEND_LIMIT=10
	RECOMMEND_WEIGHT_CATEGORY=4
	RECOMMEND_CACHE_SIZE=10000

	# Security
	CORS_ORIGINS=https://shop.example.com
	RATE_LIMIT_REQUESTS=100
	RATE_LIMIT_WINDOW=1m

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server stops accepting
connections and drains in-flight requests within HTTP_SHUTDOWN_TIMEOUT.

# Example Usage

	go run ./cmd/gendata -out data/purchases.csv
	LOG_FORMAT=console go run ./cmd/server
	curl localhost:8080/api/v1/customers/C0001/recommendations?limit=5
*/
package main
