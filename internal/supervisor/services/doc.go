// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

/*
Package services provides suture.Service wrappers for the recommender.

Each wrapper implements suture.Service and fmt.Stringer:

	type Service interface {
	    Serve(ctx context.Context) error
	}

# Available Services

HTTP Server (HTTPServerService):
  - Runs ListenAndServe in a goroutine
  - Calls Shutdown with a timeout when the context is canceled
  - Returns listen failures so the supervisor restarts the server

Dataset (DatasetService):
  - Loads the configured purchase file on startup
  - Returns a failed initial load so the supervisor retries with backoff
  - Polls the file on ReloadInterval and reloads when its size or
    modification time changes
  - Logs failed reloads and keeps serving the previous snapshot

# Return Values

  - nil: stopped on its own, not restarted
  - ctx.Err(): shutdown requested
  - other error: crashed, restarted by the supervisor
*/
package services
