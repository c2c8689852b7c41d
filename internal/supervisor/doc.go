// Product Recommendation System - Content-Based Retail Recommendations
// Copyright 2026 Pranjal0798
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Pranjal0798/product-recommendation-system

/*
Package supervisor provides process supervision using suture v4.

The long-running parts of the recommender are organized into a small tree:

	RootSupervisor ("product-recommender")
	├── DataSupervisor ("data-layer")
	│   └── DatasetService (initial load, scheduled reloads)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

A dataset that cannot be read restarts only the data layer. The HTTP server
keeps answering from the last published snapshot, and readiness reports 503
until the first load succeeds.

# Usage

	tree, err := supervisor.NewSupervisorTree(slogLogger, supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddDataService(services.NewDatasetService(manager, dsCfg, logger))
	tree.AddAPIService(services.NewHTTPServerService(server, shutdownTimeout, logger))

	errCh := tree.ServeBackground(ctx)
	<-ctx.Done()
	<-errCh

# Configuration

TreeConfig controls restart behavior. Zero fields take suture's defaults:

  - FailureThreshold: 5 failures
  - FailureDecay: 30 seconds
  - FailureBackoff: 15 seconds
  - ShutdownTimeout: 10 seconds

Failures decay exponentially. When the counter exceeds FailureThreshold the
supervisor waits FailureBackoff before the next restart, which turns a
missing dataset file into a slow retry loop rather than a hot one.

# Events

Supervisor events (service start, failure, backoff, shutdown timeouts) are
logged through sutureslog on the slog bridge of the application logger.

# Debugging Shutdown

	report, err := tree.UnstoppedServiceReport()
	for _, svc := range report {
	    logger.Warn("service did not stop", "service", svc.Name)
	}
*/
package supervisor
