// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package supervisor runs the long-lived parts of the reelmatch server under a
suture v4 supervisor tree.

# Overview

	RootSupervisor ("reelmatch")
	├── DataSupervisor ("data-layer")
	│   ├── CacheMaintenanceService (poster cache enabled)
	│   └── BadgerStore value log GC (badger backend)
	└── APISupervisor ("api-layer")
	    └── HTTPServerService

The similarity index itself is immutable after load and needs no service.
Crashed services restart with suture's backoff; cancelling the context
passed to Serve shuts the whole tree down within ShutdownTimeout.

# Logging

Supervisor events go through sutureslog. Pass logging.NewSlogLogger() so
they land in the same zerolog stream as the rest of the server.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(srv, cfg.Server.Addr(), 10*time.Second, logger))
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
	    return err
	}
*/
package supervisor
