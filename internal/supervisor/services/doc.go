// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package services provides suture.Service wrappers for reelmatch components.

Each wrapper implements the suture v4 Service interface:

	type Service interface {
	    Serve(ctx context.Context) error
	}

and returns ctx.Err() on cancellation so the supervisor can tell a clean
stop from a crash.

# Available Services

HTTPServerService wraps *http.Server. Cancellation triggers Shutdown with
a bounded drain timeout; a listen error is returned for restart.

CacheMaintenanceService sweeps expired entries from the in-memory poster
cache on a ticker and publishes the poster_cache_entries gauge. With the
badger backend the sweep is a size report only; expiry is native and
cache.BadgerStore supervises its own value log GC.
*/
package services
