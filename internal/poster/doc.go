// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package poster resolves recommendation rows to poster image URLs using
The Movie Database (TMDB).

Resolution is layered:

	Resolver (URLResolver)
	  -> CachingFetcher   (optional, memory or BadgerDB)
	  -> BreakerFetcher   (optional, sony/gobreaker)
	  -> TMDBClient       (net/http, x/time/rate)

A Fetcher returns the raw TMDB poster path for an external id. An empty
path with a nil error means TMDB confirmed the movie has no poster. The
URLResolver turns those outcomes into URLs and never fails:

  - poster found: {image_base}/{poster_path}
  - confirmed absent, or a placeholder row: Fallbacks.NoPoster
  - any error, including an open circuit: Fallbacks.Error

Lookups are never retried. Each row is resolved independently, so a
failure on one row only affects that row's URL.

Usage:

	svc, err := poster.New(&cfg.Poster, logging.WithComponent("poster"))
	if err != nil {
	    return err
	}
	defer svc.Close()

	urls := poster.ResolveAll(ctx, svc, ids)
*/
package poster
