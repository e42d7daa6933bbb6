// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package poster

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// cacheKeyPrefix namespaces poster paths in the store.
const cacheKeyPrefix = "tmdb:poster:"

// CachingFetcher caches confirmed lookup outcomes, both found paths and
// confirmed absences. Errors are never cached, so a failed lookup is
// attempted again on the next request.
type CachingFetcher struct {
	next   Fetcher
	store  cache.Store
	logger zerolog.Logger
}

// NewCachingFetcher creates a caching layer over next.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCachingFetcher(next Fetcher, store cache.Store, logger zerolog.Logger) *CachingFetcher {
	return &CachingFetcher{next: next, store: store, logger: logger}
}

// PosterPath implements Fetcher.
func (c *CachingFetcher) PosterPath(ctx context.Context, externalID string) (string, error) {
	key := cacheKeyPrefix + externalID
	backend := c.store.Backend()

	path, ok, err := c.store.Get(key)
	if err != nil {
		c.logger.Warn().Err(err).Str("backend", backend).Msg("poster cache read failed")
	}
	if ok {
		metrics.RecordPosterCache(backend, true)
		return path, nil
	}
	metrics.RecordPosterCache(backend, false)

	path, err = c.next.PosterPath(ctx, externalID)
	if err != nil {
		return "", err
	}

	if err := c.store.Set(key, path); err != nil {
		c.logger.Warn().Err(err).Str("backend", backend).Msg("poster cache write failed")
	}
	return path, nil
}

// Store returns the underlying cache store.
func (c *CachingFetcher) Store() cache.Store {
	return c.store
}
