// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package poster

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Resolver maps an external id to a displayable poster URL.
// Resolve always returns a URL; failures are masked with a fallback.
type Resolver interface {
	Resolve(ctx context.Context, externalID string) string
}

// Fetcher looks up the TMDB poster path for an external id.
// ("", nil) means the lookup succeeded and the movie has no poster.
type Fetcher interface {
	PosterPath(ctx context.Context, externalID string) (string, error)
}

// Fallbacks are the URLs served when no real poster is available.
type Fallbacks struct {
	// NoPoster is used when TMDB has no poster and for placeholder rows.
	NoPoster string
	// Error is used when the lookup failed.
	Error string
}

// URLResolver implements Resolver over a Fetcher.
type URLResolver struct {
	fetcher   Fetcher
	imageBase string
	fallbacks Fallbacks
	logger    zerolog.Logger
}

// NewURLResolver creates a resolver that prefixes found poster paths with
// imageBase.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewURLResolver(fetcher Fetcher, imageBase string, fallbacks Fallbacks, logger zerolog.Logger) *URLResolver {
	return &URLResolver{
		fetcher:   fetcher,
		imageBase: strings.TrimRight(imageBase, "/"),
		fallbacks: fallbacks,
		logger:    logger,
	}
}

// Resolve returns the poster URL for externalID. The placeholder id resolves
// to the no-poster fallback without a lookup; loaders reject it for real
// catalog items.
func (r *URLResolver) Resolve(ctx context.Context, externalID string) string {
	if externalID == recommend.PlaceholderExternalID {
		metrics.RecordPosterLookup(metrics.PosterPlaceholder, 0)
		return r.fallbacks.NoPoster
	}

	start := time.Now()
	path, err := r.fetcher.PosterPath(ctx, externalID)
	elapsed := time.Since(start)

	if err != nil {
		outcome := metrics.PosterError
		if isRejected(err) {
			outcome = metrics.PosterRejected
			elapsed = 0
		}
		metrics.RecordPosterLookup(outcome, elapsed)
		r.logger.Warn().Err(err).Str("external_id", externalID).Msg("poster lookup failed")
		return r.fallbacks.Error
	}

	if path == "" {
		metrics.RecordPosterLookup(metrics.PosterAbsent, elapsed)
		return r.fallbacks.NoPoster
	}

	metrics.RecordPosterLookup(metrics.PosterFound, elapsed)
	return r.imageBase + "/" + strings.TrimLeft(path, "/")
}

// StaticResolver returns the same URL for every id. It is used when
// poster lookup is disabled.
type StaticResolver string

// Resolve returns the static URL.
func (s StaticResolver) Resolve(context.Context, string) string {
	return string(s)
}

// ResolveAll resolves every id concurrently and returns URLs in input
// order. Each row is resolved on its own goroutine and written to its own
// slot.
func ResolveAll(ctx context.Context, resolver Resolver, externalIDs []string) []string {
	urls := make([]string, len(externalIDs))
	if len(externalIDs) == 0 {
		return urls
	}

	var wg sync.WaitGroup
	for i, id := range externalIDs {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			urls[i] = resolver.Resolve(ctx, id)
		}(i, id)
	}
	wg.Wait()

	return urls
}

// isRejected reports whether err came from an open or saturated breaker.
func isRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
}
