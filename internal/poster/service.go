// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package poster

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
)

// Service is the configured poster resolution chain.
type Service struct {
	resolver Resolver
	enabled  bool
	breaker  *BreakerFetcher
	store    cache.Store
}

// New builds the resolution chain described by cfg. When poster lookup is
// disabled every id resolves to the no-poster fallback.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func New(cfg *config.PosterConfig, logger zerolog.Logger) (*Service, error) {
	fallbacks := Fallbacks{NoPoster: cfg.NoPosterURL, Error: cfg.ErrorPosterURL}
	if fallbacks.NoPoster == "" {
		fallbacks.NoPoster = config.DefaultNoPosterURL
	}
	if fallbacks.Error == "" {
		fallbacks.Error = config.DefaultErrorPosterURL
	}

	if !cfg.Enabled {
		return &Service{resolver: StaticResolver(fallbacks.NoPoster)}, nil
	}

	svc := &Service{enabled: true}

	var fetcher Fetcher = NewTMDBClient(cfg)

	if cfg.Breaker.Enabled {
		svc.breaker = NewBreakerFetcher(fetcher, &cfg.Breaker, logger)
		fetcher = svc.breaker
	}

	if cfg.Cache.Enabled {
		store, err := openStore(&cfg.Cache)
		if err != nil {
			return nil, err
		}
		svc.store = store
		fetcher = NewCachingFetcher(fetcher, store, logger)
	}

	svc.resolver = NewURLResolver(fetcher, cfg.ImageBase, fallbacks, logger)

	logger.Info().
		Bool("breaker", svc.breaker != nil).
		Str("cache", svc.CacheBackend()).
		Float64("requests_per_second", cfg.RequestsPerSecond).
		Str("api_key", logging.RedactSecret(cfg.APIKey)).
		Msg("poster lookup enabled")

	return svc, nil
}

func openStore(cfg *config.PosterCacheConfig) (cache.Store, error) {
	switch cfg.Backend {
	case config.CacheBackendBadger:
		store, err := cache.NewBadgerStore(cfg.Path, cfg.TTL)
		if err != nil {
			return nil, fmt.Errorf("open poster cache: %w", err)
		}
		return store, nil
	default:
		return cache.NewMemoryStore(cfg.Capacity, cfg.TTL), nil
	}
}

// Resolve implements Resolver.
func (s *Service) Resolve(ctx context.Context, externalID string) string {
	return s.resolver.Resolve(ctx, externalID)
}

// Enabled reports whether TMDB lookups are configured.
func (s *Service) Enabled() bool {
	return s.enabled
}

// BreakerState returns the TMDB circuit state, or "" without a breaker.
func (s *Service) BreakerState() string {
	if s.breaker == nil {
		return ""
	}
	return s.breaker.State()
}

// CacheBackend returns the cache backend name, or "none".
func (s *Service) CacheBackend() string {
	if s.store == nil {
		return "none"
	}
	return s.store.Backend()
}

// Cache returns the lookup cache, or nil when caching is off.
func (s *Service) Cache() cache.Store {
	return s.store
}

// BadgerStore returns the persistent cache when that backend is in use,
// so its value log GC can be supervised.
func (s *Service) BadgerStore() *cache.BadgerStore {
	bs, _ := s.store.(*cache.BadgerStore)
	return bs
}

// Close releases the cache store.
func (s *Service) Close() error {
	if s.store == nil {
		return nil
	}
	return s.store.Close()
}
