// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// expirer is implemented by stores that hold expired entries until swept.
type expirer interface {
	CleanupExpired() int
}

// CacheMaintenanceService periodically sweeps expired poster cache entries
// and publishes the cache size gauge.
type CacheMaintenanceService struct {
	store    cache.Store
	interval time.Duration
	logger   zerolog.Logger
}

// NewCacheMaintenanceService creates the sweeper. A non-positive interval
// defaults to 5m.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheMaintenanceService(store cache.Store, interval time.Duration, logger zerolog.Logger) *CacheMaintenanceService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &CacheMaintenanceService{
		store:    store,
		interval: interval,
		logger:   logger.With().Str("service", "poster-cache-maintenance").Str("backend", store.Backend()).Logger(),
	}
}

// Serve implements suture.Service.
func (s *CacheMaintenanceService) Serve(ctx context.Context) error {
	s.logger.Debug().Dur("interval", s.interval).Msg("poster cache maintenance starting")
	s.sweep()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweep()
		}
	}
}

// sweep runs one maintenance cycle.
func (s *CacheMaintenanceService) sweep() {
	backend := s.store.Backend()

	if e, ok := s.store.(expirer); ok {
		if removed := e.CleanupExpired(); removed > 0 {
			metrics.PosterCacheExpired.WithLabelValues(backend).Add(float64(removed))
			s.logger.Debug().Int("removed", removed).Msg("expired poster cache entries removed")
		}
	}

	metrics.PosterCacheEntries.WithLabelValues(backend).Set(float64(s.store.Len()))
}

// String implements fmt.Stringer for suture's event log.
func (s *CacheMaintenanceService) String() string {
	return "poster-cache-maintenance"
}
