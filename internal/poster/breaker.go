// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package poster

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

// breakerName labels the TMDB breaker in logs and metrics.
const breakerName = "tmdb-api"

// BreakerFetcher wraps a Fetcher with a circuit breaker. While the circuit
// is open, lookups fail immediately with gobreaker.ErrOpenState and no
// request reaches TMDB.
//
// Confirmed absences count as successes. Context cancellation by the
// caller is not counted against TMDB.
type BreakerFetcher struct {
	next   Fetcher
	cb     *gobreaker.CircuitBreaker[string]
	name   string
	logger zerolog.Logger
}

// NewBreakerFetcher creates a breaker around next.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewBreakerFetcher(next Fetcher, cfg *config.PosterBreakerConfig, logger zerolog.Logger) *BreakerFetcher {
	bf := &BreakerFetcher{
		next:   next,
		name:   breakerName,
		logger: logger,
	}

	metrics.CircuitBreakerState.WithLabelValues(bf.name).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(bf.name).Set(0)

	minRequests := cfg.MinRequests
	failureRatio := cfg.FailureRatio

	bf.cb = gobreaker.NewCircuitBreaker[string](gobreaker.Settings{
		Name:        bf.name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < minRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			shouldTrip := ratio >= failureRatio
			if shouldTrip {
				logger.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_rate", ratio*100).
					Msg("[CIRCUIT BREAKER] Opening circuit")
			}
			return shouldTrip
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr := stateToString(from)
			toStr := stateToString(to)
			logger.Info().Str("from", fromStr).Str("to", toStr).Msg("[CIRCUIT BREAKER] State transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},

		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return bf
}

// PosterPath implements Fetcher.
func (b *BreakerFetcher) PosterPath(ctx context.Context, externalID string) (string, error) {
	path, err := b.cb.Execute(func() (string, error) {
		return b.next.PosterPath(ctx, externalID)
	})

	if err != nil {
		if isRejected(err) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			b.logger.Debug().Err(err).Msg("[CIRCUIT BREAKER] Request rejected")
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
			counts := b.cb.Counts()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(counts.ConsecutiveFailures))
		}
		return "", err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return path, nil
}

// State returns the current breaker state as "closed", "half-open" or "open".
func (b *BreakerFetcher) State() string {
	return stateToString(b.cb.State())
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
