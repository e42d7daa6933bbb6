// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metrics

import (
	"runtime"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recommendation outcomes.
const (
	OutcomeOK       = "ok"
	OutcomeNotFound = "not_found"
	OutcomeError    = "error"
)

// Poster lookup outcomes.
const (
	PosterFound       = "found"
	PosterAbsent      = "no_poster"
	PosterError       = "error"
	PosterPlaceholder = "placeholder"
	PosterRejected    = "rejected"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Recommendation Metrics
	RecommendationRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendation_requests_total",
			Help: "Total number of recommendation queries by outcome",
		},
		[]string{"outcome"}, // "ok", "not_found", "error"
	)

	RecommendationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "recommendation_duration_seconds",
			Help:    "Time spent ranking a similarity row",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		},
	)

	RecommendationPlaceholders = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommendation_placeholders_total",
			Help: "Total number of placeholder rows returned to pad short results",
		},
	)

	// Dataset Metrics
	CatalogSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_items",
			Help: "Number of titles in the loaded catalog",
		},
	)

	DatasetLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dataset_load_duration_seconds",
			Help:    "Time spent loading the catalog and similarity matrix",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"source"}, // "files", "duckdb"
	)

	DatasetLoadErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "dataset_load_errors_total",
			Help: "Total number of failed dataset loads",
		},
		[]string{"source"},
	)

	// Poster Metrics
	PosterLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poster_lookups_total",
			Help: "Total number of poster resolutions by outcome",
		},
		[]string{"outcome"}, // "found", "no_poster", "error", "placeholder", "rejected"
	)

	PosterLookupDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "poster_lookup_duration_seconds",
			Help:    "Duration of TMDB poster lookups in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	PosterCacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poster_cache_hits_total",
			Help: "Total number of poster cache hits",
		},
		[]string{"backend"},
	)

	PosterCacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poster_cache_misses_total",
			Help: "Total number of poster cache misses",
		},
		[]string{"backend"},
	)

	PosterCacheEntries = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "poster_cache_entries",
			Help: "Number of entries in the poster cache",
		},
		[]string{"backend"},
	)

	PosterCacheExpired = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "poster_cache_expired_total",
			Help: "Total number of expired poster cache entries removed by maintenance",
		},
		[]string{"backend"},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)

	AppUptime = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "app_uptime_seconds",
			Help: "Application uptime in seconds",
		},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records the outcome of one recommendation query.
func RecordRecommendation(outcome string, duration time.Duration, placeholders int) {
	RecommendationRequests.WithLabelValues(outcome).Inc()
	if outcome != OutcomeOK {
		return
	}
	RecommendationDuration.Observe(duration.Seconds())
	if placeholders > 0 {
		RecommendationPlaceholders.Add(float64(placeholders))
	}
}

// RecordDatasetLoad records a dataset load and, on success, the catalog size.
func RecordDatasetLoad(source string, duration time.Duration, items int, err error) {
	DatasetLoadDuration.WithLabelValues(source).Observe(duration.Seconds())
	if err != nil {
		DatasetLoadErrors.WithLabelValues(source).Inc()
		return
	}
	CatalogSize.Set(float64(items))
}

// RecordPosterLookup records a poster resolution outcome. Duration is only
// observed for lookups that reached TMDB.
func RecordPosterLookup(outcome string, duration time.Duration) {
	PosterLookups.WithLabelValues(outcome).Inc()
	if duration > 0 {
		PosterLookupDuration.Observe(duration.Seconds())
	}
}

// RecordPosterCache records a poster cache hit or miss.
func RecordPosterCache(backend string, hit bool) {
	if hit {
		PosterCacheHits.WithLabelValues(backend).Inc()
	} else {
		PosterCacheMisses.WithLabelValues(backend).Inc()
	}
}

// SetAppInfo publishes the build version.
func SetAppInfo(version string) {
	AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
}

// UpdateUptime sets the uptime gauge from the process start time.
func UpdateUptime(start time.Time) {
	AppUptime.Set(time.Since(start).Seconds())
}
