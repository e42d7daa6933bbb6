// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package metrics

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	io_prometheus_client "github.com/prometheus/client_model/go"
)

// histogramCount returns the number of observations in a histogram.
func histogramCount(t *testing.T, h prometheus.Histogram) uint64 {
	t.Helper()
	var m io_prometheus_client.Metric
	if err := h.Write(&m); err != nil {
		t.Fatalf("write histogram: %v", err)
	}
	return m.GetHistogram().GetSampleCount()
}

// TestRecordAPIRequest tests API request metric recording
func TestRecordAPIRequest(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		endpoint   string
		statusCode string
		duration   time.Duration
	}{
		{"recommendations ok", "GET", "/api/v1/recommendations", "200", 12 * time.Millisecond},
		{"unknown title", "GET", "/api/v1/recommendations", "404", 2 * time.Millisecond},
		{"bad k", "GET", "/api/v1/recommendations", "400", time.Millisecond},
		{"titles", "GET", "/api/v1/titles", "200", 3 * time.Millisecond},
		{"rate limited", "GET", "/api/v1/titles", "429", time.Millisecond},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode))
			RecordAPIRequest(tt.method, tt.endpoint, tt.statusCode, tt.duration)
			after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues(tt.method, tt.endpoint, tt.statusCode))
			if after-before != 1 {
				t.Errorf("api_requests_total delta = %v, want 1", after-before)
			}
		})
	}
}

// TestTrackActiveRequest tests the active request gauge round trip
func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests); got != before+1 {
		t.Errorf("after inc = %v, want %v", got, before+1)
	}

	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("after dec = %v, want %v", got, before)
	}
}

func TestRecordRecommendation(t *testing.T) {
	okBefore := testutil.ToFloat64(RecommendationRequests.WithLabelValues(OutcomeOK))
	nfBefore := testutil.ToFloat64(RecommendationRequests.WithLabelValues(OutcomeNotFound))
	phBefore := testutil.ToFloat64(RecommendationPlaceholders)
	durBefore := histogramCount(t, RecommendationDuration)

	RecordRecommendation(OutcomeOK, time.Millisecond, 2)
	RecordRecommendation(OutcomeOK, time.Millisecond, 0)
	RecordRecommendation(OutcomeNotFound, 0, 0)

	if got := testutil.ToFloat64(RecommendationRequests.WithLabelValues(OutcomeOK)) - okBefore; got != 2 {
		t.Errorf("ok delta = %v, want 2", got)
	}
	if got := testutil.ToFloat64(RecommendationRequests.WithLabelValues(OutcomeNotFound)) - nfBefore; got != 1 {
		t.Errorf("not_found delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(RecommendationPlaceholders) - phBefore; got != 2 {
		t.Errorf("placeholders delta = %v, want 2", got)
	}
	// Only successful rankings are timed.
	if got := histogramCount(t, RecommendationDuration) - durBefore; got != 2 {
		t.Errorf("duration observations delta = %d, want 2", got)
	}
}

func TestRecordDatasetLoad(t *testing.T) {
	errBefore := testutil.ToFloat64(DatasetLoadErrors.WithLabelValues("files"))

	RecordDatasetLoad("files", 5*time.Millisecond, 4803, nil)
	if got := testutil.ToFloat64(CatalogSize); got != 4803 {
		t.Errorf("catalog_items = %v, want 4803", got)
	}

	RecordDatasetLoad("files", time.Millisecond, 0, errors.New("matrix missing"))
	if got := testutil.ToFloat64(CatalogSize); got != 4803 {
		t.Errorf("failed load must not reset catalog_items, got %v", got)
	}
	if got := testutil.ToFloat64(DatasetLoadErrors.WithLabelValues("files")) - errBefore; got != 1 {
		t.Errorf("dataset_load_errors_total delta = %v, want 1", got)
	}
}

func TestRecordPosterMetrics(t *testing.T) {
	foundBefore := testutil.ToFloat64(PosterLookups.WithLabelValues(PosterFound))
	hitBefore := testutil.ToFloat64(PosterCacheHits.WithLabelValues("memory"))
	missBefore := testutil.ToFloat64(PosterCacheMisses.WithLabelValues("memory"))

	RecordPosterLookup(PosterFound, 80*time.Millisecond)
	RecordPosterCache("memory", true)
	RecordPosterCache("memory", false)
	RecordPosterCache("memory", false)

	if got := testutil.ToFloat64(PosterLookups.WithLabelValues(PosterFound)) - foundBefore; got != 1 {
		t.Errorf("poster found delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(PosterCacheHits.WithLabelValues("memory")) - hitBefore; got != 1 {
		t.Errorf("cache hits delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(PosterCacheMisses.WithLabelValues("memory")) - missBefore; got != 2 {
		t.Errorf("cache misses delta = %v, want 2", got)
	}
}

// TestCircuitBreakerMetrics tests circuit breaker metric recording
func TestCircuitBreakerMetrics(t *testing.T) {
	cbName := "tmdb_test"

	CircuitBreakerState.WithLabelValues(cbName).Set(2)
	if got := testutil.ToFloat64(CircuitBreakerState.WithLabelValues(cbName)); got != 2 {
		t.Errorf("circuit_breaker_state = %v, want 2", got)
	}

	CircuitBreakerTransitions.WithLabelValues(cbName, "closed", "open").Inc()
	if got := testutil.ToFloat64(CircuitBreakerTransitions.WithLabelValues(cbName, "closed", "open")); got != 1 {
		t.Errorf("transitions = %v, want 1", got)
	}
}

func TestSetAppInfo(t *testing.T) {
	SetAppInfo("test")
	UpdateUptime(time.Now().Add(-time.Minute))

	if got := testutil.ToFloat64(AppUptime); got < 59 {
		t.Errorf("app_uptime_seconds = %v, want >= 59", got)
	}
}

// TestConcurrentMetricRecording checks the helpers under concurrent use
func TestConcurrentMetricRecording(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			RecordAPIRequest("GET", "/api/v1/concurrent", "200", time.Millisecond)
			RecordRecommendation(OutcomeOK, time.Microsecond, 1)
			RecordPosterLookup(PosterAbsent, 0)
		}()
	}
	wg.Wait()

	if got := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/concurrent", "200")); got != 50 {
		t.Errorf("concurrent api_requests_total = %v, want 50", got)
	}
}
