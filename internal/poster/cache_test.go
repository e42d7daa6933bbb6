// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package poster

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/metrics"
)

func TestCachingFetcher_CachesConfirmedOutcomes(t *testing.T) {
	fetcher := newFakeFetcher(map[string]fakeResult{
		"found":  {path: "/f.jpg"},
		"absent": {path: ""},
	})
	store := cache.NewMemoryStore(100, time.Hour)
	c := NewCachingFetcher(fetcher, store, zerolog.Nop())

	hitsBefore := testutil.ToFloat64(metrics.PosterCacheHits.WithLabelValues(cache.BackendMemory))

	for i := 0; i < 3; i++ {
		if p, err := c.PosterPath(context.Background(), "found"); err != nil || p != "/f.jpg" {
			t.Fatalf("PosterPath(found) = %q, %v", p, err)
		}
		if p, err := c.PosterPath(context.Background(), "absent"); err != nil || p != "" {
			t.Fatalf("PosterPath(absent) = %q, %v", p, err)
		}
	}

	if fetcher.callCount("found") != 1 || fetcher.callCount("absent") != 1 {
		t.Errorf("upstream calls found=%d absent=%d, want 1 each",
			fetcher.callCount("found"), fetcher.callCount("absent"))
	}
	if got := testutil.ToFloat64(metrics.PosterCacheHits.WithLabelValues(cache.BackendMemory)); got-hitsBefore != 4 {
		t.Errorf("cache hit delta = %v, want 4", got-hitsBefore)
	}
	if c.Store() != store {
		t.Error("Store() should return the wrapped store")
	}
}

func TestCachingFetcher_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	fetcher := newFakeFetcher(map[string]fakeResult{
		"flaky": {err: errors.New("timeout")},
	})
	store := cache.NewMemoryStore(100, time.Hour)
	c := NewCachingFetcher(fetcher, store, zerolog.Nop())

	for i := 0; i < 2; i++ {
		if _, err := c.PosterPath(context.Background(), "flaky"); err == nil {
			t.Fatal("PosterPath(flaky) error = nil")
		}
	}
	if fetcher.callCount("flaky") != 2 {
		t.Errorf("upstream calls = %d, want 2", fetcher.callCount("flaky"))
	}
	if store.Len() != 0 {
		t.Errorf("store.Len() = %d, errors must not be cached", store.Len())
	}
}
