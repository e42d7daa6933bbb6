// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package poster

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/config"
)

func TestNew_Disabled(t *testing.T) {
	t.Parallel()

	svc, err := New(&config.PosterConfig{Enabled: false}, zerolog.Nop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if svc.Enabled() {
		t.Error("Enabled() = true, want false")
	}
	if got := svc.Resolve(context.Background(), "19995"); got != config.DefaultNoPosterURL {
		t.Errorf("Resolve() = %q, want default no-poster URL", got)
	}
	if svc.BreakerState() != "" || svc.CacheBackend() != "none" || svc.BadgerStore() != nil {
		t.Errorf("disabled service has breaker=%q cache=%q", svc.BreakerState(), svc.CacheBackend())
	}
	if err := svc.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}

func TestNew_FullChain(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"poster_path":"/heat.jpg"}`))
	}))
	defer server.Close()

	cfg := testPosterConfig(server.URL)
	cfg.Cache = config.PosterCacheConfig{Enabled: true, Backend: config.CacheBackendMemory, TTL: time.Hour, Capacity: 10}
	cfg.Breaker = *testBreakerConfig()

	svc, err := New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer svc.Close()

	want := "https://image.tmdb.org/t/p/w500/heat.jpg"
	for i := 0; i < 3; i++ {
		if got := svc.Resolve(context.Background(), "949"); got != want {
			t.Fatalf("Resolve() = %q, want %q", got, want)
		}
	}
	if calls.Load() != 1 {
		t.Errorf("TMDB calls = %d, want 1 (cached)", calls.Load())
	}
	if svc.BreakerState() != "closed" {
		t.Errorf("BreakerState() = %q, want closed", svc.BreakerState())
	}
	if svc.CacheBackend() != cache.BackendMemory {
		t.Errorf("CacheBackend() = %q", svc.CacheBackend())
	}
}

func TestNew_BadgerCache(t *testing.T) {
	t.Parallel()

	cfg := testPosterConfig("http://127.0.0.1:1")
	cfg.Cache = config.PosterCacheConfig{Enabled: true, Backend: config.CacheBackendBadger, TTL: time.Hour, Path: t.TempDir()}

	svc, err := New(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if svc.BadgerStore() == nil {
		t.Fatal("BadgerStore() = nil for badger backend")
	}
	if err := svc.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
}
