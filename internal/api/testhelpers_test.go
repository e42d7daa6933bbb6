// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/models"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// fakePosters resolves ids to predictable URLs.
type fakePosters struct {
	enabled bool
	breaker string

	mu    sync.Mutex
	calls []string
}

func (f *fakePosters) Resolve(_ context.Context, id string) string {
	f.mu.Lock()
	f.calls = append(f.calls, id)
	f.mu.Unlock()
	if id == "" {
		return "https://img/none"
	}
	return "https://img/" + id + ".jpg"
}

func (f *fakePosters) Enabled() bool        { return f.enabled }
func (f *fakePosters) BreakerState() string { return f.breaker }

// testEngine builds the four item A..D fixture with A's neighbours B, C, D.
func testEngine(t *testing.T) *recommend.Engine {
	t.Helper()

	catalog := recommend.NewCatalog([]recommend.Item{
		{Title: "Avatar", ExternalID: "19995"},
		{Title: "Avengers", ExternalID: "24428"},
		{Title: "Alien", ExternalID: "348"},
		{Title: "Heat", ExternalID: "949"},
	})
	matrix, err := recommend.NewMatrixFromRows([][]float64{
		{1.0, 0.9, 0.5, 0.1},
		{0.9, 1.0, 0.4, 0.2},
		{0.5, 0.4, 1.0, 0.3},
		{0.1, 0.2, 0.3, 1.0},
	})
	if err != nil {
		t.Fatal(err)
	}
	index, err := recommend.NewIndex(catalog, matrix)
	if err != nil {
		t.Fatal(err)
	}
	engine, err := recommend.NewEngine(index, &recommend.Config{
		Limits: recommend.LimitsConfig{DefaultK: 5, MaxK: 10},
	}, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	return engine
}

func testConfig() *config.Config {
	return &config.Config{
		Data: config.DataConfig{Source: config.SourceFiles},
		Security: config.SecurityConfig{
			RateLimitReqs:   1000,
			RateLimitWindow: time.Minute,
			CORSOrigins:     []string{"https://app.example.com"},
		},
	}
}

// newTestServer returns the full router for the fixture.
func newTestServer(t *testing.T, posters *fakePosters, mc *ChiMiddlewareConfig) http.Handler {
	t.Helper()
	if posters == nil {
		posters = &fakePosters{}
	}
	cfg := testConfig()
	if mc == nil {
		mc = NewChiMiddlewareConfig(&cfg.Security)
	}
	handler := NewHandler(testEngine(t), posters, cfg, "test")
	return NewRouter(handler, NewChiMiddleware(mc)).SetupChi()
}

// doGet performs a GET and decodes the envelope. data is decoded into out
// when out is non-nil and the response succeeded.
func doGet(t *testing.T, h http.Handler, target string, out interface{}) (*httptest.ResponseRecorder, *models.APIResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var raw struct {
		Status   string           `json:"status"`
		Data     json.RawMessage  `json:"data"`
		Metadata models.Metadata  `json:"metadata"`
		Error    *models.APIError `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &raw); err != nil {
		t.Fatalf("decode %s response %q: %v", target, w.Body.String(), err)
	}
	if out != nil && raw.Status == models.StatusSuccess {
		if err := json.Unmarshal(raw.Data, out); err != nil {
			t.Fatalf("decode %s data: %v", target, err)
		}
	}

	return w, &models.APIResponse{Status: raw.Status, Metadata: raw.Metadata, Error: raw.Error}
}
