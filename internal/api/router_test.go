// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	_ "github.com/tomtom215/reelmatch/docs"
	"github.com/tomtom215/reelmatch/internal/middleware"
	"github.com/tomtom215/reelmatch/internal/models"
)

// =====================================================
// Router Tests
// =====================================================

func TestRouter_UnknownRoute(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil, nil)

	w, resp := doGet(t, h, "/api/v1/nope", nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if resp.Error == nil || resp.Error.Code != models.ErrCodeNotFound {
		t.Errorf("error = %+v, want %s", resp.Error, models.ErrCodeNotFound)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/titles", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", w.Code)
	}
}

func TestRouter_RequestID(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommendations?title=Avatar&k=1", nil)
	req.Header.Set(middleware.RequestIDHeader, "trace-abc")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if got := w.Header().Get(middleware.RequestIDHeader); got != "trace-abc" {
		t.Errorf("response %s = %q, want trace-abc", middleware.RequestIDHeader, got)
	}
	if !strings.Contains(w.Body.String(), `"request_id":"trace-abc"`) {
		t.Errorf("body does not carry request id: %s", w.Body.String())
	}

	w, resp := doGet(t, h, "/api/v1/health/live", nil)
	if w.Header().Get(middleware.RequestIDHeader) == "" {
		t.Error("request id should be generated when absent")
	}
	if resp.Metadata.RequestID != w.Header().Get(middleware.RequestIDHeader) {
		t.Errorf("metadata request id = %q, header = %q", resp.Metadata.RequestID, w.Header().Get(middleware.RequestIDHeader))
	}
}

func TestRouter_SecurityHeaders(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil, nil)

	w, _ := doGet(t, h, "/api/v1/titles", nil)
	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
	} {
		if got := w.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
	if w.Header().Get("ETag") == "" {
		t.Error("ETag should be set on JSON responses")
	}
}

func TestRouter_Metrics(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil, nil)

	// Generate at least one API sample.
	doGet(t, h, "/api/v1/health/live", nil)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "api_requests_total") {
		t.Error("metrics output should contain api_requests_total")
	}
}

func TestRouter_Compression(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/titles", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if got := w.Header().Get("Content-Encoding"); got != "gzip" {
		t.Errorf("Content-Encoding = %q, want gzip", got)
	}
}

func TestRouter_SwaggerDoc(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	var doc struct {
		Swagger  string                    `json:"swagger"`
		BasePath string                    `json:"basePath"`
		Paths    map[string]map[string]any `json:"paths"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &doc); err != nil {
		t.Fatalf("doc.json is not valid JSON: %v", err)
	}
	if doc.Swagger != "2.0" || doc.BasePath != "/api/v1" {
		t.Errorf("swagger = %q, basePath = %q", doc.Swagger, doc.BasePath)
	}
	for _, path := range []string{"/health", "/health/live", "/titles", "/recommendations"} {
		if _, ok := doc.Paths[path]["get"]; !ok {
			t.Errorf("doc.json missing GET %s", path)
		}
	}
}

func TestRouter_SwaggerUI(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil, nil)

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !strings.Contains(w.Body.String(), "swagger-ui") {
		t.Error("index.html should mount the swagger-ui element")
	}
}
