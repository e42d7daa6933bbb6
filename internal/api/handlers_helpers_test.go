// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/models"
)

func TestSanitizeLogValue(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{in: "Heat", want: "Heat"},
		{in: "line\nbreak", want: `line\x0abreak`},
		{in: "tab\there", want: `tab\x09here`},
		{in: "del\x7f", want: `del\x7f`},
		{in: "Amélie", want: "Amélie"},
	}

	for _, tt := range tests {
		if got := sanitizeLogValue(tt.in); got != tt.want {
			t.Errorf("sanitizeLogValue(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestGenerateETag(t *testing.T) {
	t.Parallel()

	a := generateETag([]byte(`{"a":1}`))
	b := generateETag([]byte(`{"a":2}`))
	if a == "" || a == b {
		t.Errorf("etags %q and %q should be distinct and non-empty", a, b)
	}
	if a != generateETag([]byte(`{"a":1}`)) {
		t.Error("etag should be deterministic")
	}
}

func TestIntQueryParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query   string
		want    int
		wantErr bool
	}{
		{query: "", want: 7},
		{query: "k=3", want: 3},
		{query: "k=%203%20", want: 3},
		{query: "k=-1", want: -1},
		{query: "k=1.5", wantErr: true},
		{query: "k=abc", wantErr: true},
	}

	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/?"+tt.query, nil)
		got, apiErr := intQueryParam(r, "k", 7)
		if (apiErr != nil) != tt.wantErr {
			t.Errorf("intQueryParam(%q) error = %+v, wantErr %v", tt.query, apiErr, tt.wantErr)
			continue
		}
		if apiErr != nil {
			if apiErr.Code != models.ErrCodeValidation {
				t.Errorf("code = %q, want %q", apiErr.Code, models.ErrCodeValidation)
			}
			continue
		}
		if got != tt.want {
			t.Errorf("intQueryParam(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}

func TestRespondError(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	respondErrorWithDetails(w, http.StatusNotFound, models.ErrCodeItemNotFound, "missing",
		map[string]interface{}{"title": "X"}, nil)

	if w.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", w.Code)
	}
	if got := w.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", got)
	}

	var resp models.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Status != models.StatusError || resp.Error == nil || resp.Error.Message != "missing" {
		t.Errorf("response = %+v", resp)
	}
}

func TestRespondJSON_CacheControl(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	respondJSON(w, http.StatusOK, &models.APIResponse{Status: models.StatusSuccess})

	if got := w.Header().Get("Cache-Control"); got != "public, max-age=60" {
		t.Errorf("Cache-Control = %q, want public, max-age=60", got)
	}
	if w.Header().Get("Content-Type") != "application/json" {
		t.Errorf("Content-Type = %q", w.Header().Get("Content-Type"))
	}
}
