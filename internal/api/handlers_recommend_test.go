// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/tomtom215/reelmatch/internal/models"
)

// =====================================================
// Recommendations Handler Tests
// =====================================================

func recommendURL(title string, extra string) string {
	u := "/api/v1/recommendations?title=" + url.QueryEscape(title)
	if extra != "" {
		u += "&" + extra
	}
	return u
}

func TestRecommendations_ExplicitK(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil, nil)

	var data models.RecommendationsResponse
	w, resp := doGet(t, h, recommendURL("Avatar", "k=2"), &data)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if resp.Status != models.StatusSuccess {
		t.Errorf("status field = %q, want success", resp.Status)
	}
	if data.Query != "Avatar" || data.K != 2 || data.Placeholders != 0 {
		t.Errorf("data = %+v", data)
	}

	want := []string{"Avengers", "Alien"}
	if len(data.Items) != len(want) {
		t.Fatalf("len(Items) = %d, want %d", len(data.Items), len(want))
	}
	for i, title := range want {
		if data.Items[i].Title != title {
			t.Errorf("Items[%d].Title = %q, want %q", i, data.Items[i].Title, title)
		}
		if data.Items[i].Rank != i+1 {
			t.Errorf("Items[%d].Rank = %d, want %d", i, data.Items[i].Rank, i+1)
		}
	}
	if data.Items[0].ExternalID != "24428" || data.Items[0].Score != 0.9 {
		t.Errorf("Items[0] = %+v", data.Items[0])
	}
}

func TestRecommendations_DefaultKPadsWithPlaceholders(t *testing.T) {
	t.Parallel()
	posters := &fakePosters{}
	h := newTestServer(t, posters, nil)

	var data models.RecommendationsResponse
	w, _ := doGet(t, h, recommendURL("Avatar", ""), &data)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}
	if data.K != 5 || len(data.Items) != 5 {
		t.Fatalf("K = %d, len(Items) = %d, want 5", data.K, len(data.Items))
	}
	if data.Placeholders != 2 {
		t.Errorf("Placeholders = %d, want 2", data.Placeholders)
	}
	for i, item := range data.Items[3:] {
		if !item.Placeholder || item.Title != "No Recommendation Available" || item.ExternalID != "" {
			t.Errorf("Items[%d] = %+v, want placeholder row", i+3, item)
		}
	}
	for i, item := range data.Items {
		if item.PosterURL != "" {
			t.Errorf("Items[%d].PosterURL = %q, want empty while posters are disabled", i, item.PosterURL)
		}
	}
	if len(posters.calls) != 0 {
		t.Errorf("poster lookups = %v, want none", posters.calls)
	}
}

func TestRecommendations_WithPosters(t *testing.T) {
	t.Parallel()
	posters := &fakePosters{enabled: true}
	h := newTestServer(t, posters, nil)

	var data models.RecommendationsResponse
	w, _ := doGet(t, h, recommendURL("Heat", "k=4"), &data)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", w.Code, w.Body.String())
	}

	want := []string{
		"https://img/348.jpg",
		"https://img/24428.jpg",
		"https://img/19995.jpg",
		"https://img/none",
	}
	if len(data.Items) != len(want) {
		t.Fatalf("len(Items) = %d, want %d", len(data.Items), len(want))
	}
	for i, u := range want {
		if data.Items[i].PosterURL != u {
			t.Errorf("Items[%d].PosterURL = %q, want %q", i, data.Items[i].PosterURL, u)
		}
	}
}

func TestRecommendations_UnknownTitle(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil, nil)

	w, resp := doGet(t, h, recommendURL("avatar", ""), nil)

	if w.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", w.Code)
	}
	if resp.Error == nil || resp.Error.Code != models.ErrCodeItemNotFound {
		t.Fatalf("error = %+v, want %s", resp.Error, models.ErrCodeItemNotFound)
	}
	if resp.Error.Details["title"] != "avatar" {
		t.Errorf("details = %v, want title=avatar", resp.Error.Details)
	}
	if got := w.Header().Get("Cache-Control"); got != "no-store" {
		t.Errorf("Cache-Control = %q, want no-store", got)
	}
}

func TestRecommendations_ValidationErrors(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil, nil)

	tests := []struct {
		name   string
		target string
	}{
		{name: "missing title", target: "/api/v1/recommendations"},
		{name: "blank title", target: recommendURL("   ", "")},
		{name: "zero k", target: recommendURL("Avatar", "k=0")},
		{name: "negative k", target: recommendURL("Avatar", "k=-3")},
		{name: "non-integer k", target: recommendURL("Avatar", "k=abc")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w, resp := doGet(t, h, tt.target, nil)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
			}
			if resp.Error == nil || resp.Error.Code != models.ErrCodeValidation {
				t.Errorf("error = %+v, want %s", resp.Error, models.ErrCodeValidation)
			}
		})
	}
}

func TestRecommendations_KAboveMax(t *testing.T) {
	t.Parallel()
	h := newTestServer(t, nil, nil)

	w, resp := doGet(t, h, recommendURL("Alien", "k=11"), nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400: %s", w.Code, w.Body.String())
	}
	if resp.Error == nil || resp.Error.Code != models.ErrCodeValidation {
		t.Fatalf("error = %+v, want %s", resp.Error, models.ErrCodeValidation)
	}
	if !strings.Contains(resp.Error.Message, "at most 10") {
		t.Errorf("message = %q, want the max_k bound", resp.Error.Message)
	}

	var data models.RecommendationsResponse
	w, _ = doGet(t, h, recommendURL("Alien", "k=10"), &data)
	if w.Code != http.StatusOK {
		t.Fatalf("k=max status = %d, want 200", w.Code)
	}
	if len(data.Items) != 10 || data.Placeholders != 7 {
		t.Errorf("len(Items) = %d, Placeholders = %d, want 10 and 7", len(data.Items), data.Placeholders)
	}
}
