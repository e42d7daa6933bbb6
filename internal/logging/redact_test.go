// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package logging

import (
	"strings"
	"testing"
)

func TestRedactSecret(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"short", "[REDACTED]"},
		{"0123456789abcdef", "[REDACTED]cdef"},
	}
	for _, tt := range tests {
		if got := RedactSecret(tt.in); got != tt.want {
			t.Errorf("RedactSecret(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRedactURL(t *testing.T) {
	t.Parallel()

	got := RedactURL("https://api.themoviedb.org/3/movie/550?api_key=supersecret&language=en-US")
	if strings.Contains(got, "supersecret") {
		t.Errorf("RedactURL() leaked key: %s", got)
	}
	if !strings.Contains(got, "REDACTED") || !strings.Contains(got, "language=en-US") {
		t.Errorf("RedactURL() = %s", got)
	}

	plain := "https://image.tmdb.org/t/p/w500/abc.jpg"
	if got := RedactURL(plain); got != plain {
		t.Errorf("RedactURL(%q) = %q, want unchanged", plain, got)
	}

	if got := RedactURL("://bad url"); got != "[REDACTED]" {
		t.Errorf("RedactURL(bad) = %q", got)
	}
}
