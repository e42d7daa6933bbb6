// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package poster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
)

// maxErrorBodySize limits how much of an error response is read
const maxErrorBodySize = 64 * 1024 // 64KB

// StatusError is returned when TMDB answers with an unexpected status.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("tmdb returned status %d: %s", e.StatusCode, e.Body)
}

// tmdbMovie is the subset of /movie/{id} that poster lookup needs.
type tmdbMovie struct {
	PosterPath *string `json:"poster_path"`
}

// TMDBClient fetches poster paths from the TMDB v3 API. Each call is a
// single attempt bounded by the client timeout.
type TMDBClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	language   string
	limiter    *rate.Limiter
}

// NewTMDBClient creates a client from poster configuration. A zero
// RequestsPerSecond disables client-side rate limiting.
func NewTMDBClient(cfg *config.PosterConfig) *TMDBClient {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	language := cfg.Language
	if language == "" {
		language = "en-US"
	}

	var limiter *rate.Limiter
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return &TMDBClient{
		httpClient: &http.Client{Timeout: timeout},
		baseURL:    strings.TrimRight(cfg.APIURL, "/"),
		apiKey:     cfg.APIKey,
		language:   language,
		limiter:    limiter,
	}
}

// PosterPath implements Fetcher. A 404 from TMDB is treated as a
// confirmed absence, matching a movie record without poster_path.
func (c *TMDBClient) PosterPath(ctx context.Context, externalID string) (string, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return "", fmt.Errorf("tmdb rate limiter: %w", err)
		}
	}

	query := url.Values{}
	query.Set("api_key", c.apiKey)
	query.Set("language", c.language)
	reqURL := fmt.Sprintf("%s/movie/%s?%s", c.baseURL, url.PathEscape(externalID), query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", redactErr(err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("tmdb request: %w", redactErr(err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		//nolint:errcheck // drain for connection reuse
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxErrorBodySize))
		return "", nil
	case resp.StatusCode != http.StatusOK:
		return "", &StatusError{StatusCode: resp.StatusCode, Body: readBodyForError(resp.Body)}
	}

	var movie tmdbMovie
	if err := json.NewDecoder(resp.Body).Decode(&movie); err != nil {
		return "", fmt.Errorf("decode tmdb response: %w", err)
	}
	if movie.PosterPath == nil {
		return "", nil
	}
	return *movie.PosterPath, nil
}

// readBodyForError reads at most maxErrorBodySize bytes for diagnostics.
func readBodyForError(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return "(failed to read response body)"
	}
	if len(body) == maxErrorBodySize {
		return string(body) + "\n... (truncated)"
	}
	return string(body)
}

// redactErr strips the API key from URLs embedded in transport errors.
func redactErr(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		urlErr.URL = logging.RedactURL(urlErr.URL)
	}
	return err
}
