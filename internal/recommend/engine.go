// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Note: This package has no dependencies on other internal packages.
// Metrics and poster resolution are layered on by callers.

// Request describes a single "more like this" query.
type Request struct {
	// Title is the exact catalog title to find neighbours for.
	Title string `json:"title"`

	// K is the number of rows to return. Zero means the configured default;
	// values above Limits.MaxK are clamped, so callers that promise exactly
	// K rows must reject them first.
	K int `json:"k"`

	// RequestID is propagated into logs. Generated when empty.
	RequestID string `json:"request_id,omitempty"`
}

// Response is the result of a Request.
type Response struct {
	Title    string           `json:"title"`
	Items    []Recommendation `json:"items"`
	Metadata ResponseMetadata `json:"metadata"`
}

// ResponseMetadata describes how a response was produced.
type ResponseMetadata struct {
	RequestID    string    `json:"request_id"`
	K            int       `json:"k"`
	Placeholders int       `json:"placeholders"`
	CatalogSize  int       `json:"catalog_size"`
	LatencyMS    int64     `json:"latency_ms"`
	GeneratedAt  time.Time `json:"generated_at"`
}

// Stats are cumulative engine counters.
type Stats struct {
	Requests int64 `json:"requests"`
	NotFound int64 `json:"not_found"`
	Errors   int64 `json:"errors"`
}

// Engine serves recommendation requests from an Index.
// It is safe for concurrent use.
type Engine struct {
	index  *Index
	config *Config
	logger zerolog.Logger

	requestCount  atomic.Int64
	notFoundCount atomic.Int64
	errorCount    atomic.Int64
}

// NewEngine creates a new recommendation engine over a validated index.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(index *Index, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if index == nil {
		return nil, errors.New("index is required")
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &Engine{
		index:  index,
		config: cfg,
		logger: logger.With().Str("component", "recommend").Logger(),
	}, nil
}

// Index returns the underlying index.
func (e *Engine) Index() *Index {
	return e.index
}

// Config returns the engine configuration.
func (e *Engine) Config() *Config {
	return e.config
}

// Recommend answers a request. The only error it returns for a well-formed
// engine is a *NotFoundError.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	e.requestCount.Add(1)

	if err := ctx.Err(); err != nil {
		e.errorCount.Add(1)
		return nil, err
	}

	req = e.prepareRequest(req)
	logger := e.logger.With().
		Str("request_id", req.RequestID).
		Str("title", req.Title).
		Int("k", req.K).
		Logger()
	logger.Debug().Msg("processing recommendation request")

	items, err := e.index.Recommend(req.Title, req.K)
	if err != nil {
		if errors.Is(err, ErrItemNotFound) {
			e.notFoundCount.Add(1)
			logger.Debug().Msg("title not in catalog")
		} else {
			e.errorCount.Add(1)
		}
		return nil, err
	}

	placeholders := 0
	for _, it := range items {
		if it.Placeholder {
			placeholders++
		}
	}

	resp := &Response{
		Title: req.Title,
		Items: items,
		Metadata: ResponseMetadata{
			RequestID:    req.RequestID,
			K:            req.K,
			Placeholders: placeholders,
			CatalogSize:  e.index.Len(),
			LatencyMS:    time.Since(start).Milliseconds(),
			GeneratedAt:  time.Now().UTC(),
		},
	}

	logger.Debug().
		Int("returned", len(items)).
		Int("placeholders", placeholders).
		Int64("latency_ms", resp.Metadata.LatencyMS).
		Msg("recommendation complete")

	return resp, nil
}

// prepareRequest applies defaults and generates a request ID if needed.
//
//nolint:gocritic // hugeParam: req passed by value for immutability
func (e *Engine) prepareRequest(req Request) Request {
	if req.RequestID == "" {
		req.RequestID = uuid.NewString()
	}
	if req.K == 0 {
		req.K = e.config.Limits.DefaultK
	}
	if req.K > e.config.Limits.MaxK {
		req.K = e.config.Limits.MaxK
	}
	return req
}

// Stats returns a snapshot of the engine counters.
func (e *Engine) Stats() Stats {
	return Stats{
		Requests: e.requestCount.Load(),
		NotFound: e.notFoundCount.Load(),
		Errors:   e.errorCount.Load(),
	}
}
