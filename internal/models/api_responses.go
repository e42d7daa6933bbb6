// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package models

import (
	"time"
)

// Response status values.
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// API error codes.
const (
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeItemNotFound = "ITEM_NOT_FOUND"
	ErrCodeInternal     = "INTERNAL_ERROR"
	ErrCodeRateLimited  = "RATE_LIMIT_EXCEEDED"
	ErrCodeNotFound     = "NOT_FOUND"
)

// APIResponse represents a standardized API response wrapper used by all HTTP endpoints.
//
// Example error response:
//
//	{
//	  "status": "error",
//	  "error": {
//	    "code": "ITEM_NOT_FOUND",
//	    "message": "title not found in catalog",
//	    "details": {"title": "Avatr"}
//	  },
//	  "metadata": {"timestamp": "2026-01-01T12:00:00Z"}
//	}
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata for observability.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
	Cached      bool      `json:"cached,omitempty"`
	RequestID   string    `json:"request_id,omitempty"`
}

// APIError represents an error response with structured error details.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// HealthStatus is returned by GET /api/v1/health.
type HealthStatus struct {
	Status        string  `json:"status"`
	Version       string  `json:"version"`
	DataSource    string  `json:"data_source"`
	CatalogSize   int     `json:"catalog_size"`
	PostersActive bool    `json:"posters_enabled"`
	PosterBreaker string  `json:"poster_breaker,omitempty"`
	UptimeSeconds float64 `json:"uptime_seconds"`
}

// TitlesResponse is returned by GET /api/v1/titles, in catalog order.
type TitlesResponse struct {
	Total  int      `json:"total"`
	Titles []string `json:"titles"`
}

// RecommendationItem is one row of a recommendation result.
type RecommendationItem struct {
	Rank        int     `json:"rank"`
	Title       string  `json:"title"`
	ExternalID  string  `json:"external_id"`
	Score       float64 `json:"score"`
	Placeholder bool    `json:"placeholder,omitempty"`
	PosterURL   string  `json:"poster_url,omitempty"`
}

// RecommendationsResponse is returned by GET /api/v1/recommendations.
type RecommendationsResponse struct {
	Query        string               `json:"query"`
	K            int                  `json:"k"`
	Placeholders int                  `json:"placeholders"`
	Items        []RecommendationItem `json:"items"`
}
