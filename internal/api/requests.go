// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

// Title autocomplete bounds.
const (
	defaultTitleSuggestions = 20
	maxTitleSuggestions     = 100
)

// RecommendationsRequest holds GET /api/v1/recommendations parameters.
type RecommendationsRequest struct {
	Title string `query:"title" validate:"required,title,max=500"`
	K     int    `query:"k" validate:"min=1"`
}

// TitlesRequest holds GET /api/v1/titles parameters.
type TitlesRequest struct {
	Prefix string `query:"prefix" validate:"max=200"`
	Limit  int    `query:"limit" validate:"min=1,max=100"`
}
