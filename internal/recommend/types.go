// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"errors"
	"fmt"
)

const (
	// PlaceholderTitle is the title of padding rows.
	PlaceholderTitle = "No Recommendation Available"

	// PlaceholderExternalID marks padding rows. Poster resolvers map it to
	// the "no poster" image without a network call.
	PlaceholderExternalID = ""
)

var (
	// ErrItemNotFound is returned when the query title is not in the catalog.
	ErrItemNotFound = errors.New("item not found")

	// ErrShapeMismatch is returned when catalog and matrix sizes disagree.
	ErrShapeMismatch = errors.New("catalog and similarity matrix shapes do not match")

	// ErrNonFiniteScore is returned when the matrix holds NaN or ±Inf.
	ErrNonFiniteScore = errors.New("similarity score is not finite")
)

// NotFoundError carries the title that could not be resolved.
type NotFoundError struct {
	Title string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %q", ErrItemNotFound.Error(), e.Title)
}

// Unwrap allows errors.Is(err, ErrItemNotFound).
func (e *NotFoundError) Unwrap() error {
	return ErrItemNotFound
}

// ShapeError describes which dimension broke the size invariant.
type ShapeError struct {
	// What names the mismatching dimension, e.g. "rows" or "row 3".
	What     string
	Got      int
	Expected int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s has %d entries, expected %d", ErrShapeMismatch.Error(), e.What, e.Got, e.Expected)
}

// Unwrap allows errors.Is(err, ErrShapeMismatch).
func (e *ShapeError) Unwrap() error {
	return ErrShapeMismatch
}

// NonFiniteError locates the first non-finite matrix cell.
type NonFiniteError struct {
	Row   int
	Col   int
	Value float64
}

func (e *NonFiniteError) Error() string {
	return fmt.Sprintf("%s: cell (%d,%d) is %v", ErrNonFiniteScore.Error(), e.Row, e.Col, e.Value)
}

// Unwrap allows errors.Is(err, ErrNonFiniteScore).
func (e *NonFiniteError) Unwrap() error {
	return ErrNonFiniteScore
}

// Item is one catalog entry.
type Item struct {
	// Index is the item's 0-based position in the catalog and matrix.
	Index int `json:"index"`

	// Title is the display title. Titles may repeat.
	Title string `json:"title"`

	// ExternalID is the opaque key used for poster lookup (a TMDB movie id).
	ExternalID string `json:"external_id"`
}

// Recommendation is one row of a query result.
type Recommendation struct {
	// Title is the recommended item's title, or PlaceholderTitle.
	Title string `json:"title"`

	// ExternalID is the recommended item's poster key, or PlaceholderExternalID.
	ExternalID string `json:"external_id"`

	// Index is the catalog position, -1 for placeholders.
	Index int `json:"index"`

	// Score is the similarity to the query item, 0 for placeholders.
	Score float64 `json:"score"`

	// Placeholder is true for padding rows.
	Placeholder bool `json:"placeholder"`
}

// placeholder returns a padding row.
func placeholder() Recommendation {
	return Recommendation{
		Title:       PlaceholderTitle,
		ExternalID:  PlaceholderExternalID,
		Index:       -1,
		Placeholder: true,
	}
}
