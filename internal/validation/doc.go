// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is shared process-wide. Field names in error
// messages come from the `query` struct tag, falling back to `json`, so
// clients see the parameter names they sent.
//
// Custom tags:
//   - title: non-blank and free of control characters
//
// Example:
//
//	type RecommendationsRequest struct {
//	    Title string `query:"title" validate:"required,title,max=512"`
//	    K     int    `query:"k" validate:"min=1,max=1000"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, verr)
//	}
package validation
