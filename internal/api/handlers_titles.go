// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/models"
)

// Titles handles GET /api/v1/titles.
//
// Without a prefix the whole catalog is returned in catalog order, which is
// the selection list for the query UI. With ?prefix= the titles starting
// with it (case-insensitive) are returned, up to ?limit= (default 20, max 100).
//
// @Summary List catalog titles
// @Description Returns every title in catalog order, or the titles starting with prefix (case-insensitive) for autocomplete.
// @Tags Catalog
// @Produce json
// @Param prefix query string false "Case-insensitive title prefix" maxlength(200)
// @Param limit query int false "Maximum suggestions when prefix is set" minimum(1) maximum(100) default(20)
// @Success 200 {object} models.APIResponse{data=models.TitlesResponse} "Titles"
// @Failure 400 {object} models.APIResponse "Invalid prefix or limit"
// @Failure 429 {object} models.APIResponse "Rate limit exceeded"
// @Router /titles [get]
func (h *Handler) Titles(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	limit, apiErr := intQueryParam(r, "limit", defaultTitleSuggestions)
	if apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	req := TitlesRequest{
		Prefix: r.URL.Query().Get("prefix"),
		Limit:  limit,
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	var titles []string
	if req.Prefix == "" {
		titles = h.engine.Index().Catalog().Titles()
	} else {
		matches := h.titles.AutocompleteWithLimit(req.Prefix, req.Limit)
		titles = make([]string, len(matches))
		for i, m := range matches {
			titles[i] = m.Value
		}
	}

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data: models.TitlesResponse{
			Total:  len(titles),
			Titles: titles,
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
		},
	})
}
