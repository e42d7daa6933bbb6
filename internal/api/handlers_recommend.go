// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/models"
	"github.com/tomtom215/reelmatch/internal/poster"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// recommendTimeout bounds ranking plus poster resolution for one request.
const recommendTimeout = 15 * time.Second

// Recommendations handles GET /api/v1/recommendations?title=...&k=...
//
// k defaults to recommend.default_k; a k above recommend.max_k is a
// validation error. The response always has exactly k items; rows beyond
// the catalog are placeholders.
//
// @Summary Recommend similar titles
// @Description Returns the k titles most similar to title, ranked by descending similarity. Rows beyond the end of the catalog are "No Recommendation Available" placeholders. poster_url is set only when poster lookup is enabled.
// @Tags Recommendations
// @Produce json
// @Param title query string true "Exact catalog title" maxlength(500)
// @Param k query int false "Number of recommendations (default recommend.default_k, at most recommend.max_k)" minimum(1)
// @Success 200 {object} models.APIResponse{data=models.RecommendationsResponse} "Ranked recommendations"
// @Failure 400 {object} models.APIResponse "Invalid title or k"
// @Failure 404 {object} models.APIResponse "Title not in catalog"
// @Failure 429 {object} models.APIResponse "Rate limit exceeded"
// @Router /recommendations [get]
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	k, apiErr := intQueryParam(r, "k", h.engine.Config().Limits.DefaultK)
	if apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}

	req := RecommendationsRequest{
		Title: r.URL.Query().Get("title"),
		K:     k,
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		respondValidationError(w, apiErr)
		return
	}
	if maxK := h.engine.Config().Limits.MaxK; req.K > maxK {
		respondValidationError(w, &models.APIError{
			Code:    models.ErrCodeValidation,
			Message: fmt.Sprintf("k must be at most %d", maxK),
			Details: map[string]interface{}{"field": "k", "value": req.K, "max": maxK},
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), recommendTimeout)
	defer cancel()

	resp, err := h.engine.Recommend(ctx, recommend.Request{
		Title:     req.Title,
		K:         req.K,
		RequestID: logging.RequestIDFromContext(r.Context()),
	})
	if err != nil {
		if errors.Is(err, recommend.ErrItemNotFound) {
			metrics.RecordRecommendation(metrics.OutcomeNotFound, time.Since(start), 0)
			respondErrorWithDetails(w, http.StatusNotFound, models.ErrCodeItemNotFound,
				"Title not found in catalog", map[string]interface{}{"title": req.Title}, nil)
			return
		}
		metrics.RecordRecommendation(metrics.OutcomeError, time.Since(start), 0)
		respondError(w, http.StatusInternalServerError, models.ErrCodeInternal, "Failed to generate recommendations", err)
		return
	}

	items := h.toItems(ctx, resp.Items)
	metrics.RecordRecommendation(metrics.OutcomeOK, time.Since(start), resp.Metadata.Placeholders)

	logging.Ctx(r.Context()).Debug().
		Str("title", sanitizeLogValue(req.Title)).
		Int("k", resp.Metadata.K).
		Int("placeholders", resp.Metadata.Placeholders).
		Msg("recommendations served")

	respondJSON(w, http.StatusOK, &models.APIResponse{
		Status: models.StatusSuccess,
		Data: models.RecommendationsResponse{
			Query:        resp.Title,
			K:            resp.Metadata.K,
			Placeholders: resp.Metadata.Placeholders,
			Items:        items,
		},
		Metadata: models.Metadata{
			Timestamp:   time.Now(),
			QueryTimeMS: time.Since(start).Milliseconds(),
			RequestID:   resp.Metadata.RequestID,
		},
	})
}

// toItems converts ranked rows to API items, attaching poster URLs when
// poster lookup is enabled. Posters are resolved after ranking, one
// goroutine per row.
func (h *Handler) toItems(ctx context.Context, recs []recommend.Recommendation) []models.RecommendationItem {
	items := make([]models.RecommendationItem, len(recs))
	for i, rec := range recs {
		items[i] = models.RecommendationItem{
			Rank:        i + 1,
			Title:       rec.Title,
			ExternalID:  rec.ExternalID,
			Score:       rec.Score,
			Placeholder: rec.Placeholder,
		}
	}

	if !h.posters.Enabled() {
		return items
	}

	ids := make([]string, len(recs))
	for i, rec := range recs {
		ids[i] = rec.ExternalID
	}
	for i, url := range poster.ResolveAll(ctx, h.posters, ids) {
		items[i].PosterURL = url
	}
	return items
}
