// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package api

import (
	"context"
	"time"

	"github.com/tomtom215/reelmatch/internal/cache"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// PosterResolver is the poster lookup surface the handlers need.
// poster.Service implements it.
type PosterResolver interface {
	Resolve(ctx context.Context, externalID string) string
	Enabled() bool
	BreakerState() string
}

// Handler contains dependencies for API handlers
//
// Handler methods are split across multiple files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response and validation helpers
//   - handlers_health.go: health endpoints
//   - handlers_titles.go: catalog listing and autocomplete
//   - handlers_recommend.go: recommendation queries
type Handler struct {
	engine    *recommend.Engine
	posters   PosterResolver
	titles    *cache.Trie
	config    *config.Config
	version   string
	startTime time.Time
}

// NewHandler creates a new API handler.
//
// The title autocomplete index is built once from the engine's catalog.
//
// Example:
//
//	handler := api.NewHandler(engine, posterSvc, cfg, version)
//	router := api.NewRouter(handler, api.NewChiMiddleware(api.NewChiMiddlewareConfig(&cfg.Security)))
//	http.ListenAndServe(cfg.Server.Addr(), router.SetupChi())
func NewHandler(engine *recommend.Engine, posters PosterResolver, cfg *config.Config, version string) *Handler {
	titles := cache.NewTrieWithOptions(false, maxTitleSuggestions)
	for _, item := range engine.Index().Catalog().Items() {
		titles.InsertWithData(item.Title, item.Index)
	}

	return &Handler{
		engine:    engine,
		posters:   posters,
		titles:    titles,
		config:    cfg,
		version:   version,
		startTime: time.Now(),
	}
}
