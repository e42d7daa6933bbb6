// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/tomtom215/reelmatch/internal/api"
	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/dataset"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/poster"
	"github.com/tomtom215/reelmatch/internal/recommend"
	"github.com/tomtom215/reelmatch/internal/supervisor"
	"github.com/tomtom215/reelmatch/internal/supervisor/services"
)

const (
	shutdownTimeout        = 10 * time.Second
	cacheMaintenancePeriod = 5 * time.Minute
)

func newServeCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Load the dataset and serve the recommendation API until SIGINT or SIGTERM.

Endpoints:
  GET /api/v1/health
  GET /api/v1/health/live
  GET /api/v1/titles?prefix=&limit=
  GET /api/v1/recommendations?title=&k=
  GET /metrics`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, c.cfg)
		},
	}
}

// newEngine loads the configured dataset and wraps it in an engine.
func newEngine(ctx context.Context, cfg *config.Config) (*recommend.Engine, error) {
	index, err := dataset.LoadFromConfig(ctx, &cfg.Data, logging.WithComponent("dataset"))
	if err != nil {
		return nil, err
	}
	return recommend.NewEngine(index, &recommend.Config{
		Limits: recommend.LimitsConfig{
			DefaultK: cfg.Recommend.DefaultK,
			MaxK:     cfg.Recommend.MaxK,
		},
	}, logging.Logger())
}

func runServe(ctx context.Context, cfg *config.Config) error {
	logging.Info().
		Str("version", version).
		Str("data_source", cfg.Data.Source).
		Str("environment", cfg.Server.Environment).
		Msg("Starting reelmatch")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS allows any origin in production; set CORS_ORIGINS")
	}

	engine, err := newEngine(ctx, cfg)
	if err != nil {
		return fmt.Errorf("load dataset: %w", err)
	}

	posters, err := poster.New(&cfg.Poster, logging.WithComponent("poster"))
	if err != nil {
		return fmt.Errorf("init poster lookup: %w", err)
	}
	defer func() {
		if err := posters.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing poster cache")
		}
	}()

	handler := api.NewHandler(engine, posters, cfg, version)
	router := api.NewRouter(handler, api.NewChiMiddleware(api.NewChiMiddlewareConfig(&cfg.Security)))

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       2 * cfg.Server.Timeout,
	}

	treeCfg := supervisor.DefaultTreeConfig()
	treeCfg.ShutdownTimeout = shutdownTimeout
	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), treeCfg)
	if err != nil {
		return fmt.Errorf("create supervisor tree: %w", err)
	}

	tree.AddAPIService(services.NewHTTPServerService(srv, srv.Addr, shutdownTimeout, logging.WithComponent("http")))
	if store := posters.Cache(); store != nil {
		tree.AddDataService(services.NewCacheMaintenanceService(store, cacheMaintenancePeriod, logging.WithComponent("poster-cache")))
	}
	if bs := posters.BadgerStore(); bs != nil {
		tree.AddDataService(bs)
	}

	logging.Info().
		Str("addr", srv.Addr).
		Int("catalog_size", engine.Index().Len()).
		Bool("posters", posters.Enabled()).
		Str("poster_cache", posters.CacheBackend()).
		Msg("Starting supervisor tree")

	err = tree.Serve(ctx)

	if unstopped, _ := tree.UnstoppedServiceReport(); len(unstopped) > 0 {
		for _, svc := range unstopped {
			logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
		}
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("supervisor tree: %w", err)
	}
	logging.Info().Msg("Application stopped gracefully")
	return nil
}
