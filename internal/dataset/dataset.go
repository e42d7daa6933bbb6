// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/metrics"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// maxNonSelfMaximalWarnings caps how many offending rows are logged.
const maxNonSelfMaximalWarnings = 10

// Loader reads a catalog and matrix from one source.
type Loader interface {
	// Name identifies the source in logs and metrics.
	Name() string
	// Load reads the raw catalog and matrix. Shape validation is done by Load.
	Load(ctx context.Context) (*recommend.Catalog, *recommend.Matrix, error)
}

// NewLoader returns the loader selected by cfg.Source.
func NewLoader(cfg *config.DataConfig) (Loader, error) {
	switch cfg.Source {
	case config.SourceFiles, "":
		return &FileLoader{CatalogPath: cfg.CatalogPath, MatrixPath: cfg.MatrixPath}, nil
	case config.SourceDuckDB:
		return &DuckDBLoader{Path: cfg.DuckDBPath}, nil
	default:
		return nil, fmt.Errorf("unknown data source %q", cfg.Source)
	}
}

// Load runs loader, validates the result and records load metrics.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Load(ctx context.Context, loader Loader, logger zerolog.Logger) (*recommend.Index, error) {
	start := time.Now()
	source := loader.Name()

	index, err := load(ctx, loader)
	elapsed := time.Since(start)

	items := 0
	if index != nil {
		items = index.Len()
	}
	metrics.RecordDatasetLoad(source, elapsed, items, err)

	if err != nil {
		return nil, fmt.Errorf("load %s dataset: %w", source, err)
	}

	logger.Info().
		Str("source", source).
		Int("items", items).
		Dur("duration", elapsed).
		Msg("dataset loaded")

	warnNonSelfMaximal(index, logger)
	return index, nil
}

// LoadFromConfig is NewLoader followed by Load.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func LoadFromConfig(ctx context.Context, cfg *config.DataConfig, logger zerolog.Logger) (*recommend.Index, error) {
	loader, err := NewLoader(cfg)
	if err != nil {
		return nil, err
	}
	return Load(ctx, loader, logger)
}

func load(ctx context.Context, loader Loader) (*recommend.Index, error) {
	catalog, matrix, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	return recommend.NewIndex(catalog, matrix)
}

// warnNonSelfMaximal logs rows where an item is not its own best match. The
// query always drops the top-ranked row, so such rows lose a real neighbour
// and may return the query item itself.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func warnNonSelfMaximal(index *recommend.Index, logger zerolog.Logger) {
	rows := index.NonSelfMaximalRows()
	if len(rows) == 0 {
		return
	}

	sample := rows
	if len(sample) > maxNonSelfMaximalWarnings {
		sample = sample[:maxNonSelfMaximalWarnings]
	}
	titles := make([]string, len(sample))
	for i, r := range sample {
		titles[i] = index.Catalog().At(r).Title
	}

	logger.Warn().
		Int("rows", len(rows)).
		Strs("sample_titles", titles).
		Msg("similarity rows where the item is not its own top match")
}
