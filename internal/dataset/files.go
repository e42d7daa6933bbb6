// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// idColumns are accepted names for the external id column, in priority order.
var idColumns = []string{"movie_id", "external_id", "tmdb_id"}

// ErrMissingColumn is returned when the catalog header lacks a required column.
var ErrMissingColumn = errors.New("catalog header is missing a required column")

// ErrBlankExternalID is returned for a catalog row without a poster key.
// The blank id is reserved for placeholder rows.
var ErrBlankExternalID = errors.New("catalog row has a blank external id")

// FileLoader loads a catalog CSV and a JSON matrix from disk.
type FileLoader struct {
	CatalogPath string
	MatrixPath  string
}

// Name implements Loader.
func (l *FileLoader) Name() string {
	return config.SourceFiles
}

// Load implements Loader.
func (l *FileLoader) Load(ctx context.Context) (*recommend.Catalog, *recommend.Matrix, error) {
	catalog, err := readFile(l.CatalogPath, ReadCatalogCSV)
	if err != nil {
		return nil, nil, fmt.Errorf("catalog %s: %w", l.CatalogPath, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}

	matrix, err := readFile(l.MatrixPath, ReadMatrixJSON)
	if err != nil {
		return nil, nil, fmt.Errorf("matrix %s: %w", l.MatrixPath, err)
	}

	return catalog, matrix, nil
}

func readFile[T any](path string, parse func(io.Reader) (T, error)) (T, error) {
	var zero T
	if path == "" {
		return zero, errors.New("path is empty")
	}

	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return zero, err
	}
	defer f.Close()

	return parse(bufio.NewReader(f))
}

// ReadCatalogCSV parses a catalog with a header row. See the package
// documentation for the accepted columns.
func ReadCatalogCSV(r io.Reader) (*recommend.Catalog, error) {
	cr := csv.NewReader(r)
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catalog is empty")
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	titleCol, idCol, err := catalogColumns(header)
	if err != nil {
		return nil, err
	}

	var items []recommend.Item
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", len(items)+1, err)
		}
		id := strings.TrimSpace(record[idCol])
		if id == recommend.PlaceholderExternalID {
			return nil, fmt.Errorf("row %d (%q): %w", len(items)+1, record[titleCol], ErrBlankExternalID)
		}
		items = append(items, recommend.Item{
			Title:      record[titleCol],
			ExternalID: id,
		})
	}

	return recommend.NewCatalog(items), nil
}

func catalogColumns(header []string) (titleCol, idCol int, err error) {
	positions := make(map[string]int, len(header))
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\uFEFF")))
		if _, dup := positions[name]; !dup {
			positions[name] = i
		}
	}

	titleCol, ok := positions["title"]
	if !ok {
		return 0, 0, fmt.Errorf("%w: title", ErrMissingColumn)
	}
	for _, name := range idColumns {
		if i, ok := positions[name]; ok {
			return titleCol, i, nil
		}
	}
	return 0, 0, fmt.Errorf("%w: one of %s", ErrMissingColumn, strings.Join(idColumns, ", "))
}

// ReadMatrixJSON parses a square matrix encoded as an array of rows.
func ReadMatrixJSON(r io.Reader) (*recommend.Matrix, error) {
	var rows [][]float64
	if err := json.NewDecoder(r).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode matrix: %w", err)
	}
	return recommend.NewMatrixFromRows(rows)
}
