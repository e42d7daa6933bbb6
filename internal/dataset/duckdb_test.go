// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

func testIndex(t *testing.T) *recommend.Index {
	t.Helper()
	catalog, err := ReadCatalogCSV(strings.NewReader(testCatalogCSV))
	if err != nil {
		t.Fatal(err)
	}
	matrix, err := ReadMatrixJSON(strings.NewReader(testMatrixJSON))
	if err != nil {
		t.Fatal(err)
	}
	index, err := recommend.NewIndex(catalog, matrix)
	if err != nil {
		t.Fatal(err)
	}
	return index
}

func TestDuckDB_ExportThenLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "data", "reelmatch.duckdb")
	want := testIndex(t)

	if err := ExportDuckDB(context.Background(), path, want); err != nil {
		t.Fatalf("ExportDuckDB() error = %v", err)
	}

	got, err := LoadFromConfig(context.Background(), &config.DataConfig{Source: config.SourceDuckDB, DuckDBPath: path}, zerolog.Nop())
	if err != nil {
		t.Fatalf("LoadFromConfig(duckdb) error = %v", err)
	}

	if got.Len() != want.Len() {
		t.Fatalf("Len() = %d, want %d", got.Len(), want.Len())
	}
	for i := 0; i < want.Len(); i++ {
		if got.Catalog().At(i) != want.Catalog().At(i) {
			t.Errorf("item %d = %+v, want %+v", i, got.Catalog().At(i), want.Catalog().At(i))
		}
		for j := 0; j < want.Len(); j++ {
			if got.Matrix().At(i, j) != want.Matrix().At(i, j) {
				t.Errorf("cell (%d,%d) = %v, want %v", i, j, got.Matrix().At(i, j), want.Matrix().At(i, j))
			}
		}
	}

	if err := ExportDuckDB(context.Background(), path, want); err == nil {
		t.Error("ExportDuckDB() over an existing file error = nil, want error")
	}
}

func TestDuckDB_ExportFailureRemovesPartialFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.duckdb")
	index := testIndex(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := ExportDuckDB(ctx, path, index); !errors.Is(err, context.Canceled) {
		t.Fatalf("ExportDuckDB(canceled) error = %v, want context.Canceled", err)
	}
	for _, p := range []string{path, path + ".wal"} {
		if _, err := os.Stat(p); !errors.Is(err, fs.ErrNotExist) {
			t.Errorf("Stat(%s) error = %v, want not exist", p, err)
		}
	}

	if err := ExportDuckDB(context.Background(), path, index); err != nil {
		t.Fatalf("ExportDuckDB() retry error = %v", err)
	}
	if _, _, err := (&DuckDBLoader{Path: path}).Load(context.Background()); err != nil {
		t.Errorf("Load() after retry error = %v", err)
	}
}

// writeRawDuckDB creates a database with the export schema and the given
// insert statements, bypassing ExportDuckDB's consistency.
func writeRawDuckDB(t *testing.T, stmts ...string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "raw.duckdb")
	conn, err := sql.Open("duckdb", path)
	if err != nil {
		t.Fatal(err)
	}
	for _, s := range append([]string{schemaSQL}, stmts...) {
		if _, err := conn.Exec(s); err != nil {
			t.Fatalf("exec %q: %v", s, err)
		}
	}
	if err := conn.Close(); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDuckDB_MalformedMatrix(t *testing.T) {
	t.Parallel()

	const items = `INSERT INTO items VALUES (0, 'A', '1'), (1, 'B', '2')`

	tests := []struct {
		name  string
		cells string
	}{
		{
			name:  "missing cell",
			cells: `INSERT INTO similarity VALUES (0, 0, 1.0), (0, 1, 0.5), (1, 1, 1.0)`,
		},
		{
			name:  "negative column fills gap",
			cells: `INSERT INTO similarity VALUES (0, 0, 1.0), (1, -1, 0.7), (1, 0, 0.5), (1, 1, 1.0)`,
		},
		{
			name:  "negative row",
			cells: `INSERT INTO similarity VALUES (-1, 1, 0.2), (0, 0, 1.0), (1, 0, 0.5), (1, 1, 1.0)`,
		},
		{
			name:  "column out of range",
			cells: `INSERT INTO similarity VALUES (0, 0, 1.0), (0, 2, 0.5), (1, 0, 0.5), (1, 1, 1.0)`,
		},
		{
			name:  "duplicate cell",
			cells: `INSERT INTO similarity VALUES (0, 0, 1.0), (0, 0, 0.9), (1, 0, 0.5), (1, 1, 1.0)`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			path := writeRawDuckDB(t, items, tt.cells)

			_, err := Load(context.Background(), &DuckDBLoader{Path: path}, zerolog.Nop())
			if !errors.Is(err, recommend.ErrShapeMismatch) {
				t.Errorf("Load() error = %v, want ErrShapeMismatch", err)
			}
		})
	}
}

func TestDuckDB_BlankExternalID(t *testing.T) {
	t.Parallel()

	path := writeRawDuckDB(t,
		`INSERT INTO items VALUES (0, 'A', '1'), (1, 'B', '')`,
		`INSERT INTO similarity VALUES (0, 0, 1.0), (0, 1, 0.5), (1, 0, 0.5), (1, 1, 1.0)`,
	)

	_, err := Load(context.Background(), &DuckDBLoader{Path: path}, zerolog.Nop())
	if !errors.Is(err, ErrBlankExternalID) {
		t.Errorf("Load() error = %v, want ErrBlankExternalID", err)
	}
}

func TestDuckDB_NonFiniteScore(t *testing.T) {
	t.Parallel()

	path := writeRawDuckDB(t,
		`INSERT INTO items VALUES (0, 'A', '1'), (1, 'B', '2')`,
		`INSERT INTO similarity VALUES (0, 0, 1.0), (0, 1, 'nan'::DOUBLE), (1, 0, 0.5), (1, 1, 1.0)`,
	)

	_, err := Load(context.Background(), &DuckDBLoader{Path: path}, zerolog.Nop())
	if !errors.Is(err, recommend.ErrNonFiniteScore) {
		t.Errorf("Load() error = %v, want ErrNonFiniteScore", err)
	}
}
