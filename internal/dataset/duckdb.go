// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package dataset

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/duckdb/duckdb-go/v2"

	"github.com/tomtom215/reelmatch/internal/config"
	"github.com/tomtom215/reelmatch/internal/logging"
	"github.com/tomtom215/reelmatch/internal/recommend"
)

// Extensions are never needed, so auto-install and auto-load stay off.
const duckdbOptions = "autoinstall_known_extensions=false&autoload_known_extensions=false"

const schemaSQL = `
CREATE TABLE items (
	idx INTEGER PRIMARY KEY,
	title VARCHAR NOT NULL,
	external_id VARCHAR NOT NULL
);
CREATE TABLE similarity (
	row_idx INTEGER NOT NULL,
	col_idx INTEGER NOT NULL,
	score DOUBLE NOT NULL
);`

// DuckDBLoader reads the dataset from a DuckDB database file.
type DuckDBLoader struct {
	Path string
}

// Name implements Loader.
func (l *DuckDBLoader) Name() string {
	return config.SourceDuckDB
}

// Load implements Loader. The database is opened read-only.
func (l *DuckDBLoader) Load(ctx context.Context) (*recommend.Catalog, *recommend.Matrix, error) {
	if l.Path == "" {
		return nil, nil, errors.New("duckdb path is empty")
	}
	if _, err := os.Stat(l.Path); err != nil {
		return nil, nil, fmt.Errorf("duckdb file: %w", err)
	}

	conn, err := sql.Open("duckdb", fmt.Sprintf("%s?access_mode=read_only&%s", l.Path, duckdbOptions))
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}
	defer closeQuietly(conn)

	catalog, err := queryCatalog(ctx, conn)
	if err != nil {
		return nil, nil, err
	}

	matrix, err := queryMatrix(ctx, conn, catalog.Len())
	if err != nil {
		return nil, nil, err
	}

	return catalog, matrix, nil
}

func queryCatalog(ctx context.Context, conn *sql.DB) (*recommend.Catalog, error) {
	rows, err := conn.QueryContext(ctx, `SELECT idx, title, external_id FROM items ORDER BY idx`)
	if err != nil {
		return nil, fmt.Errorf("query items: %w", err)
	}
	defer rows.Close()

	var items []recommend.Item
	for rows.Next() {
		var (
			idx   int
			title string
			extID sql.NullString
		)
		if err := rows.Scan(&idx, &title, &extID); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		if idx != len(items) {
			return nil, &recommend.ShapeError{What: "items.idx", Got: idx, Expected: len(items)}
		}
		id := strings.TrimSpace(extID.String)
		if id == recommend.PlaceholderExternalID {
			return nil, fmt.Errorf("item %d (%q): %w", idx, title, ErrBlankExternalID)
		}
		items = append(items, recommend.Item{Title: title, ExternalID: id})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate items: %w", err)
	}

	return recommend.NewCatalog(items), nil
}

func queryMatrix(ctx context.Context, conn *sql.DB, n int) (*recommend.Matrix, error) {
	var cells int
	if err := conn.QueryRowContext(ctx, `SELECT count(*) FROM similarity`).Scan(&cells); err != nil {
		return nil, fmt.Errorf("count similarity: %w", err)
	}
	if cells != n*n {
		return nil, &recommend.ShapeError{What: "similarity cells", Got: cells, Expected: n * n}
	}

	rows, err := conn.QueryContext(ctx, `SELECT row_idx, col_idx, score FROM similarity ORDER BY row_idx, col_idx`)
	if err != nil {
		return nil, fmt.Errorf("query similarity: %w", err)
	}
	defer rows.Close()

	data := make([]float64, n*n)
	pos := 0
	for rows.Next() {
		var (
			r, c  int
			score float64
		)
		if err := rows.Scan(&r, &c, &score); err != nil {
			return nil, fmt.Errorf("scan similarity: %w", err)
		}
		// Ordered by (row, col), so a dense matrix visits every cell in sequence.
		if r < 0 || c < 0 || r >= n || c >= n || r != pos/n || c != pos%n {
			return nil, &recommend.ShapeError{What: fmt.Sprintf("similarity cell (%d,%d)", r, c), Got: r*n + c, Expected: pos}
		}
		data[pos] = score
		pos++
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate similarity: %w", err)
	}

	return recommend.NewMatrix(n, data)
}

// ExportDuckDB writes index to a new DuckDB file at path. An existing file
// is refused rather than overwritten. A failed export removes the partial
// database so the same path can be retried.
func ExportDuckDB(ctx context.Context, path string, index *recommend.Index) error {
	if _, statErr := os.Stat(path); statErr == nil {
		return fmt.Errorf("%s already exists", path)
	}
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}

	if err := writeDuckDB(ctx, path, index); err != nil {
		removePartial(path)
		return err
	}
	return nil
}

func writeDuckDB(ctx context.Context, path string, index *recommend.Index) (err error) {
	conn, err := sql.Open("duckdb", fmt.Sprintf("%s?access_mode=read_write&%s", path, duckdbOptions))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer closeQuietly(conn)

	tx, err := conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
				logging.Error().Err(rbErr).AnErr("original_error", err).Msg("Transaction rollback failed")
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	if err = insertItems(ctx, tx, index.Catalog()); err != nil {
		return err
	}
	if err = insertSimilarity(ctx, tx, index.Matrix()); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// removePartial deletes the database file and its write-ahead log. Called
// after the connection is closed.
func removePartial(path string) {
	for _, p := range []string{path, path + ".wal"} {
		if err := os.Remove(p); err != nil && !errors.Is(err, fs.ErrNotExist) {
			logging.Warn().Err(err).Str("path", p).Msg("Failed to remove partial database")
		}
	}
}

func insertItems(ctx context.Context, tx *sql.Tx, catalog *recommend.Catalog) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO items (idx, title, external_id) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for i := 0; i < catalog.Len(); i++ {
		item := catalog.At(i)
		if _, err := stmt.ExecContext(ctx, i, item.Title, item.ExternalID); err != nil {
			return fmt.Errorf("insert item %d: %w", i, err)
		}
	}
	return nil
}

func insertSimilarity(ctx context.Context, tx *sql.Tx, matrix *recommend.Matrix) error {
	stmt, err := tx.PrepareContext(ctx, `INSERT INTO similarity (row_idx, col_idx, score) VALUES (?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	n := matrix.Size()
	for r := 0; r < n; r++ {
		for c, score := range matrix.Row(r) {
			if _, err := stmt.ExecContext(ctx, r, c, score); err != nil {
				return fmt.Errorf("insert similarity (%d,%d): %w", r, c, err)
			}
		}
	}
	return nil
}

// closeQuietly closes conn, logging rather than returning the error.
func closeQuietly(conn *sql.DB) {
	if err := conn.Close(); err != nil {
		logging.Warn().Err(err).Msg("Failed to close database connection")
	}
}
