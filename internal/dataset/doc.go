// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

/*
Package dataset loads the movie catalog and its precomputed similarity
matrix and returns a validated recommend.Index.

Two sources are supported, selected by data.source:

  - files: a catalog CSV plus a JSON matrix.
  - duckdb: a DuckDB database with items and similarity tables.

# Catalog CSV

The header must contain a title column and an id column named movie_id,
external_id or tmdb_id (case-insensitive). Other columns are ignored.
Row order defines the item index.

	movie_id,title,overview
	19995,Avatar,"In the 22nd century..."
	285,Pirates of the Caribbean: At World's End,...

# Matrix JSON

A JSON array of N rows, each an array of N numbers:

	[[1.0, 0.12, 0.03], [0.12, 1.0, 0.4], [0.03, 0.4, 1.0]]

# DuckDB schema

	CREATE TABLE items (idx INTEGER PRIMARY KEY, title VARCHAR, external_id VARCHAR);
	CREATE TABLE similarity (row_idx INTEGER, col_idx INTEGER, score DOUBLE);

items.idx must be 0..N-1 and similarity must hold all N*N cells.
ExportDuckDB writes this schema from an Index, which is how the
"reelmatch import" command converts a files dataset.

Any load error, including a catalog/matrix size mismatch, is fatal to
startup: the server does not serve a partially loaded dataset.
*/
package dataset
