// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"fmt"
	"math"
)

// Matrix is a square similarity matrix stored row-major in a flat slice.
type Matrix struct {
	n    int
	data []float64
}

// NewMatrix wraps row-major data of an n×n matrix. The slice is retained,
// so callers must not modify it afterwards.
func NewMatrix(n int, data []float64) (*Matrix, error) {
	if n < 0 {
		return nil, fmt.Errorf("matrix size must be non-negative, got %d", n)
	}
	if len(data) != n*n {
		return nil, &ShapeError{What: "matrix data", Got: len(data), Expected: n * n}
	}
	if err := checkFinite(data, n); err != nil {
		return nil, err
	}
	return &Matrix{n: n, data: data}, nil
}

// NewMatrixFromRows copies a slice of rows into a Matrix. Every row must
// have exactly len(rows) entries.
func NewMatrixFromRows(rows [][]float64) (*Matrix, error) {
	n := len(rows)
	data := make([]float64, 0, n*n)
	for i, row := range rows {
		if len(row) != n {
			return nil, &ShapeError{What: fmt.Sprintf("row %d", i), Got: len(row), Expected: n}
		}
		data = append(data, row...)
	}
	if err := checkFinite(data, n); err != nil {
		return nil, err
	}
	return &Matrix{n: n, data: data}, nil
}

// checkFinite rejects NaN and infinite scores, which have no place in a
// descending order.
func checkFinite(data []float64, n int) error {
	for pos, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &NonFiniteError{Row: pos / n, Col: pos % n, Value: v}
		}
	}
	return nil
}

// Size returns N.
func (m *Matrix) Size() int {
	return m.n
}

// At returns the similarity of item i to item j.
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Row returns row i. The returned slice aliases the matrix and must be
// treated as read-only.
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.n : (i+1)*m.n]
}
