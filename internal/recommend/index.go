// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

package recommend

import (
	"errors"
	"sort"
)

// Index is a validated catalog/matrix pair. It is immutable and safe for
// concurrent use.
type Index struct {
	catalog *Catalog
	matrix  *Matrix
}

// NewIndex checks len(catalog) == matrix size and returns the pair.
// A *ShapeError (wrapping ErrShapeMismatch) means the data must not be served.
func NewIndex(catalog *Catalog, matrix *Matrix) (*Index, error) {
	if catalog == nil || matrix == nil {
		return nil, errors.New("catalog and matrix are required")
	}
	if catalog.Len() != matrix.Size() {
		return nil, &ShapeError{What: "similarity matrix", Got: matrix.Size(), Expected: catalog.Len()}
	}
	return &Index{catalog: catalog, matrix: matrix}, nil
}

// Catalog returns the indexed catalog.
func (ix *Index) Catalog() *Catalog {
	return ix.catalog
}

// Matrix returns the indexed similarity matrix.
func (ix *Index) Matrix() *Matrix {
	return ix.matrix
}

// Len returns the number of items.
func (ix *Index) Len() int {
	return ix.catalog.Len()
}

// Recommend returns exactly topN rows for the first item titled title.
// See the package documentation for ranking and padding rules.
func (ix *Index) Recommend(title string, topN int) ([]Recommendation, error) {
	q, ok := ix.catalog.Lookup(title)
	if !ok {
		return nil, &NotFoundError{Title: title}
	}

	if topN <= 0 {
		return []Recommendation{}, nil
	}

	ranked := rankRow(ix.matrix.Row(q))

	// Position 0 is treated as the self match whatever its index.
	if len(ranked) > 0 {
		ranked = ranked[1:]
	}
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	out := make([]Recommendation, 0, topN)
	for _, r := range ranked {
		it := ix.catalog.At(r.index)
		out = append(out, Recommendation{
			Title:      it.Title,
			ExternalID: it.ExternalID,
			Index:      r.index,
			Score:      r.score,
		})
	}
	for len(out) < topN {
		out = append(out, placeholder())
	}

	return out, nil
}

// NonSelfMaximalRows returns the positions whose own score is not the first
// entry of their ranked row, i.e. rows where Recommend would drop some other
// item instead of the query item itself.
func (ix *Index) NonSelfMaximalRows() []int {
	var offenders []int
	for i := 0; i < ix.matrix.Size(); i++ {
		ranked := rankRow(ix.matrix.Row(i))
		if ranked[0].index != i {
			offenders = append(offenders, i)
		}
	}
	return offenders
}

// Recommend validates catalog and matrix and runs a single query.
// Long-lived callers should build an Index once instead.
func Recommend(catalog *Catalog, matrix *Matrix, title string, topN int) ([]Recommendation, error) {
	ix, err := NewIndex(catalog, matrix)
	if err != nil {
		return nil, err
	}
	return ix.Recommend(title, topN)
}

type scored struct {
	index int
	score float64
}

// rankRow pairs every column with its score and stable-sorts by descending
// score, so equal scores keep ascending index order.
func rankRow(row []float64) []scored {
	ranked := make([]scored, len(row))
	for j, s := range row {
		ranked[j] = scored{index: j, score: s}
	}
	sort.SliceStable(ranked, func(a, b int) bool {
		return ranked[a].score > ranked[b].score
	})
	return ranked
}
