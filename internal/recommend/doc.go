// Reelmatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelmatch

// Package recommend answers "more like this" queries over a precomputed
// item-to-item similarity matrix.
//
// # Data Model
//
// A Catalog is the ordered list of items (title plus external poster key),
// addressed by position. A Matrix is a dense N×N table of similarity scores
// where At(i, j) is the similarity of item i to item j. An Index pairs the
// two after checking that their sizes agree; a mismatch is reported by
// NewIndex as ErrShapeMismatch and must stop the process before any query
// is served.
//
// All three types are immutable once built, so a single Index can be shared
// by any number of goroutines without locking.
//
// # Query Semantics
//
// Recommend resolves the query title to the first catalog position with that
// exact title, stable-sorts that matrix row by descending score, drops the
// first ranked entry (the self match), and returns the next topN items.
// When the catalog is too small the result is padded with placeholder rows
// so its length is always exactly topN.
//
// The dropped entry is sorted position 0, not the entry whose index equals
// the query. For self-maximal matrices the two coincide; for matrices where an item is not its own best
// match the query item can appear in its own results. Index.NonSelfMaximalRows
// reports such rows so loaders can warn about them.
//
// # Usage
//
//	idx, err := recommend.NewIndex(catalog, matrix)
//	if err != nil {
//	    return err // fatal: do not serve
//	}
//
//	recs, err := idx.Recommend("The Dark Knight", 5)
//	if errors.Is(err, recommend.ErrItemNotFound) {
//	    // report to the user
//	}
package recommend
