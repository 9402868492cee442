// Package searchspace implements spec.md §4.2: a two-dimensional set of
// admissible cells (x, y) over a declared rectangle [xLo, xUp] × [yLo, yUp],
// with row-indexed traversal and membership testing.
//
// Two concrete shapes are provided, both satisfying the same Space
// contract:
//
//	SetSpace    — a flat, generic cell set; used for the sentence-level
//	              search space built by package filler.
//	RowMapSpace — a row (y) indexed map of column (x) sets, ordered by
//	              strictly decreasing y; used by the word-level DP in
//	              package filler, which needs fast "all cells in this row"
//	              access while its word-level score function scans candidate
//	              predecessor rows.
//
// Every Space guarantees that no cell outside its declared rectangle is
// ever stored, and that Iterate/IterateRow produce a deterministic order
// (row-major, descending y; ascending x within a row). Package sparsedt
// re-sorts the cells into ascending order before it solves them.
//
//	go get github.com/corvidnlp/yasa/searchspace
package searchspace
