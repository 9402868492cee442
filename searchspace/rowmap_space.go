// SPDX-License-Identifier: MIT
// rowmap_space.go — the row-indexed Space variant.
//
// Storage: a mapping y → ordered set of x, with rows iterated in strictly
// decreasing y order, per spec.md §4.2 ("to support backtracking from the
// upper-right corner toward the origin"). Package filler's word-level DP
// uses this variant because it repeatedly asks for "every cell in this
// source-word row", which RowMapSpace answers in O(row size) instead of
// scanning the whole space.
package searchspace

import (
	"fmt"
	"sort"
)

const opNewRowMapSpace = "NewRowMapSpace"

// RowMapSpace is the row-indexed Space implementation used by the
// word-level cognate DP (package filler).
type RowMapSpace struct {
	xLo, yLo, xUp, yUp int
	rows               map[int]map[int]struct{} // y -> set of x
}

// NewRowMapSpace constructs an empty RowMapSpace over the closed rectangle
// [xLo, xUp] × [yLo, yUp].
//
// Errors:
//   - ErrInvalidBounds if xLo > xUp or yLo > yUp.
func NewRowMapSpace(xLo, yLo, xUp, yUp int) (*RowMapSpace, error) {
	if xLo > xUp || yLo > yUp {
		return nil, fmt.Errorf("%s: [%d,%d]x[%d,%d]: %w", opNewRowMapSpace, xLo, xUp, yLo, yUp, ErrInvalidBounds)
	}
	return &RowMapSpace{
		xLo: xLo, yLo: yLo, xUp: xUp, yUp: yUp,
		rows: make(map[int]map[int]struct{}),
	}, nil
}

// AddPossibility implements Space. Complexity: O(1) amortized.
func (s *RowMapSpace) AddPossibility(x, y int) bool {
	if x < s.xLo || x > s.xUp || y < s.yLo || y > s.yUp {
		return false
	}
	row, ok := s.rows[y]
	if !ok {
		row = make(map[int]struct{})
		s.rows[y] = row
	}
	row[x] = struct{}{}
	return true
}

// IsPossibility implements Space. Complexity: O(1).
func (s *RowMapSpace) IsPossibility(x, y int) bool {
	row, ok := s.rows[y]
	if !ok {
		return false
	}
	_, ok = row[x]
	return ok
}

// Bounds implements Space.
func (s *RowMapSpace) Bounds() (xLo, yLo, xUp, yUp int) {
	return s.xLo, s.yLo, s.xUp, s.yUp
}

// Iterate implements Space: rows visited in strictly decreasing y, columns
// within a row in ascending x. Empty rows (none are ever stored, since
// AddPossibility lazily allocates) are skipped by construction.
// Complexity: O(n log r + n log c), n = total cells, r = row count, c = max row size.
func (s *RowMapSpace) Iterate() Iterator {
	ys := make([]int, 0, len(s.rows))
	for y := range s.rows {
		ys = append(ys, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ys)))

	cells := make([]Cell, 0)
	for _, y := range ys {
		cells = append(cells, sortedRow(s.rows[y], y)...)
	}
	return newSliceIterator(cells)
}

// IterateRow implements Space. Complexity: O(c log c), c = row size.
func (s *RowMapSpace) IterateRow(y int) Iterator {
	row, ok := s.rows[y]
	if !ok {
		return newSliceIterator(nil)
	}
	return newSliceIterator(sortedRow(row, y))
}

func sortedRow(row map[int]struct{}, y int) []Cell {
	cells := make([]Cell, 0, len(row))
	for x := range row {
		cells = append(cells, Cell{X: x, Y: y})
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].X < cells[j].X })
	return cells
}

// RowCount reports the number of non-empty rows. Convenience, not part of
// the Space contract.
func (s *RowMapSpace) RowCount() int { return len(s.rows) }

// Rows returns the non-empty row keys in strictly decreasing order,
// matching Iterate's row order. Convenience for callers (package filler's
// word-level score function) that need to enumerate candidate
// predecessor rows without re-deriving them from Iterate.
func (s *RowMapSpace) Rows() []int {
	ys := make([]int, 0, len(s.rows))
	for y := range s.rows {
		ys = append(ys, y)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ys)))
	return ys
}
