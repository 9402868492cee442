// SPDX-License-Identifier: MIT
// set_space.go — the generic, flat-set Space variant.
//
// Storage: a single map keyed by (y, x), y-major, matching spec.md §4.2's
// "ordered set keyed by (y, x)". Go has no built-in ordered set, so
// SetSpace keeps an unordered map for O(1) membership and materializes a
// sorted []Cell on each Iterate/IterateRow call; for the sentence-level
// search spaces this package serves (hundreds to low thousands of cells),
// sorting on demand is simpler and just as fast as maintaining a balanced
// tree incrementally.
package searchspace

import (
	"fmt"
	"sort"
)

const opNewSetSpace = "NewSetSpace"

type cellKey struct{ y, x int }

// SetSpace is the generic Space implementation used by package filler to
// hold the sentence-level search space.
type SetSpace struct {
	xLo, yLo, xUp, yUp int
	cells              map[cellKey]struct{}
}

// NewSetSpace constructs an empty SetSpace over the closed rectangle
// [xLo, xUp] × [yLo, yUp].
//
// Errors:
//   - ErrInvalidBounds if xLo > xUp or yLo > yUp.
//
// Complexity: O(1).
func NewSetSpace(xLo, yLo, xUp, yUp int) (*SetSpace, error) {
	if xLo > xUp || yLo > yUp {
		return nil, fmt.Errorf("%s: [%d,%d]x[%d,%d]: %w", opNewSetSpace, xLo, xUp, yLo, yUp, ErrInvalidBounds)
	}
	return &SetSpace{
		xLo: xLo, yLo: yLo, xUp: xUp, yUp: yUp,
		cells: make(map[cellKey]struct{}),
	}, nil
}

// AddPossibility implements Space. Complexity: O(1).
func (s *SetSpace) AddPossibility(x, y int) bool {
	if x < s.xLo || x > s.xUp || y < s.yLo || y > s.yUp {
		return false
	}
	s.cells[cellKey{y, x}] = struct{}{}
	return true
}

// IsPossibility implements Space. Complexity: O(1).
func (s *SetSpace) IsPossibility(x, y int) bool {
	_, ok := s.cells[cellKey{y, x}]
	return ok
}

// Bounds implements Space.
func (s *SetSpace) Bounds() (xLo, yLo, xUp, yUp int) {
	return s.xLo, s.yLo, s.xUp, s.yUp
}

// Iterate implements Space. Complexity: O(n log n), n = len(stored cells).
func (s *SetSpace) Iterate() Iterator {
	cells := make([]Cell, 0, len(s.cells))
	for k := range s.cells {
		cells = append(cells, Cell{X: k.x, Y: k.y})
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y > cells[j].Y // descending y
		}
		return cells[i].X < cells[j].X // ascending x within a row
	})
	return newSliceIterator(cells)
}

// IterateRow implements Space. Complexity: O(n log n) worst case, n = row size.
func (s *SetSpace) IterateRow(y int) Iterator {
	cells := make([]Cell, 0)
	for k := range s.cells {
		if k.y == y {
			cells = append(cells, Cell{X: k.x, Y: k.y})
		}
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].X < cells[j].X })
	return newSliceIterator(cells)
}

// Len reports the number of stored cells. Not part of the Space contract;
// cmd/yasa uses it to size the resource check.
func (s *SetSpace) Len() int { return len(s.cells) }
