// SPDX-License-Identifier: MIT
// table.go — the sparse DP engine: Solve fills every in-space cell exactly
// once, Backtrack replays the chosen predecessors.
package sparsedt

import (
	"fmt"
	"math"
	"sort"

	"github.com/corvidnlp/yasa/searchspace"
)

const (
	opNewTable  = "NewTable"
	opSolve     = "Solve"
	opBacktrack = "Backtrack"
)

// Table is a sparse DP table over a searchspace.Space: defined only at the
// coordinates the space declares present, each holding a Cell.
//
// Not safe for concurrent use; per spec.md §5 a Table belongs to a single
// alignment job and every cell is written exactly once during Solve.
type Table struct {
	space searchspace.Space
	cells map[[2]int]Cell
}

// NewTable constructs an empty Table over space. space is not copied; the
// Table does not mutate it.
//
// Errors:
//   - ErrNilSpace if space is nil.
func NewTable(space searchspace.Space) (*Table, error) {
	if space == nil {
		return nil, fmt.Errorf("%s: %w", opNewTable, ErrNilSpace)
	}
	return &Table{space: space, cells: make(map[[2]int]Cell)}, nil
}

// GetScore looks up an already-solved cell. It is the read side of the
// ScoreFunc contract: score functions call this to consult predecessors.
func (t *Table) GetScore(i, j int) (Cell, bool) {
	c, ok := t.cells[[2]int{i, j}]
	return c, ok
}

// Space returns the search space this table was built over.
func (t *Table) Space() searchspace.Space { return t.space }

// Solve fills every cell present in the table's search space by invoking
// fn once per cell, in a single fixed ascending-(y, x) traversal order —
// the topological order spec.md §4.3 requires for score functions that
// only look at smaller i and/or j.
//
// Design note: searchspace.Space.Iterate() is documented (spec.md §4.2) to
// yield descending-y order, a contract aimed at generic browsing and at
// RowMapSpace's row-major backtracking use in the word-level DP (package
// filler). That order cannot serve a forward fill whose recurrence looks
// at smaller coordinates, so Solve collects the space's cells once and
// re-sorts them ascending before filling; the O(n log n) re-sort is
// negligible next to the O(n) per-cell score-function work.
//
// Errors:
//   - ErrNonFiniteScore if fn returns NaN or ±Inf for any cell.
func (t *Table) Solve(fn ScoreFunc) error {
	cells := make([][2]int, 0)
	for it := t.space.Iterate(); it.HasNext(); {
		it.Advance()
		cells = append(cells, [2]int{it.X(), it.Y()})
	}
	sort.Slice(cells, func(a, b int) bool {
		if cells[a][1] != cells[b][1] {
			return cells[a][1] < cells[b][1] // ascending y
		}
		return cells[a][0] < cells[b][0] // ascending x within a row
	})

	for _, xy := range cells {
		i, j := xy[0], xy[1]
		cost, prevI, prevJ := fn(t, i, j)
		if math.IsNaN(cost) || math.IsInf(cost, 0) {
			return fmt.Errorf("%s: cell (%d,%d): %w", opSolve, i, j, ErrNonFiniteScore)
		}
		t.cells[[2]int{i, j}] = Cell{Score: cost, PrevX: prevI, PrevY: prevJ}
	}
	return nil
}

// Backtrack walks predecessor pointers from (fromX, fromY) down to a
// self-loop, emitting a Step per visited cell in that order (terminal
// cell included).
//
// If (fromX, fromY) is absent from the table, Backtrack returns a nil,
// empty slice and no error: spec.md §7 treats this as a soft
// empty-alignment condition for the caller to signal, not a hard failure.
//
// Errors:
//   - ErrBacktrackCycle if more than len(in-space cells) steps are taken
//     without reaching a self-loop (a score-function discipline
//     violation; spec.md's topological-order invariant guarantees this
//     never happens for a conforming score function).
func (t *Table) Backtrack(fromX, fromY int) ([]Step, error) {
	start, ok := t.GetScore(fromX, fromY)
	if !ok {
		return nil, nil
	}

	limit := len(t.cells) + 1
	steps := make([]Step, 0, limit)
	x, y, cur := fromX, fromY, start
	for {
		steps = append(steps, Step{X: x, Y: y, Score: cur.Score})
		if cur.isTerminal(x, y) {
			return steps, nil
		}
		if len(steps) > limit {
			return nil, fmt.Errorf("%s: %w", opBacktrack, ErrBacktrackCycle)
		}
		x, y = cur.PrevX, cur.PrevY
		cur, ok = t.GetScore(x, y)
		if !ok {
			return nil, fmt.Errorf("%s: %w", opBacktrack, ErrBacktrackCycle)
		}
	}
}
