// SPDX-License-Identifier: MIT
package sparsedt

// Cell is a single sparse DP cell: its minimized score and the predecessor
// it was reached from. A terminal (origin) cell is identified by the
// convention Prev == self (PrevX == its own X, PrevY == its own Y).
type Cell struct {
	Score float64
	PrevX int
	PrevY int
}

// isTerminal reports whether this cell is a self-loop, i.e. the
// backtracking iterator should stop here.
func (c Cell) isTerminal(x, y int) bool {
	return c.PrevX == x && c.PrevY == y
}

// ScoreFunc computes the minimized cost of reaching (i, j) and the
// predecessor that achieves it.
//
// Contract (spec.md §4.3):
//   - May call t.GetScore(i', j') for any coordinate; it only succeeds for
//     cells already solved in this pass (those visited earlier in the
//     ascending traversal order).
//   - Must return (cost, i, j) — a self-loop — when (i, j) is an origin
//     with no valid predecessor.
//   - Must never return NaN or ±Inf (spec.md §7); Solve rejects such
//     scores with ErrNonFiniteScore.
//   - Must only depend on cells with coordinates ≤ (i, j) component-wise
//     ("backward and downward"), so that Solve's fixed ascending traversal
//     order is a valid topological order for the induced dependency graph.
type ScoreFunc func(t *Table, i, j int) (cost float64, prevI, prevJ int)

// Step is one visited cell emitted by Backtrack: its coordinate and the
// score stored there.
type Step struct {
	X, Y  int
	Score float64
}
