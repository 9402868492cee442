// SPDX-License-Identifier: MIT
// aligner.go — the outer sentence DP and bead reconstruction of
// spec.md §4.3/§4.4/§4.8.
package align

import (
	"github.com/corvidnlp/yasa/score"
	"github.com/corvidnlp/yasa/searchspace"
	"github.com/corvidnlp/yasa/sparsedt"
	"github.com/corvidnlp/yasa/text"
)

// unreachableCost stands in for "no registered category can reach this
// cell", keeping the score function's output finite (spec.md §7)
// without ever letting such a cell win a predecessor comparison.
const unreachableCost = 1e30

// Bead is one reconstructed alignment bead: sourceLen source sentences
// matched against targetLen target sentences, with Score the cumulative
// outer-DP cost through this bead (spec.md §4.8).
type Bead struct {
	SourceLen int
	TargetLen int
	Score     float64
}

// Result is the outcome of Align. Empty is set when the search space's
// upper-right corner was unreachable (spec.md §7's empty-alignment
// warning); Beads and TotalScore are then zero-valued.
type Result struct {
	Beads      []Bead
	TotalScore float64
	Empty      bool
}

// Align runs the outer sentence DP of spec.md §4.3/§4.4 over space using
// scorer's registered categories and composite bead cost, then
// reconstructs the bead sequence from the upper-right corner.
//
// Errors:
//   - whatever sparsedt.Table.Solve/Backtrack report (ErrNonFiniteScore,
//     ErrBacktrackCycle); under a conforming scorer and space these never
//     occur.
//   - score.ErrCategoryNotRegistered propagated from a BeadCost call for
//     a category scorer.Categories() itself registered — this is an
//     internal consistency failure, not an expected runtime error.
func Align(src, tgt *text.Text, space searchspace.Space, scorer *score.Scorer) (Result, error) {
	table, err := sparsedt.NewTable(space)
	if err != nil {
		return Result{}, err
	}

	var scoreErr error
	fn := func(t *sparsedt.Table, i, j int) (float64, int, int) {
		if i == -1 && j == -1 {
			return 0, i, j
		}
		best := unreachableCost
		bestI, bestJ := i, j
		for _, category := range scorer.Categories() {
			pi, pj := i-category.SourceLen, j-category.TargetLen
			prev, ok := t.GetScore(pi, pj)
			if !ok {
				continue
			}
			cost, err := scorer.BeadCost(src, tgt, i+1, j+1, category.SourceLen, category.TargetLen)
			if err != nil {
				scoreErr = err
				continue
			}
			candidate := prev.Score + cost
			if candidate < best {
				best = candidate
				bestI, bestJ = pi, pj
			}
		}
		return best, bestI, bestJ
	}

	_, _, xUp, yUp := space.Bounds()

	if err := table.Solve(fn); err != nil {
		return Result{}, err
	}
	if scoreErr != nil {
		return Result{}, scoreErr
	}

	steps, err := table.Backtrack(xUp, yUp)
	if err != nil {
		return Result{}, err
	}
	if len(steps) == 0 {
		return Result{Empty: true}, nil
	}

	return Result{Beads: reconstructBeads(steps), TotalScore: steps[0].Score}, nil
}

// reconstructBeads converts a Backtrack walk (upper-right corner down to
// the terminal self-loop) into the lower-left-to-upper-right bead
// sequence of spec.md §4.8: each consecutive pair of visited cells
// yields one bead, pushed to the front.
func reconstructBeads(steps []sparsedt.Step) []Bead {
	beads := make([]Bead, 0, len(steps)-1)
	for k := 0; k+1 < len(steps); k++ {
		first, second := steps[k], steps[k+1]
		bead := Bead{
			SourceLen: first.X - second.X,
			TargetLen: first.Y - second.Y,
			Score:     first.Score,
		}
		beads = append([]Bead{bead}, beads...)
	}
	return beads
}
