// SPDX-License-Identifier: MIT
// wordscore.go — step 2 of spec.md §4.6: the word-level DP score
// function. Grounded on original_source's WordScoreFunction, generalized
// to our sparsedt.ScoreFunc contract; the transition formula follows
// spec.md's literal |Δi − δ·Δj| rather than the uncommented (and
// internally inconsistent, per its own commented-out alternates) C++
// expression.
package filler

import (
	"math"

	"github.com/corvidnlp/yasa/searchspace"
	"github.com/corvidnlp/yasa/sparsedt"
)

// newWordScoreFunc builds the ScoreFunc for the word-level table over
// space, with aspect ratio delta = |source words| / |target words| and
// the configured return budget.
func newWordScoreFunc(space *searchspace.RowMapSpace, cfg config, delta float64) sparsedt.ScoreFunc {
	rows := space.Rows()

	return func(t *sparsedt.Table, i, j int) (float64, int, int) {
		best := math.Inf(1)
		bestI, bestJ := i, j
		r := 0

		for _, rowJ := range rows {
			if rowJ >= j {
				continue
			}
			if r > cfg.returnCount {
				break
			}
			first := true
			for it := space.IterateRow(rowJ); it.HasNext(); {
				it.Advance()
				ip := it.X()
				if ip > i {
					break
				}
				cell, ok := t.GetScore(ip, rowJ)
				if !ok {
					continue
				}
				if first {
					r++
					first = false
				}
				dx := float64(i - ip)
				dy := float64(j - rowJ)
				candidate := cell.Score + math.Abs(dx-delta*dy) + float64(r-1)*cfg.returnCost
				if candidate < best {
					best = candidate
					bestI, bestJ = ip, rowJ
				}
			}
		}

		if r == 0 {
			if j != 0 {
				best = math.Abs(float64(i) - delta*float64(j))
			} else {
				best = float64(i) * delta
			}
			bestI, bestJ = i, j
		}
		return best, bestI, bestJ
	}
}
