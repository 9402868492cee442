// SPDX-License-Identifier: MIT
// passagepoints.go — steps 3-4 of spec.md §4.6, and BeamFiller (§4.7):
// sentence-grid passage points rasterized with package rasterline, each
// rasterized point widened into a beam.
package filler

import (
	"sort"

	"github.com/corvidnlp/yasa/rasterline"
	"github.com/corvidnlp/yasa/searchspace"
	"github.com/corvidnlp/yasa/sparsedt"
	"github.com/corvidnlp/yasa/text"
)

// Point is one passage point on the sentence grid: X is a source
// sentence index, Y a target sentence index (matching the outer DP's
// (sourceLen, targetLen)-indexed recurrence).
type Point struct {
	X, Y int
}

// CognateFill builds the sentence search space of spec.md §4.6: a
// word-level sparse DP proposes passage points following actual cognate
// correspondences, which are rasterized and beam-marked into the
// returned sentence-grid space.
//
// Errors:
//   - ErrInvalidMaxFrequency, ErrInvalidReturnCount, ErrInvalidReturnCost,
//     ErrInvalidRadius, ErrInvalidBeamRadius from resolving opts.
//   - ErrEmptyText if src or tgt has zero words.
func CognateFill(src, tgt *text.Text, opts ...Option) (*searchspace.SetSpace, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	if src.NumWords() == 0 || tgt.NumWords() == 0 {
		return nil, ErrEmptyText
	}

	points, err := cognatePassagePoints(src, tgt, cfg)
	if err != nil {
		return nil, err
	}
	return rasterizeToSentenceSpace(src, tgt, points, cfg.beamRadius)
}

// BeamFill builds the diagonal-band sentence search space of spec.md
// §4.7: just the lower-left and upper-right sentence-grid corners,
// beam-marked at the configured radius.
//
// Errors: see CognateFill.
func BeamFill(src, tgt *text.Text, opts ...Option) (*searchspace.SetSpace, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	if src.NumWords() == 0 || tgt.NumWords() == 0 {
		return nil, ErrEmptyText
	}
	return rasterizeToSentenceSpace(src, tgt, nil, cfg.beamRadius)
}

// cognatePassagePoints runs the word-level DP (steps 1-3 of spec.md
// §4.6) and maps its backtracked path onto the sentence grid.
func cognatePassagePoints(src, tgt *text.Text, cfg config) ([]Point, error) {
	space, err := buildWordSpace(src, tgt, cfg)
	if err != nil {
		return nil, err
	}
	xLo, yLo, xUp, yUp := space.Bounds()
	space.AddPossibility(xLo, yLo)
	space.AddPossibility(xUp, yUp)

	delta := float64(src.NumWords()) / float64(tgt.NumWords())
	table, err := sparsedt.NewTable(space)
	if err != nil {
		return nil, err
	}
	if err := table.Solve(newWordScoreFunc(space, cfg, delta)); err != nil {
		return nil, err
	}

	steps, err := table.Backtrack(xUp, yUp)
	if err != nil {
		return nil, err
	}

	points := make([]Point, 0, len(steps))
	for _, step := range steps {
		srcSentence, err := src.SentenceContaining(step.Y)
		if err != nil {
			continue
		}
		tgtSentence, err := tgt.SentenceContaining(step.X)
		if err != nil {
			continue
		}
		points = append(points, Point{X: srcSentence, Y: tgtSentence})
	}
	return points, nil
}

// rasterizeToSentenceSpace builds the sentence-grid SetSpace over
// [-1, |S|-1] x [-1, |T|-1], adds the lower-left and upper-right corners
// and the given passage points (deduped, sorted by X then Y), rasterizes
// each consecutive pair with DiscreteLine, and beam-marks every
// rasterized point at the given radius.
func rasterizeToSentenceSpace(src, tgt *text.Text, points []Point, beamRadius int) (*searchspace.SetSpace, error) {
	xUp := src.NumSentences() - 1
	yUp := tgt.NumSentences() - 1

	space, err := searchspace.NewSetSpace(-1, -1, xUp, yUp)
	if err != nil {
		return nil, err
	}

	all := append([]Point{{X: -1, Y: -1}, {X: xUp, Y: yUp}}, points...)
	all = dedupeSortedPoints(all)

	for k := 0; k+1 < len(all); k++ {
		a, b := all[k], all[k+1]
		for line := rasterline.NewLine(a.X, a.Y, b.X, b.Y); line.HasNext(); {
			line.Advance()
			beamMark(space, line.X(), line.Y(), beamRadius, -1, yUp)
		}
	}
	return space, nil
}

// beamMark adds every cell (x, y') with y' in [y-r+1, y+r-1], clipped to
// [yLo, yUp], per spec.md §4.6 step 4.
func beamMark(space *searchspace.SetSpace, x, y, r, yLo, yUp int) {
	low, high := y-r+1, y+r-1
	if low < yLo {
		low = yLo
	}
	if high > yUp {
		high = yUp
	}
	for yp := low; yp <= high; yp++ {
		space.AddPossibility(x, yp)
	}
}

// dedupeSortedPoints sorts by X (ties by Y) and removes adjacent
// duplicates, per spec.md §4.6 step 4.
func dedupeSortedPoints(points []Point) []Point {
	sorted := append([]Point(nil), points...)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].X != sorted[j].X {
			return sorted[i].X < sorted[j].X
		}
		return sorted[i].Y < sorted[j].Y
	})
	out := sorted[:0]
	for i, p := range sorted {
		if i == 0 || p != sorted[i-1] {
			out = append(out, p)
		}
	}
	return out
}
