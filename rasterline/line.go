// SPDX-License-Identifier: MIT
// Package rasterline: the integer-grid line rasterizer (Bresenham midpoint
// algorithm), specified by spec.md §4.1 as the DiscreteLine component.
//
// Contract:
//   - Enumerates the classical Bresenham point set between two integer
//     endpoints, endpoints inclusive, ordered from (x0,y0) toward (x1,y1).
//   - Coincident endpoints are a degenerate case: the cursor yields no
//     points at all (not even the shared point), per spec.md §4.1.
//   - O(max(|Δx|,|Δy|)) steps, O(1) state, no failure modes.
package rasterline

// Line is a one-pass cursor over the lattice points of a discrete segment.
//
// Usage:
//
//	l := NewLine(x0, y0, x1, y1)
//	for l.HasNext() {
//	    l.Advance()
//	    x, y := l.X(), l.Y()
//	}
//
// A Line is not safe for concurrent use; each cursor is owned by a single
// caller and consumed once, matching spec.md §5's single-threaded model.
type Line struct {
	x, y       int  // current point, valid only after the first Advance
	x1, y1     int  // target endpoint
	dx, dy     int  // abs deltas
	sx, sy     int  // step direction, ±1
	err        int  // midpoint error accumulator
	steps      int  // remaining steps (advances) before exhaustion
	started    bool // whether Advance has been called at least once
	degenerate bool // x0==x1 && y0==y1: yields nothing, per spec
}

// NewLine constructs a cursor rasterizing the segment from (x0,y0) to (x1,y1).
// Complexity: O(1). No validation is required; any integer endpoints are
// admissible.
func NewLine(x0, y0, x1, y1 int) *Line {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}

	steps := dx
	if dy > steps {
		steps = dy
	}

	return &Line{
		x: x0, y: y0,
		x1: x1, y1: y1,
		dx: dx, dy: dy,
		sx: sx, sy: sy,
		err:        dx - dy,
		steps:      steps + 1, // endpoints inclusive
		degenerate: x0 == x1 && y0 == y1,
	}
}

// HasNext reports whether a call to Advance will move the cursor to a new,
// unvisited point.
func (l *Line) HasNext() bool {
	if l.degenerate {
		return false
	}
	return l.steps > 0
}

// Advance moves the cursor to the next lattice point on the segment. It is
// a no-op error to call Advance after HasNext has returned false; doing so
// simply leaves the cursor at its last position.
func (l *Line) Advance() {
	if !l.HasNext() {
		return
	}
	if l.started {
		// Classical midpoint step: decide whether to move in x, y, or both.
		e2 := 2 * l.err
		if e2 > -l.dy {
			l.err -= l.dy
			l.x += l.sx
		}
		if e2 < l.dx {
			l.err += l.dx
			l.y += l.sy
		}
	}
	l.started = true
	l.steps--
}

// X returns the cursor's current x coordinate. Valid after at least one
// Advance call.
func (l *Line) X() int { return l.x }

// Y returns the cursor's current y coordinate. Valid after at least one
// Advance call.
func (l *Line) Y() int { return l.y }

// Points drains the cursor into a slice of [x, y] pairs for callers that
// prefer a materialized slice over manual iteration. Complexity O(n) time
// and space, n = max(|Δx|,|Δy|)+1 (or 0 for coincident endpoints).
func (l *Line) Points() [][2]int {
	pts := make([][2]int, 0, l.steps)
	for l.HasNext() {
		l.Advance()
		pts = append(pts, [2]int{l.x, l.y})
	}
	return pts
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
