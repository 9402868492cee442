// SPDX-License-Identifier: MIT
// Package sparsedt: sentinel error set.
package sparsedt

import "errors"

var (
	// ErrNilSpace indicates a nil searchspace.Space was passed to NewTable.
	ErrNilSpace = errors.New("sparsedt: search space is nil")

	// ErrNonFiniteScore indicates a score function returned NaN or ±Inf.
	// spec.md §7 forbids NaN/Inf from ever leaving a score function.
	ErrNonFiniteScore = errors.New("sparsedt: score function returned a non-finite cost")

	// ErrBacktrackCycle indicates backtracking exceeded the maximum
	// possible number of steps (the cell count of the table) without
	// reaching a self-loop — a score function violated the "prev strictly
	// decreases" discipline spec.md §4.3 mandates. Guards against an
	// infinite loop rather than a silent wrong answer.
	ErrBacktrackCycle = errors.New("sparsedt: backtracking did not terminate in a self-loop")
)
