// Package sparsedt is the generic sparse dynamic-programming engine of
// spec.md §4.3. It is used twice by this module: by package filler for the
// inner word-level cognate DP, and by package align for the outer
// sentence-level DP — both run the exact same engine over a different
// searchspace.Space and a different score function closure.
//
// A Table fills every cell present in a searchspace.Space with a minimum
// cost and a back-pointer, then a Backtrack call walks those back-pointers
// from a caller-chosen terminal cell (canonically the upper-right corner
// of the space) down to a self-loop origin.
//
// Determinism (spec.md §5): Solve processes cells in a single fixed
// ascending-(y, x) order — the topological order required by score
// functions that only look at smaller i and/or j — so the same inputs
// always produce bit-identical scores and back-pointers.
//
//	go get github.com/corvidnlp/yasa/sparsedt
package sparsedt
