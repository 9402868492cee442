// Package filler: sentinel error set.
package filler

import "errors"

var (
	// ErrInvalidMaxFrequency indicates a non-positive passage-point
	// maximum frequency.
	ErrInvalidMaxFrequency = errors.New("filler: passage-point max frequency must be positive")

	// ErrInvalidReturnCount indicates a negative word-DP return count.
	ErrInvalidReturnCount = errors.New("filler: return count must be non-negative")

	// ErrInvalidReturnCost indicates a negative word-DP return cost.
	ErrInvalidReturnCost = errors.New("filler: return cost must be non-negative")

	// ErrInvalidRadius indicates a negative word-DP deviance radius.
	ErrInvalidRadius = errors.New("filler: radius must be non-negative")

	// ErrInvalidBeamRadius indicates a non-positive beam radius.
	ErrInvalidBeamRadius = errors.New("filler: beam radius must be positive")

	// ErrEmptyText indicates a source or target Text with zero words,
	// which admits no word-level search space.
	ErrEmptyText = errors.New("filler: text has no words")
)
