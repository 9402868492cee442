// Package score: sentinel error set.
package score

import "errors"

var (
	// ErrNonPositiveProbability indicates a registered category with a
	// non-positive probability. (pIn and pOut out of range report
	// ErrInvalidProbabilityRange.)
	ErrNonPositiveProbability = errors.New("score: probability must be positive")

	// ErrInvalidProbabilityRange indicates pIn or pOut outside (0, 1).
	ErrInvalidProbabilityRange = errors.New("score: probability must be in (0, 1)")

	// ErrNonPositiveVariance indicates a non-positive variance.
	ErrNonPositiveVariance = errors.New("score: variance must be positive")

	// ErrNonPositiveProduction indicates a non-positive production ratio.
	ErrNonPositiveProduction = errors.New("score: production must be positive")

	// ErrNonPositiveCorrection indicates a FullFelipe correction factor
	// that is not strictly positive.
	ErrNonPositiveCorrection = errors.New("score: FullFelipe correction must be positive")

	// ErrUnknownFullFelipeMode indicates a FullFelipe selector outside
	// {None, LengthOnly, CognateOnly, Both}.
	ErrUnknownFullFelipeMode = errors.New("score: unknown FullFelipe mode")

	// ErrNoCategories indicates an empty category registry.
	ErrNoCategories = errors.New("score: at least one alignment category must be registered")

	// ErrCategoryNotRegistered indicates bead_cost was asked to cost an
	// (a, b) pair with no matching registered category.
	ErrCategoryNotRegistered = errors.New("score: category not registered")
)
