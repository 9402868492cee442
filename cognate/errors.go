// SPDX-License-Identifier: MIT
// Package cognate: sentinel error set.
package cognate

import "errors"

var (
	// ErrUnknownMode indicates an Options.Mode value outside {None, Identity, Prefix}.
	ErrUnknownMode = errors.New("cognate: unknown cognate mode")

	// ErrInvalidMaxFrequency indicates a non-positive MaxFrequency.
	ErrInvalidMaxFrequency = errors.New("cognate: max frequency must be positive")

	// ErrInvalidMinLength indicates a negative MinLength.
	ErrInvalidMinLength = errors.New("cognate: min length must be non-negative")

	// ErrInvalidPrefixLength indicates a non-positive PrefixLength.
	ErrInvalidPrefixLength = errors.New("cognate: prefix length must be positive")

	// ErrLexiconUnreadable indicates the lexicon file/reader could not be read.
	ErrLexiconUnreadable = errors.New("cognate: lexicon input could not be read")
)
