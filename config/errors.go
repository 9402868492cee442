// SPDX-License-Identifier: MIT
// Package config: sentinel error set, spec.md §7's configuration-error kind.
package config

import "errors"

var (
	// ErrUnknownInputFormat signals an unrecognized -input-format value.
	ErrUnknownInputFormat = errors.New("config: unknown input format")

	// ErrUnknownOutputFormat signals an unrecognized -output-format value.
	ErrUnknownOutputFormat = errors.New("config: unknown output format")

	// ErrUnknownCognateMode signals an unrecognized -cognate-mode value.
	ErrUnknownCognateMode = errors.New("config: unknown cognate mode")

	// ErrUnknownScoreFunction signals an unrecognized -score-function value.
	ErrUnknownScoreFunction = errors.New("config: unknown score function selector")

	// ErrUnknownFullFelipe signals an unrecognized -full-felipe value.
	ErrUnknownFullFelipe = errors.New("config: unknown FullFelipe selector")

	// ErrMalformedCategory signals a -category value not in a-b-p form.
	ErrMalformedCategory = errors.New("config: malformed category entry, want a-b-p")

	// ErrMissingPath signals a required source or target path was not set.
	ErrMissingPath = errors.New("config: missing required source or target path")

	// ErrUnreadableLexicon signals a lexicon path that could not be opened.
	ErrUnreadableLexicon = errors.New("config: unreadable lexicon file")
)
