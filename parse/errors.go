// SPDX-License-Identifier: MIT
// Package parse: sentinel error set.
package parse

import "errors"

var (
	// ErrMalformedInput signals spec.md §7's input-format error: the
	// stream never reached the expected start marker, or a tag was left
	// unterminated.
	ErrMalformedInput = errors.New("parse: malformed input stream")

	// ErrUnknownFormat signals a Format value with no registered parser.
	ErrUnknownFormat = errors.New("parse: unknown input format")
)
