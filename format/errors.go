// SPDX-License-Identifier: MIT
// Package format: sentinel error set.
package format

import "errors"

// ErrSentenceIDExhausted signals that a bead sequence's accumulated
// source or target sentence count exceeds the corresponding text's
// sentence count — a caller passed a bead sequence not actually produced
// for these two texts.
var ErrSentenceIDExhausted = errors.New("format: bead sequence references more sentences than the text has")
