// SPDX-License-Identifier: MIT
// Package text: sentinel error set.
package text

import "errors"

var (
	// ErrNoOpenSentence indicates EndSentence was called with no words
	// added since the last EndSentence (or since construction).
	ErrNoOpenSentence = errors.New("text: no words accumulated for this sentence")

	// ErrSentenceIndexOutOfRange indicates a sentence index outside [0, len).
	ErrSentenceIndexOutOfRange = errors.New("text: sentence index out of range")

	// ErrWordIndexOutOfRange indicates a word index outside [0, len).
	ErrWordIndexOutOfRange = errors.New("text: word index out of range")
)
