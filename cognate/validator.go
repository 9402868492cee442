// SPDX-License-Identifier: MIT
// validator.go — the cognate-candidate predicate of spec.md §4.5: both
// sides' occurrence frequency capped, and a minimum length for purely
// alphabetic tokens.
package cognate

import (
	"unicode"

	"github.com/corvidnlp/yasa/text"
)

// isAlphabetic reports whether every rune of s is a letter, matching
// spec.md's "Non-alphabetic source tokens (numbers, punctuation
// composites) fall back to word-identity mode."
func isAlphabetic(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// validator reports whether w may take part in a synonym link: its
// WordInfo.Count must be within maxFrequency, and if its canonical form is
// purely alphabetic it must be at least minLength runes long. Find calls
// it separately on the source word and on each candidate target word.
func (c config) validator(w *text.WordInfo) bool {
	if w.Count > c.maxFrequency {
		return false
	}
	if isAlphabetic(w.Canonical) && runeLen(w.Canonical) < c.minLength {
		return false
	}
	return true
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
