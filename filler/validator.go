// SPDX-License-Identifier: MIT
// validator.go — the passage-point validator of spec.md §4.6 step 1:
// distinct from package cognate's validator, it caps a candidate word's
// own frequency AND the summed frequency of its registered synonyms.
package filler

import "github.com/corvidnlp/yasa/text"

// passagePointValid reports whether w may seed a word-level search-space
// cell: both w.Count and the sum of its synonyms' Count must be within
// maxFrequency.
func passagePointValid(w *text.WordInfo, maxFrequency int) bool {
	if w == nil || w.Count > maxFrequency {
		return false
	}
	sum := 0
	for _, syn := range w.Synonyms {
		sum += syn.Count
	}
	return sum <= maxFrequency
}
