// SPDX-License-Identifier: MIT
// canon.go — word canonicalization: strip diacritics, then uppercase.
//
// Canonical forms are what key into a Dictionary; the raw, pre-
// canonicalization word text is kept separately on the Text for length
// measurement and for formatters that echo the original sentence text.
//
// Implementation: NFD-decompose (so that e.g. "é" becomes "e" + a
// combining acute accent), drop every rune in the Mn (nonspacing mark)
// category, then uppercase — the same accent-folding spec.md §6 describes
// for the fixed Latin-1 accent table, generalized to all of Unicode via
// golang.org/x/text instead of a hand-rolled lookup table.
package text

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"unicode"
)

var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Canonicalize strips diacritics and uppercases a raw word, producing the
// form used as a Dictionary key. It never fails: any transform error
// (only possible on malformed input the transformer cannot decode) falls
// back to the unmodified uppercased input, since a canonicalization
// failure must never abort ingest.
func Canonicalize(raw string) string {
	folded, _, err := transform.String(stripMarks, raw)
	if err != nil {
		folded = raw
	}
	return strings.ToUpper(folded)
}
