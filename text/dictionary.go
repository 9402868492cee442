// SPDX-License-Identifier: MIT
// dictionary.go — per-text Dictionary: canonical form -> WordInfo, plus
// the directional synonym links populated by package cognate.
package text

import "sort"

// WordInfo is one Dictionary entry: a canonical word form, its occurrence
// count within the owning Text, and its synonym references into the
// counterpart Text's Dictionary (spec.md §3).
type WordInfo struct {
	Canonical string
	Count     int
	Synonyms  []*WordInfo
}

// hasSynonym reports whether target is already linked, so AddSynonym stays
// idempotent under repeated cognate-detection passes (word-identity mode
// and prefix mode and the lexicon loader may all propose the same link).
func (w *WordInfo) hasSynonym(target *WordInfo) bool {
	for _, s := range w.Synonyms {
		if s == target {
			return true
		}
	}
	return false
}

// AddSynonym links target as a synonym of w, if not already linked.
// Complexity: O(len(w.Synonyms)).
func (w *WordInfo) AddSynonym(target *WordInfo) {
	if target == nil || w.hasSynonym(target) {
		return
	}
	w.Synonyms = append(w.Synonyms, target)
}

// Dictionary is the canonical-form -> WordInfo arena owned by one Text.
type Dictionary struct {
	entries map[string]*WordInfo
}

// NewDictionary constructs an empty Dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{entries: make(map[string]*WordInfo)}
}

// GetOrCreate returns the WordInfo for canonical, creating it (with
// Count 0) on first reference. Ingest calls this once per occurrence and
// increments Count itself (see Text.AddWord), so repeated lookups by
// package cognate do not inflate the frequency counts.
func (d *Dictionary) GetOrCreate(canonical string) *WordInfo {
	if w, ok := d.entries[canonical]; ok {
		return w
	}
	w := &WordInfo{Canonical: canonical}
	d.entries[canonical] = w
	return w
}

// Lookup finds an existing entry without creating one.
func (d *Dictionary) Lookup(canonical string) (*WordInfo, bool) {
	w, ok := d.entries[canonical]
	return w, ok
}

// Len reports the number of distinct canonical forms.
func (d *Dictionary) Len() int { return len(d.entries) }

// Entries returns every WordInfo sorted by canonical form, ascending —
// the deterministic traversal order spec.md §5 requires of any pass over
// a Dictionary (cognate detection, diagnostics).
func (d *Dictionary) Entries() []*WordInfo {
	out := make([]*WordInfo, 0, len(d.entries))
	for _, w := range d.entries {
		out = append(out, w)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Canonical < out[j].Canonical })
	return out
}
