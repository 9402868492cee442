// Package text implements the spec.md §3 data model: an ordered sequence
// of words partitioned into sentences, paragraphs, and divisions, plus the
// per-text Dictionary of canonical word forms.
//
// A Text is built once by a package parse parser, then treated as
// read-only for the rest of an alignment run — the only mutation that
// happens afterward is package cognate populating synonym links between
// the source and target Dictionary, which completes before any DP begins
// (spec.md §5).
//
// Cyclic graph note (spec.md §9): the source Dictionary's WordInfo entries
// hold *WordInfo pointers into the target Dictionary's arena (and never
// the reverse — the synonym relation is directional). Each Dictionary owns
// its own arena of WordInfo records keyed by canonical form; synonyms are
// plain pointers into the counterpart arena, not a second ownership graph,
// so the two Dictionaries and their Texts can be freed independently of
// any cycle-collection concern.
//
//	go get github.com/corvidnlp/yasa/text
package text
