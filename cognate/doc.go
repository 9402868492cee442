// Package cognate implements spec.md §4.5: cognate detection between a
// source and a target text's dictionaries, in word-identity mode or
// prefix mode, plus loading an external bilingual lexicon. Found cognates
// are recorded as synonym links on the source Dictionary's WordInfo
// entries, pointing into the target Dictionary — the same directional
// link package filler's word-level DP and package score's cognate-count
// rule both consume later.
//
// Grounded on package builder's validator/option shape: a functional-
// options Options resolved once, a Validator predicate checked before any
// link is proposed, never a silent global default baked into the finder.
//
//	go get github.com/corvidnlp/yasa/cognate
package cognate
