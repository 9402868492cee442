// SPDX-License-Identifier: MIT
// finder.go — word-identity and prefix cognate detection (spec.md §4.5).
package cognate

import (
	"fmt"
	"strings"

	"github.com/corvidnlp/yasa/text"
)

const opFind = "Find"

// Find populates src's dictionary with synonym links into tgt's
// dictionary, according to opts. A no-op under ModeNone.
//
// Determinism: src's dictionary is walked in canonical-form order
// (text.Dictionary.Entries), and for ModePrefix the matching target
// entries are walked in the same order, so repeated runs over the same
// two Texts always produce identical synonym sets in identical order.
//
// Errors:
//   - ErrUnknownMode, ErrInvalidMaxFrequency, ErrInvalidMinLength,
//     ErrInvalidPrefixLength from resolving opts.
func Find(src, tgt *text.Text, opts ...Option) error {
	cfg, err := newConfig(opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", opFind, err)
	}
	if cfg.mode == ModeNone {
		return nil
	}

	tgtEntries := tgt.Dictionary().Entries()
	for _, srcWord := range src.Dictionary().Entries() {
		if !cfg.validator(srcWord) {
			continue
		}
		switch {
		case cfg.mode == ModeIdentity, !isAlphabetic(srcWord.Canonical):
			linkIdentity(srcWord, tgt, cfg)
		default: // ModePrefix and alphabetic
			linkPrefix(srcWord, tgtEntries, cfg)
		}
	}
	return nil
}

// linkIdentity links srcWord to tgt's same-canonical-form entry, if any
// and if it passes the validator.
func linkIdentity(srcWord *text.WordInfo, tgt *text.Text, cfg config) {
	tgtWord, ok := tgt.Dictionary().Lookup(srcWord.Canonical)
	if !ok || !cfg.validator(tgtWord) {
		return
	}
	srcWord.AddSynonym(tgtWord)
}

// linkPrefix links srcWord to every tgtEntries word sharing its first
// cfg.prefixLength characters. A source word shorter than prefixLength
// contributes no synonyms at all (spec.md §8 boundary behavior).
func linkPrefix(srcWord *text.WordInfo, tgtEntries []*text.WordInfo, cfg config) {
	prefix := runePrefix(srcWord.Canonical, cfg.prefixLength)
	if prefix == "" {
		return
	}
	for _, tgtWord := range tgtEntries {
		if !strings.HasPrefix(tgtWord.Canonical, prefix) {
			continue
		}
		if !cfg.validator(tgtWord) {
			continue
		}
		srcWord.AddSynonym(tgtWord)
	}
}

// runePrefix returns the first n runes of s, or "" if s has fewer than n.
func runePrefix(s string, n int) string {
	runes := []rune(s)
	if len(runes) < n {
		return ""
	}
	return string(runes[:n])
}
