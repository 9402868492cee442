// SPDX-License-Identifier: MIT
// methods.go — read-only queries over a built Text.
package text

import (
	"fmt"
	"sort"
)

// NumWords reports the total word count.
func (t *Text) NumWords() int { return len(t.words) }

// NumSentences reports the total sentence count.
func (t *Text) NumSentences() int { return len(t.sentences) }

// NumParagraphs reports the total paragraph count.
func (t *Text) NumParagraphs() int { return len(t.paragraphs) }

// NumDivisions reports the total division count.
func (t *Text) NumDivisions() int { return len(t.divisions) }

// SentenceRange returns the half-open word index range [first, last) of
// sentence idx.
//
// Errors:
//   - ErrSentenceIndexOutOfRange if idx is not in [0, NumSentences()).
func (t *Text) SentenceRange(idx int) (first, last int, err error) {
	if idx < 0 || idx >= len(t.sentences) {
		return 0, 0, fmt.Errorf("SentenceRange(%d): %w", idx, ErrSentenceIndexOutOfRange)
	}
	s := t.sentences[idx]
	return s.First, s.Last, nil
}

// SentenceID returns the opaque identifier of sentence idx, or "" if idx
// is out of range.
func (t *Text) SentenceID(idx int) string {
	if idx < 0 || idx >= len(t.sentences) {
		return ""
	}
	return t.sentences[idx].ID
}

// SentenceLen returns the character length of sentence idx: the sum of
// its component word lengths, excluding separators (spec.md §3).
//
// Errors:
//   - ErrSentenceIndexOutOfRange if idx is not in [0, NumSentences()).
func (t *Text) SentenceLen(idx int) (int, error) {
	if idx < 0 || idx >= len(t.sentences) {
		return 0, fmt.Errorf("%s(%d): %w", opSentenceLen, idx, ErrSentenceIndexOutOfRange)
	}
	s := t.sentences[idx]
	total := 0
	for w := s.First; w < s.Last; w++ {
		total += rawLen(t.words[w])
	}
	return total, nil
}

// RangeLen returns the combined character length of sentences
// [firstSentence, lastSentence), e.g. the source- or target-side length of
// an alignment bead. Out-of-range indices contribute zero.
func (t *Text) RangeLen(firstSentence, lastSentence int) int {
	total := 0
	for i := firstSentence; i < lastSentence; i++ {
		n, err := t.SentenceLen(i)
		if err != nil {
			continue
		}
		total += n
	}
	return total
}

// WordRaw returns the pre-canonicalization text of word idx.
//
// Errors:
//   - ErrWordIndexOutOfRange if idx is not in [0, NumWords()).
func (t *Text) WordRaw(idx int) (string, error) {
	if idx < 0 || idx >= len(t.words) {
		return "", fmt.Errorf("%s(%d): %w", opWordRaw, idx, ErrWordIndexOutOfRange)
	}
	return t.words[idx], nil
}

// WordCanonical returns the canonical (diacritic-stripped, uppercased)
// form of word idx.
//
// Errors:
//   - ErrWordIndexOutOfRange if idx is not in [0, NumWords()).
func (t *Text) WordCanonical(idx int) (string, error) {
	if idx < 0 || idx >= len(t.words) {
		return "", fmt.Errorf("%s(%d): %w", opWordCanonical, idx, ErrWordIndexOutOfRange)
	}
	return t.canonical[idx], nil
}

// WordInfoAt returns the Dictionary entry for word idx's canonical form.
func (t *Text) WordInfoAt(idx int) (*WordInfo, bool) {
	canon, err := t.WordCanonical(idx)
	if err != nil {
		return nil, false
	}
	return t.dict.Lookup(canon)
}

// SentenceWords returns the raw words of sentence idx.
func (t *Text) SentenceWords(idx int) []string {
	first, last, err := t.SentenceRange(idx)
	if err != nil {
		return nil
	}
	return append([]string(nil), t.words[first:last]...)
}

// SentenceContaining returns the index of the sentence spanning word
// wordIdx, used by package filler to map a word-level passage point back
// onto the sentence grid.
//
// Errors:
//   - ErrWordIndexOutOfRange if wordIdx is not in [0, NumWords()).
func (t *Text) SentenceContaining(wordIdx int) (int, error) {
	if wordIdx < 0 || wordIdx >= len(t.words) {
		return 0, fmt.Errorf("%s(%d): %w", opSentenceContaining, wordIdx, ErrWordIndexOutOfRange)
	}
	idx := sort.Search(len(t.sentences), func(i int) bool {
		return t.sentences[i].Last > wordIdx
	})
	return idx, nil
}
