// SPDX-License-Identifier: MIT
// wordspace.go — step 1 of spec.md §4.6: the word-level rowmap search
// space over (xTarget, ySource) word coordinates.
package filler

import (
	"github.com/corvidnlp/yasa/searchspace"
	"github.com/corvidnlp/yasa/text"
)

// buildWordSpace indexes each valid source word's synonyms, then for
// every target word position holding one of those synonyms adds the
// cell (targetWordIdx, sourceWordIdx) to the returned space — optionally
// restricted to a band of radius cfg.radius sentences around the
// perfect diagonal, unrestricted when cfg.radius == 0.
//
// Grounded on original_source's WordSSF::operator(): an index from
// synonym WordInfo to the source word positions referencing it, probed
// once per target word.
func buildWordSpace(src, tgt *text.Text, cfg config) (*searchspace.RowMapSpace, error) {
	xUp := tgt.NumWords() - 1
	yUp := src.NumWords() - 1
	space, err := searchspace.NewRowMapSpace(0, 0, xUp, yUp)
	if err != nil {
		return nil, err
	}

	bySynonym := make(map[*text.WordInfo][]int)
	for i := 0; i < src.NumWords(); i++ {
		w, ok := src.WordInfoAt(i)
		if !ok || !passagePointValid(w, cfg.maxFrequency) {
			continue
		}
		for _, syn := range w.Synonyms {
			bySynonym[syn] = append(bySynonym[syn], i)
		}
	}

	delta := float64(src.NumWords()) / float64(tgt.NumWords())
	for j := 0; j < tgt.NumWords(); j++ {
		tw, ok := tgt.WordInfoAt(j)
		if !ok {
			continue
		}
		candidates, ok := bySynonym[tw]
		if !ok {
			continue
		}
		min, max, err := sourceBand(src, delta, j, cfg.radius)
		if err != nil {
			return nil, err
		}
		for _, srcIdx := range candidates {
			if srcIdx >= min && srcIdx <= max {
				space.AddPossibility(j, srcIdx)
			}
		}
	}
	return space, nil
}

// sourceBand returns the [min, max] source-word-index band admissible
// for target word j, per spec.md §4.6's diagonal-radius restriction.
// radius == 0 means unrestricted (the full word range).
func sourceBand(src *text.Text, delta float64, j, radius int) (min, max int, err error) {
	if radius == 0 {
		return 0, src.NumWords() - 1, nil
	}
	expected := int(delta * float64(j))
	if expected >= src.NumWords() {
		expected = src.NumWords() - 1
	}
	sentence, err := src.SentenceContaining(expected)
	if err != nil {
		return 0, 0, err
	}
	lowSentence := sentence - radius
	if lowSentence < 0 {
		lowSentence = 0
	}
	highSentence := sentence + radius
	if highSentence >= src.NumSentences() {
		highSentence = src.NumSentences() - 1
	}
	min, _, err = src.SentenceRange(lowSentence)
	if err != nil {
		return 0, 0, err
	}
	_, max, err = src.SentenceRange(highSentence)
	if err != nil {
		return 0, 0, err
	}
	return min, max - 1, nil
}
