// SPDX-License-Identifier: MIT
// composite.go — Scorer: the composite bead_cost of spec.md §4.4,
// combining the length and cognate terms and applying the FullFelipe
// zero-length correction.
package score

import (
	"fmt"

	"github.com/corvidnlp/yasa/text"
	"gonum.org/v1/gonum/floats"
)

const opBeadCost = "BeadCost"

// Scorer computes bead costs for the outer sentence DP. Immutable once
// constructed; safe for concurrent read-only use across alignment jobs
// that never mutate it.
type Scorer struct {
	cfg config
}

// NewScorer resolves opts into a Scorer.
//
// Errors: see newConfig.
func NewScorer(opts ...Option) (*Scorer, error) {
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}
	return &Scorer{cfg: cfg}, nil
}

// Categories returns the scorer's registered alignment categories, for
// the outer DP recurrence to enumerate.
func (s *Scorer) Categories() []Category { return s.cfg.categories.Entries() }

// BeadCost computes the per-bead cost of spec.md §4.4 for a bead ending
// at source sentence srcEnd and target sentence tgtEnd (exclusive),
// spanning sourceLen source sentences and targetLen target sentences.
//
// Errors:
//   - ErrCategoryNotRegistered if (sourceLen, targetLen) has no
//     registered category.
func (s *Scorer) BeadCost(src, tgt *text.Text, srcEnd, tgtEnd, sourceLen, targetLen int) (float64, error) {
	category, ok := s.cfg.categories.Lookup(sourceLen, targetLen)
	if !ok {
		return 0, fmt.Errorf("%s(%d,%d): %w", opBeadCost, sourceLen, targetLen, ErrCategoryNotRegistered)
	}

	cS := float64(src.RangeLen(srcEnd-sourceLen, srcEnd))
	cT := float64(tgt.RangeLen(tgtEnd-targetLen, tgtEnd))
	length := s.cfg.lengthTerm(cS, cT, category.Penalty)

	srcWords := wordInfos(src, srcEnd-sourceLen, srcEnd)
	tgtWords := wordInfos(tgt, tgtEnd-targetLen, tgtEnd)
	k := countCognates(srcWords, tgtWords)
	n := averageWordCount(len(srcWords), len(tgtWords))
	cognate := s.cfg.cognateTerm(n, k)

	if sourceLen == 0 || targetLen == 0 {
		length, cognate = s.applyFullFelipe(length, cognate)
	}

	weighted := []float64{s.cfg.lengthWeight * length, s.cfg.cognateWeight * cognate}
	return floats.Sum(weighted), nil
}

// applyFullFelipe divides one or both terms by the correction factor,
// per spec.md §4.4(c).
func (s *Scorer) applyFullFelipe(length, cognate float64) (float64, float64) {
	switch s.cfg.fullFelipeMode {
	case FullFelipeLengthOnly:
		return length / s.cfg.fullFelipeCorrection, cognate
	case FullFelipeCognateOnly:
		return length, cognate / s.cfg.fullFelipeCorrection
	case FullFelipeBoth:
		return length / s.cfg.fullFelipeCorrection, cognate / s.cfg.fullFelipeCorrection
	default:
		return length, cognate
	}
}

// wordInfos returns the WordInfo pointers (nil where a word has no
// dictionary entry) for the words in sentences [firstSentence, lastSentence).
func wordInfos(t *text.Text, firstSentence, lastSentence int) []*text.WordInfo {
	if firstSentence >= lastSentence {
		return nil
	}
	firstWord, _, err := t.SentenceRange(firstSentence)
	if err != nil {
		return nil
	}
	_, lastWord, err := t.SentenceRange(lastSentence - 1)
	if err != nil {
		return nil
	}
	out := make([]*text.WordInfo, 0, lastWord-firstWord)
	for idx := firstWord; idx < lastWord; idx++ {
		w, _ := t.WordInfoAt(idx)
		out = append(out, w)
	}
	return out
}
