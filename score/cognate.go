// SPDX-License-Identifier: MIT
// cognate.go — the Simard cognate term and the deterministic bipartite
// counting rule of spec.md §4.4(b)/(d).
package score

import (
	"math"

	"github.com/corvidnlp/yasa/text"
)

// cognateTerm computes k*r1 + (n-k)*r2 where r1 = -log(pIn/pOut) and
// r2 = -log((1-pIn)/(1-pOut)).
func (c config) cognateTerm(n, k int) float64 {
	r1 := -logSafe(c.pIn / c.pOut)
	r2 := -logSafe((1 - c.pIn) / (1 - c.pOut))
	return float64(k)*r1 + float64(n-k)*r2
}

// countCognates implements spec.md §4.4(d): bipartite matching with
// early commitment. wordInfo and target's own Synonyms slices are never
// mutated; only the local multiset copy is.
func countCognates(srcWords, tgtWords []*text.WordInfo) int {
	multiset := append([]*text.WordInfo(nil), tgtWords...)

	k := 0
	for _, src := range srcWords {
		if src == nil || len(src.Synonyms) == 0 {
			continue
		}
		for idx, candidate := range multiset {
			if candidate == nil {
				continue
			}
			if referencesSynonym(src, candidate) {
				k++
				multiset[idx] = nil
				break
			}
		}
	}
	return k
}

func referencesSynonym(src, candidate *text.WordInfo) bool {
	for _, syn := range src.Synonyms {
		if syn == candidate {
			return true
		}
	}
	return false
}

// averageWordCount returns the rounded average of the source- and
// target-side word counts in a bead.
func averageWordCount(sourceWords, targetWords int) int {
	return int(math.Round(float64(sourceWords+targetWords) / 2))
}
