// SPDX-License-Identifier: MIT
// lexicon.go — bilingual lexicon loading (spec.md §4.5/§6): each input
// line "source_word target_word" registers a synonym link when both
// words already exist in their respective dictionaries.
package cognate

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/corvidnlp/yasa/text"
)

const opLoadLexicon = "LoadLexicon"

// LoadLexicon reads whitespace-separated "source_word target_word" pairs
// from r and links them as synonyms between src's and tgt's dictionaries.
// A line is skipped, not an error, when:
//   - it is blank or has fewer than two fields;
//   - either word, after canonicalization, has no entry in its Text's
//     Dictionary (the lexicon only links words the texts actually contain,
//     it never fabricates new dictionary entries).
//
// Determinism: lines are applied in input order, so the resulting
// Synonyms slices reflect the lexicon file's own ordering.
//
// Errors:
//   - ErrLexiconUnreadable if the scan itself fails.
func LoadLexicon(r io.Reader, src, tgt *text.Text) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		srcCanon := text.Canonicalize(fields[0])
		tgtCanon := text.Canonicalize(fields[1])

		srcWord, ok := src.Dictionary().Lookup(srcCanon)
		if !ok {
			continue
		}
		tgtWord, ok := tgt.Dictionary().Lookup(tgtCanon)
		if !ok {
			continue
		}
		srcWord.AddSynonym(tgtWord)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("%s: %w: %v", opLoadLexicon, ErrLexiconUnreadable, err)
	}
	return nil
}
