// SPDX-License-Identifier: MIT
// humanreadable.go — the human-readable formatter of spec.md §6.
//
// Grounded on original_source's FriendlyPrinter::operator(), made a pure
// function over a bead list and the two texts instead of writing through
// an ambient stream (spec.md §9's design note).
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/corvidnlp/yasa/align"
	"github.com/corvidnlp/yasa/text"
)

const (
	opHumanReadable = "HumanReadable"

	humanReadableRuleOuter = "***************************************************"
	humanReadableRuleInner = "---------------------------------------------------"
)

// HumanReadable writes one block per bead: the bead's source sentences,
// a rule, its target sentences, all bracketed by outer rules.
//
// Errors:
//   - ErrSentenceIDExhausted if beads references more sentences than src
//     or tgt actually has.
//   - any error from w.Write.
func HumanReadable(w io.Writer, src, tgt *text.Text, beads []align.Bead) error {
	isrc, itgt := 0, 0
	for _, bead := range beads {
		if err := writeLine(w, humanReadableRuleOuter); err != nil {
			return err
		}

		for i := 0; i < bead.SourceLen; i++ {
			if err := writeSentenceLine(w, src, isrc); err != nil {
				return err
			}
			isrc++
		}

		if err := writeLine(w, humanReadableRuleInner); err != nil {
			return err
		}

		for j := 0; j < bead.TargetLen; j++ {
			if err := writeSentenceLine(w, tgt, itgt); err != nil {
				return err
			}
			itgt++
		}

		if err := writeLine(w, humanReadableRuleOuter); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, s string) error {
	if _, err := fmt.Fprintln(w, s); err != nil {
		return fmt.Errorf("%s: %w", opHumanReadable, err)
	}
	return nil
}

func writeSentenceLine(w io.Writer, t *text.Text, idx int) error {
	if idx >= t.NumSentences() {
		return fmt.Errorf("%s: %w", opHumanReadable, ErrSentenceIDExhausted)
	}
	words := t.SentenceWords(idx)
	line := fmt.Sprintf("%d(%s):\t %s", idx+1, t.SentenceID(idx), strings.Join(words, " "))
	return writeLine(w, line)
}
