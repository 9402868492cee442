// SPDX-License-Identifier: MIT
// linkedid.go — the linked-ID and linked-ID-with-header formatters of
// spec.md §6.
//
// Grounded on original_source's ArcadePrinter::operator() (the <link>
// tag shape) and CesalignPrinter::operator() (the DOCTYPE/cesAlign
// envelope).
package format

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/corvidnlp/yasa/align"
	"github.com/corvidnlp/yasa/text"
)

const opLinkedID = "LinkedID"

// LinkedID writes one `<link xtargets="srcIDs;tgtIDs" certainty="Δscore">
// </link>` line per bead, where Δscore is the increment of cumulative
// score on that bead over the previous one.
//
// Errors:
//   - ErrSentenceIDExhausted if beads references more sentences than src
//     or tgt actually has.
//   - any error from w.Write.
func LinkedID(w io.Writer, src, tgt *text.Text, beads []align.Bead) error {
	isrc, itgt := 0, 0
	previousScore := 0.0
	for _, bead := range beads {
		srcIDs, next, err := sentenceIDs(src, isrc, bead.SourceLen)
		if err != nil {
			return fmt.Errorf("%s: %w", opLinkedID, err)
		}
		isrc = next

		tgtIDs, next, err := sentenceIDs(tgt, itgt, bead.TargetLen)
		if err != nil {
			return fmt.Errorf("%s: %w", opLinkedID, err)
		}
		itgt = next

		certainty := bead.Score - previousScore
		previousScore = bead.Score

		line := fmt.Sprintf("<link xtargets=\"%s;%s\" certainty=\"%s\"></link>\n",
			strings.Join(srcIDs, " "), strings.Join(tgtIDs, " "), strconv.FormatFloat(certainty, 'g', -1, 64))
		if _, err := io.WriteString(w, line); err != nil {
			return fmt.Errorf("%s: %w", opLinkedID, err)
		}
	}
	return nil
}

// LinkedIDWithHeader wraps LinkedID's body in the DOCTYPE/<cesAlign>
// envelope, referencing sourceName and targetName as the two source
// file names.
func LinkedIDWithHeader(w io.Writer, src, tgt *text.Text, beads []align.Bead, sourceName, targetName string) error {
	header := fmt.Sprintf(
		"<!DOCTYPE CESALIGN PUBLIC \"-//CES//DTD cesAlign//EN\" []>\n"+
			"<cesAlign VERSION=\"1.14\" type=\"sent\" fromDoc=\"%s\" toDoc=\"%s\">\n"+
			"<linkList>\n<linkGrp>\n", sourceName, targetName)
	if _, err := io.WriteString(w, header); err != nil {
		return fmt.Errorf("%s: %w", opLinkedID, err)
	}

	if err := LinkedID(w, src, tgt, beads); err != nil {
		return err
	}

	footer := "</linkGrp>\n</linkList>\n</cesAlign>\n"
	if _, err := io.WriteString(w, footer); err != nil {
		return fmt.Errorf("%s: %w", opLinkedID, err)
	}
	return nil
}

// sentenceIDs returns the n sentence IDs of t starting at index first,
// and the next index to resume from.
func sentenceIDs(t *text.Text, first, n int) ([]string, int, error) {
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		idx := first + i
		if idx >= t.NumSentences() {
			return nil, 0, ErrSentenceIDExhausted
		}
		ids = append(ids, t.SentenceID(idx))
	}
	return ids, first + n, nil
}
