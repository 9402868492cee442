// SPDX-License-Identifier: MIT
// onesentperline.go — the one-sentence-per-line parser of spec.md §6.
//
// Grounded on original_source's OneSentPerLineParser::operator(): one
// line per sentence, whitespace-separated tokens, sequential sentence IDs.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/corvidnlp/yasa/text"
)

const opParseOneSentPerLine = "ParseOneSentPerLine"

// ParseOneSentPerLine reads r as one sentence per line, whitespace-
// separated tokens, and assigns sequential sentence IDs starting at 1.
//
// Errors: scanner I/O failures only, wrapped with ErrMalformedInput.
func ParseOneSentPerLine(r io.Reader) (*text.Text, error) {
	t := text.NewText()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	id := 1
	for scanner.Scan() {
		line := scanner.Text()
		fields := strings.Fields(line)
		for _, word := range fields {
			t.AddWord(word)
		}
		if err := t.EndSentence(strconv.Itoa(id)); err != nil {
			// A blank line has no words to close into a sentence; skip it
			// rather than recording an empty one.
			continue
		}
		id++
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", opParseOneSentPerLine, ErrMalformedInput, err)
	}
	t.Finish()
	return t, nil
}
