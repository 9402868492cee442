// SPDX-License-Identifier: MIT
// rali.go — the RALI/GLM marker-token parser of spec.md §6.
//
// Grounded on original_source's RaliParser::operator(): a token-per-line
// stream with marker tokens {sect}, {para}, {sent}, {EOF}; anything
// before the first {sent} is header and ignored.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/corvidnlp/yasa/text"
)

const (
	opParseRALI = "ParseRALI"

	raliBeginDivision  = "{sect}"
	raliBeginParagraph = "{para}"
	raliBeginSentence  = "{sent}"
	raliEndText        = "{EOF}"
)

// ParseRALI reads r as a RALI/GLM token stream.
//
// Errors:
//   - ErrMalformedInput if {EOF} is reached before the first {sent}
//     marker, or the stream ends without an {EOF} marker.
func ParseRALI(r io.Reader) (*text.Text, error) {
	t := text.NewText()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	// {sent} opens a new sentence in the source stream; our builder only
	// exposes EndSentence (closing words accumulated since the previous
	// close). So the id read at a {sent} marker is held in pendingID and
	// applied when the sentence it names is actually closed, at the next
	// {sent}, {para}, {sect} or {EOF}.
	nextID := 0
	var pendingID string
	haveOpen := false

	for scanner.Scan() {
		tok := scanner.Text()
		switch tok {
		case raliEndText:
			if !haveOpen {
				return nil, fmt.Errorf("%s: %w", opParseRALI, ErrMalformedInput)
			}
			t.EndSentence(pendingID) // no-op if the final sentence had no words
			t.Finish()
			return t, nil
		case raliBeginSentence:
			if haveOpen {
				t.EndSentence(pendingID) // no-op if that sentence had no words
			}
			pendingID = strconv.Itoa(nextID)
			nextID++
			haveOpen = true
		case raliBeginParagraph:
			if haveOpen {
				t.EndSentence(pendingID) // the open sentence belongs to the closing paragraph
			}
			t.EndParagraph()
		case raliBeginDivision:
			if haveOpen {
				t.EndSentence(pendingID) // the open sentence belongs to the closing division
			}
			t.EndDivision()
		default:
			if haveOpen {
				t.AddWord(tok)
			}
			// Tokens before the first {sent} marker are header and ignored.
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", opParseRALI, ErrMalformedInput, err)
	}
	return nil, fmt.Errorf("%s: %w", opParseRALI, ErrMalformedInput)
}
