// SPDX-License-Identifier: MIT
// cesana.go — the CESANA-style parser of spec.md §6.
//
// Grounded on original_source's CesanaParser::operator() and tag
// classifier, with the `<CHUNKLIST>`/`<CHUNK>`/`<PAR>`/`<S id="...">`
// nesting and punctuation/whitespace word boundaries. The original tag
// classifier compares tag names with `!=` everywhere (spec.md §9's
// flagged bug, effectively always taking the first branch); this
// implementation compares case-insensitively with `==` instead.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/corvidnlp/yasa/text"
)

const opParseCESANA = "ParseCESANA"

// ParseCESANA reads r as CESANA-style markup.
//
// Errors:
//   - ErrMalformedInput if </CHUNKLIST> is reached before the opening
//     <CHUNKLIST> tag, or the stream ends before a closing </CHUNKLIST>.
func ParseCESANA(r io.Reader) (*text.Text, error) {
	t := text.NewText()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	scanner.Split(cesanaSplit)

	inText := false
	var pendingID string
	haveOpen := false

	for scanner.Scan() {
		tok := scanner.Text()
		if tok == "" {
			continue
		}
		if tok[0] != '<' {
			if inText && haveOpen {
				t.AddWord(tok)
			}
			continue
		}

		name, attrs, closing := splitTag(tok)
		category := classifyCesanaTag(name)
		switch {
		case category == cesanaChunkList && !closing:
			inText = true
		case category == cesanaChunkList && closing:
			if !inText {
				return nil, fmt.Errorf("%s: %w", opParseCESANA, ErrMalformedInput)
			}
			if haveOpen {
				t.EndSentence(pendingID)
			}
			t.Finish()
			return t, nil
		case !inText:
			// markup outside <CHUNKLIST>...</CHUNKLIST> is ignored
		case category == cesanaChunk && !closing:
			t.EndDivision()
		case category == cesanaPar && !closing:
			t.EndParagraph()
		case category == cesanaSentence && !closing:
			if haveOpen {
				t.EndSentence(pendingID)
			}
			pendingID = attrValue(attrs, "id")
			haveOpen = true
		case category == cesanaSentence && closing:
			if haveOpen {
				t.EndSentence(pendingID)
				haveOpen = false
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", opParseCESANA, ErrMalformedInput, err)
	}
	return nil, fmt.Errorf("%s: %w", opParseCESANA, ErrMalformedInput)
}

type cesanaTag int

const (
	cesanaOther cesanaTag = iota
	cesanaSentence
	cesanaPar
	cesanaChunk
	cesanaChunkList
)

// classifyCesanaTag maps a (possibly leading-slash-stripped) tag name to
// its category, comparing case-insensitively with equality.
func classifyCesanaTag(name string) cesanaTag {
	switch strings.ToUpper(name) {
	case "S":
		return cesanaSentence
	case "PAR":
		return cesanaPar
	case "CHUNK":
		return cesanaChunk
	case "CHUNKLIST":
		return cesanaChunkList
	default:
		return cesanaOther
	}
}

// cesanaSplit is a bufio.SplitFunc: `<...>` tags are whole tokens; words
// are maximal runs of characters that are neither whitespace, '<', nor
// punctuation, per spec.md §6's "word boundaries by punctuation/
// whitespace delimiters".
func cesanaSplit(data []byte, atEOF bool) (advance int, token []byte, err error) {
	start := 0
	for start < len(data) && isWordBoundary(data[start]) {
		start++
	}
	if start == len(data) {
		if atEOF {
			return len(data), nil, nil
		}
		return start, nil, nil
	}

	if data[start] == '<' {
		for i := start + 1; i < len(data); i++ {
			if data[i] == '>' {
				return i + 1, data[start : i+1], nil
			}
		}
		if atEOF {
			return len(data), data[start:], nil
		}
		return start, nil, nil
	}

	for i := start; i < len(data); i++ {
		if isWordBoundary(data[i]) || data[i] == '<' {
			return i, data[start:i], nil
		}
	}
	if atEOF {
		return len(data), data[start:], nil
	}
	return start, nil, nil
}

func isWordBoundary(b byte) bool {
	r := rune(b)
	return unicode.IsSpace(r) || unicode.IsPunct(r)
}
