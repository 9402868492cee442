// SPDX-License-Identifier: MIT
// arcade.go — the ARCADE-style SGML parser of spec.md §6.
//
// Grounded on original_source's ArcadeParser::operator(): a character
// scanner distinguishing `<tag ...>` markup from plain words, with the
// sentence id read out of the `id="..."` attribute.
package parse

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/corvidnlp/yasa/text"
)

const opParseARCADE = "ParseARCADE"

// ParseARCADE reads r as ARCADE-style SGML: <text>, <div ...>, <p ...>,
// <s id="...">, closing tags ignored except to end the active sentence.
//
// Errors:
//   - ErrMalformedInput if </text> is reached before the opening <text>
//     tag, or the stream ends before a closing </text>.
func ParseARCADE(r io.Reader) (*text.Text, error) {
	t := text.NewText()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	scanner.Split(sgmlSplit)

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
		lower := strings.ToLower(name)
		switch {
		case lower == "text" && !closing:
			inText = true
		case lower == "text" && closing:
			if !inText {
				return nil, fmt.Errorf("%s: %w", opParseARCADE, ErrMalformedInput)
			}
			if haveOpen {
				t.EndSentence(pendingID)
			}
			t.Finish()
			return t, nil
		case !inText:
			// markup outside <text>...</text> is ignored
		case lower == "div" && !closing:
			t.EndDivision()
		case lower == "p" && !closing:
			t.EndParagraph()
		case lower == "s" && !closing:
			if haveOpen {
				t.EndSentence(pendingID)
			}
			pendingID = attrValue(attrs, "id")
			haveOpen = true
		case lower == "s" && closing:
			if haveOpen {
				t.EndSentence(pendingID)
				haveOpen = false
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", opParseARCADE, ErrMalformedInput, err)
	}
	return nil, fmt.Errorf("%s: %w", opParseARCADE, ErrMalformedInput)
}

// splitTag parses a `<name attr="val" ...>` or `</name>` token into its
// tag name, raw attribute substring, and whether it is a closing tag.
func splitTag(tok string) (name, attrs string, closing bool) {
	body := strings.TrimSuffix(strings.TrimPrefix(tok, "<"), ">")
	body = strings.TrimSpace(body)
	if strings.HasPrefix(body, "/") {
		return strings.TrimSpace(body[1:]), "", true
	}
	fields := strings.SplitN(body, " ", 2)
	name = fields[0]
	if len(fields) > 1 {
		attrs = fields[1]
	}
	return name, attrs, false
}

// attrValue extracts attr="value" from a raw attribute substring.
func attrValue(attrs, attr string) string {
	key := attr + "=\""
	i := strings.Index(attrs, key)
	if i < 0 {
		return ""
	}
	rest := attrs[i+len(key):]
	j := strings.Index(rest, "\"")
	if j < 0 {
		return ""
	}
	return rest[:j]
}
