// SPDX-License-Identifier: MIT
// builder.go — incremental construction API consumed by package parse.
package text

import (
	"fmt"
	"unicode/utf8"
)

const (
	opEndSentence        = "EndSentence"
	opSentenceLen        = "SentenceLen"
	opWordRaw            = "WordRaw"
	opWordCanonical      = "WordCanonical"
	opSentenceContaining = "SentenceContaining"
)

// AddWord appends one raw word token to the text, canonicalizes it, and
// records (or increments) its Dictionary entry. Complexity: O(1) amortized.
func (t *Text) AddWord(raw string) {
	if t.openSentenceStart == -1 {
		t.openSentenceStart = len(t.words)
	}
	t.words = append(t.words, raw)
	canon := Canonicalize(raw)
	t.canonical = append(t.canonical, canon)
	t.dict.GetOrCreate(canon).Count++
}

// EndSentence closes the sentence accumulated since the last EndSentence
// (or since construction) and assigns it id.
//
// Errors:
//   - ErrNoOpenSentence if no words were added since the last EndSentence.
func (t *Text) EndSentence(id string) error {
	if t.openSentenceStart == -1 {
		return fmt.Errorf("%s: %w", opEndSentence, ErrNoOpenSentence)
	}
	t.sentences = append(t.sentences, Sentence{
		ID:    id,
		First: t.openSentenceStart,
		Last:  len(t.words),
	})
	t.openSentenceStart = -1
	return nil
}

// EndParagraph closes the paragraph spanning every sentence accumulated
// since the last EndParagraph. A no-op if no sentence has closed since.
func (t *Text) EndParagraph() {
	if len(t.sentences) == t.openParagraphStart {
		return
	}
	t.paragraphs = append(t.paragraphs, Paragraph{
		FirstSentence: t.openParagraphStart,
		LastSentence:  len(t.sentences),
	})
	t.openParagraphStart = len(t.sentences)
}

// EndDivision closes the division spanning every paragraph accumulated
// since the last EndDivision. Implicitly closes a trailing open
// paragraph first. A no-op if no paragraph has closed since.
func (t *Text) EndDivision() {
	t.EndParagraph()
	if len(t.paragraphs) == t.openDivisionStart {
		return
	}
	t.divisions = append(t.divisions, Division{
		FirstParagraph: t.openDivisionStart,
		LastParagraph:  len(t.paragraphs),
	})
	t.openDivisionStart = len(t.paragraphs)
}

// Finish closes any paragraph and division left open by the parser at
// end-of-input. Words added since the last EndSentence are not closed into
// a sentence. Idempotent.
func (t *Text) Finish() {
	t.EndDivision()
}

// rawLen returns the character length (rune count) of one word, excluding
// any separator — spec.md §3's unit for a sentence's character length.
func rawLen(word string) int { return utf8.RuneCountInString(word) }
