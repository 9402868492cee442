// SPDX-License-Identifier: MIT
package text

// Sentence records one sentence's word range and its opaque, parser-
// supplied identifier (spec.md §3: "preserved from parsing").
type Sentence struct {
	// ID is the opaque identifier carried over from the source format
	// (e.g. an ARCADE/CESANA "s id" attribute, or a sequential index for
	// one-sentence-per-line input).
	ID string
	// First is the index of this sentence's first word.
	First int
	// Last is one past the index of this sentence's last word.
	Last int
}

// Paragraph records the half-open range of sentence indices it spans.
type Paragraph struct {
	FirstSentence int
	LastSentence  int // one-past-last
}

// Division records the half-open range of paragraph indices it spans.
type Division struct {
	FirstParagraph int
	LastParagraph  int // one-past-last
}

// Text is the ingested, word-level representation of one side of a
// bitext: a flat word stream sliced into sentences, paragraphs, and
// divisions, plus the Dictionary those words canonicalize into.
//
// Built once by a package parse parser; read-only during alignment except
// for package cognate's synonym-link population (spec.md §5).
type Text struct {
	words     []string // raw, pre-canonicalization word text, ingest order
	canonical []string // canonical form per word, same indexing as words

	sentences  []Sentence
	paragraphs []Paragraph
	divisions  []Division

	dict *Dictionary

	// openSentenceStart marks the first word index of the sentence
	// currently being accumulated by AddWord, or -1 if none is open.
	openSentenceStart int
	openParagraphStart int
	openDivisionStart  int
}

// NewText constructs an empty Text ready for incremental ingest via
// AddWord / EndSentence / EndParagraph / EndDivision.
func NewText() *Text {
	return &Text{
		dict:               NewDictionary(),
		openSentenceStart:  -1,
		openParagraphStart: 0,
		openDivisionStart:  0,
	}
}

// Dictionary returns this Text's word dictionary.
func (t *Text) Dictionary() *Dictionary { return t.dict }
