// SPDX-License-Identifier: MIT
// format.go — the Format selector and dispatch entry point of spec.md §6.
package parse

import (
	"fmt"
	"io"

	"github.com/corvidnlp/yasa/text"
)

const opParse = "Parse"

// Format identifies one of the input formats of spec.md §6.
type Format int

const (
	FormatOneSentPerLine Format = iota
	FormatRALI
	FormatARCADE
	FormatCESANA
)

// String renders a Format for diagnostics and flag help text.
func (f Format) String() string {
	switch f {
	case FormatOneSentPerLine:
		return "one-sentence-per-line"
	case FormatRALI:
		return "rali"
	case FormatARCADE:
		return "arcade"
	case FormatCESANA:
		return "cesana"
	default:
		return "unknown"
	}
}

// Parse reads r under the given format and returns the resulting Text.
//
// Errors:
//   - ErrUnknownFormat if format has no registered parser.
//   - ErrMalformedInput if the stream never reaches the expected start
//     marker (RALI/ARCADE/CESANA) or a tag is left unterminated.
func Parse(r io.Reader, format Format) (*text.Text, error) {
	var (
		t   *text.Text
		err error
	)
	switch format {
	case FormatOneSentPerLine:
		t, err = ParseOneSentPerLine(r)
	case FormatRALI:
		t, err = ParseRALI(r)
	case FormatARCADE:
		t, err = ParseARCADE(r)
	case FormatCESANA:
		t, err = ParseCESANA(r)
	default:
		return nil, fmt.Errorf("%s(%v): %w", opParse, format, ErrUnknownFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("%s(%s): %w", opParse, format, err)
	}
	return t, nil
}
