// Package parse implements spec.md §6's input parsers: one-sentence-
// per-line, RALI/GLM, ARCADE, and CESANA, each producing a text.Text.
//
// Grounded on original_source's onesentperlineparser.cc, raliparser.cc,
// arcadeparser.cc and cesanaparser.cc, reworked as Go scanners over an
// io.Reader instead of a wide-character stream. The CESANA tag
// classifier's original `!=`-everywhere bug (spec.md §9) is not
// reproduced: tags are compared case-insensitively with `==`.
//
//	go get github.com/corvidnlp/yasa/parse
package parse
