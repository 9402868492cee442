// Package format implements spec.md §6's output formatters: linked-ID,
// linked-ID with a cesAlign header, bead, score, and human-readable.
// Every formatter is a pure function over a bead sequence and the two
// source/target text.Texts — spec.md §9 explicitly flags the original's
// human-readable printer as an ambient-stream writer and asks
// re-implementations to make it a pure formatter instead.
//
// Grounded on original_source's arcadeprinter.h, raliprinter.h,
// cesalignprinter.h, scoreprinter.h, and friendlyprinter.h.
//
//	go get github.com/corvidnlp/yasa/format
package format
