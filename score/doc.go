// Package score implements spec.md §4.4: the composite bead cost minimized
// by the outer sentence DP — a Church-Gale length term plus a Simard
// cognate term, linearly combined, with the FullFelipe zero-length
// correction and a registry of alignment categories driving the outer
// recurrence's candidate penalties.
//
// Grounded on package dtw's options/config split (functional Options
// resolved once into an immutable scorer) and on package matrix's
// numerically careful float handling.
//
//	go get github.com/corvidnlp/yasa/score
package score
