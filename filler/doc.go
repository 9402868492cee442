// Package filler implements spec.md §4.6-4.7: constructing the sentence
// search space a sentence aligner's outer DP runs over. CognateFiller
// runs a nested word-level sparse DP to find passage points reflecting
// actual cognate correspondences; BeamFiller falls back to a plain
// diagonal band when no cognate information is trusted. Both rasterize
// their passage points into the sentence grid with package rasterline
// and widen each rasterized point into a beam with a configurable
// radius.
//
// Grounded on package tsp's search-construction pipeline (build a
// reduced candidate graph, then solve over it) and on package dtw's
// window-restricted cell population.
//
//	go get github.com/corvidnlp/yasa/filler
package filler
