// Package rasterline rasterizes the integer-grid line between two lattice
// points using Bresenham's midpoint algorithm.
//
// It is the lowest-level component of the sentence-aligner search-space
// pipeline: the filler strategies in package filler call DiscreteLine to
// turn a handful of "passage points" (srcSentence, tgtSentence) coordinates
// into the ordered sequence of lattice points that a beam is drawn around.
//
//	go get github.com/corvidnlp/yasa/rasterline
package rasterline
