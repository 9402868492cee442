// Package align implements spec.md §4.3/§4.4/§4.8: the outer sentence
// dynamic program that runs the registered alignment categories over a
// filled sentence search space using package score's composite cost,
// then reconstructs the optimal bead sequence by backtracking from the
// upper-right corner.
//
// Grounded on original_source's ChurchGaleScore::operator() (the outer
// DP's category-enumeration recurrence) adapted onto package sparsedt's
// generic engine, and on package tsp's tour-reconstruction-from-
// backtrack style.
//
//	go get github.com/corvidnlp/yasa/align
package align
