// SPDX-License-Identifier: MIT
// options.go — the aggregated Options struct and its spec.md §6 defaults.
package config

// Options aggregates every CLI-tunable setting of spec.md §6, in its raw
// (unvalidated, string-selector) form as bound from flags.
type Options struct {
	SourcePath string
	TargetPath string
	SourceName string // defaults to SourcePath if empty
	TargetName string // defaults to TargetPath if empty

	InputFormat  string // "line", "rali", "arcade", "cesana"
	OutputFormat string // "linked-id", "linked-id-header", "bead", "score", "human"
	Compressed   bool

	LexiconPaths []string

	CognateMode         string // "none", "prefix", "identity"
	MinCognateLength    int
	MaxCognateFrequency int
	PrefixLength        int

	PassageMaxFrequency int
	ReturnCount         int
	ReturnCost          float64
	Radius              int
	BeamRadius          int

	ScoreFunction string // "length-only", "composite"
	Categories    []string
	Production    float64
	Variance      float64
	MatchWeight   float64
	PenaltyWeight float64
	LengthWeight  float64
	CognateWeight float64
	PIn           float64
	POut          float64

	FullFelipe           string // "none", "length", "cognate", "both"
	FullFelipeCorrection float64
}

// Default returns the Options of spec.md §6's enumerated defaults: beam
// radius 30, prefix length 4, max cognate frequency 25, production 1.0,
// variance 6.8, pIn 0.3, pOut 0.09, match weight 0.2, penalty weight 1,
// composite weights 1.0 and 0.85, the six default category triples.
func Default() Options {
	return Options{
		InputFormat:  "line",
		OutputFormat: "linked-id",

		CognateMode:         "prefix",
		MinCognateLength:    4,
		MaxCognateFrequency: 25,
		PrefixLength:        4,

		PassageMaxFrequency: 25,
		ReturnCount:         50,
		ReturnCost:          5,
		Radius:              0,
		BeamRadius:          30,

		ScoreFunction: "composite",
		Categories:    []string{"1-1-0.89", "0-1-0.0099", "1-0-0.0099", "1-2-0.089", "2-1-0.089", "2-2-0.011"},
		Production:    1.0,
		Variance:      6.8,
		MatchWeight:   0.2,
		PenaltyWeight: 1,
		LengthWeight:  1.0,
		CognateWeight: 0.85,
		PIn:           0.3,
		POut:          0.09,

		FullFelipe:           "none",
		FullFelipeCorrection: 1,
	}
}
