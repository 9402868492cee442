// SPDX-License-Identifier: MIT
// flags.go — binds Options to a pflag.FlagSet, the CLI surface of
// spec.md §6.
package config

import "github.com/spf13/pflag"

// BindFlags registers every Options field on fs, defaulting to opts'
// current values. Call after Default() (or a caller-built Options) to
// seed defaults, then fs.Parse to apply overrides, then read back via
// the same opts pointer.
func BindFlags(fs *pflag.FlagSet, opts *Options) {
	fs.StringVar(&opts.SourcePath, "source", opts.SourcePath, "source text path")
	fs.StringVar(&opts.TargetPath, "target", opts.TargetPath, "target text path")
	fs.StringVar(&opts.SourceName, "source-name", opts.SourceName, "source name for output headers (defaults to -source)")
	fs.StringVar(&opts.TargetName, "target-name", opts.TargetName, "target name for output headers (defaults to -target)")

	fs.StringVar(&opts.InputFormat, "input-format", opts.InputFormat, "input format: line, rali, arcade, cesana")
	fs.StringVar(&opts.OutputFormat, "output-format", opts.OutputFormat, "output format: linked-id, linked-id-header, bead, score, human")
	fs.BoolVar(&opts.Compressed, "z", opts.Compressed, "decompress input with gzip")

	fs.StringArrayVar(&opts.LexiconPaths, "lexicon", opts.LexiconPaths, "bilingual lexicon path (repeatable)")

	fs.StringVar(&opts.CognateMode, "cognate-mode", opts.CognateMode, "cognate detection mode: none, prefix, identity")
	fs.IntVar(&opts.MinCognateLength, "cognate-min-length", opts.MinCognateLength, "minimum cognate candidate length")
	fs.IntVar(&opts.MaxCognateFrequency, "cognate-max-frequency", opts.MaxCognateFrequency, "maximum cognate candidate frequency")
	fs.IntVar(&opts.PrefixLength, "prefix-length", opts.PrefixLength, "prefix-mode cognate prefix length")

	fs.IntVar(&opts.PassageMaxFrequency, "passage-max-frequency", opts.PassageMaxFrequency, "maximum frequency for a word-DP passage point")
	fs.IntVar(&opts.ReturnCount, "return-count", opts.ReturnCount, "word-DP maximum predecessor-row skip count")
	fs.Float64Var(&opts.ReturnCost, "return-cost", opts.ReturnCost, "word-DP per-skip cost")
	fs.IntVar(&opts.Radius, "deviance-radius", opts.Radius, "word-DP diagonal band radius in sentences (0 = unrestricted)")
	fs.IntVar(&opts.BeamRadius, "beam-radius", opts.BeamRadius, "sentence-grid beam marker radius")

	fs.StringVar(&opts.ScoreFunction, "score-function", opts.ScoreFunction, "score function: length-only, composite")
	fs.StringArrayVar(&opts.Categories, "category", opts.Categories, "alignment category a-b-p (repeatable, replaces defaults)")
	fs.Float64Var(&opts.Production, "production", opts.Production, "expected target/source character production ratio")
	fs.Float64Var(&opts.Variance, "variance", opts.Variance, "length-term variance")
	fs.Float64Var(&opts.MatchWeight, "match-weight", opts.MatchWeight, "length-term match-probability weight")
	fs.Float64Var(&opts.PenaltyWeight, "penalty-weight", opts.PenaltyWeight, "length-term category-penalty weight")
	fs.Float64Var(&opts.LengthWeight, "length-weight", opts.LengthWeight, "composite length-term weight")
	fs.Float64Var(&opts.CognateWeight, "cognate-weight", opts.CognateWeight, "composite cognate-term weight")
	fs.Float64Var(&opts.PIn, "p-in", opts.PIn, "cognate probability in translation")
	fs.Float64Var(&opts.POut, "p-out", opts.POut, "cognate probability not in translation")

	fs.StringVar(&opts.FullFelipe, "full-felipe", opts.FullFelipe, "zero-length correction: none, length, cognate, both")
	fs.Float64Var(&opts.FullFelipeCorrection, "full-felipe-correction", opts.FullFelipeCorrection, "zero-length correction factor")
}
