// SPDX-License-Identifier: MIT
// convert.go — translates Options' CLI-facing string selectors into the
// typed functional options of packages cognate, score, and filler.
package config

import (
	"fmt"

	"github.com/corvidnlp/yasa/cognate"
	"github.com/corvidnlp/yasa/filler"
	"github.com/corvidnlp/yasa/score"
)

// CognateOptions translates the cognate-detection fields into package
// cognate's functional options.
//
// Errors:
//   - ErrUnknownCognateMode.
func (o Options) CognateOptions() ([]cognate.Option, error) {
	var mode cognate.Mode
	switch o.CognateMode {
	case "none":
		mode = cognate.ModeNone
	case "identity":
		mode = cognate.ModeIdentity
	case "prefix":
		mode = cognate.ModePrefix
	default:
		return nil, fmt.Errorf("config: CognateOptions: %q: %w", o.CognateMode, ErrUnknownCognateMode)
	}
	return []cognate.Option{
		cognate.WithMode(mode),
		cognate.WithMaxFrequency(o.MaxCognateFrequency),
		cognate.WithMinLength(o.MinCognateLength),
		cognate.WithPrefixLength(o.PrefixLength),
	}, nil
}

// FillerOptions translates the word-DP fields into package filler's
// functional options.
func (o Options) FillerOptions() []filler.Option {
	return []filler.Option{
		filler.WithMaxFrequency(o.PassageMaxFrequency),
		filler.WithReturnCount(o.ReturnCount),
		filler.WithReturnCost(o.ReturnCost),
		filler.WithRadius(o.Radius),
		filler.WithBeamRadius(o.BeamRadius),
	}
}

// ScoreOptions translates the scoring fields into package score's
// functional options. A ScoreFunction of "length-only" is realized as a
// composite scorer with its cognate-term weight forced to zero, rather
// than as a separate code path in package score: the length term alone
// already determines the bead cost once wSim is zero, so no new knob is
// needed there.
//
// Errors:
//   - ErrUnknownScoreFunction, ErrMalformedCategory, ErrUnknownFullFelipe.
func (o Options) ScoreOptions() ([]score.Option, error) {
	categories, err := parseCategories(o.Categories)
	if err != nil {
		return nil, err
	}

	cognateWeight := o.CognateWeight
	switch o.ScoreFunction {
	case "composite":
	case "length-only":
		cognateWeight = 0
	default:
		return nil, fmt.Errorf("config: ScoreOptions: %q: %w", o.ScoreFunction, ErrUnknownScoreFunction)
	}

	var fullFelipeMode score.FullFelipeMode
	switch o.FullFelipe {
	case "none":
		fullFelipeMode = score.FullFelipeNone
	case "length":
		fullFelipeMode = score.FullFelipeLengthOnly
	case "cognate":
		fullFelipeMode = score.FullFelipeCognateOnly
	case "both":
		fullFelipeMode = score.FullFelipeBoth
	default:
		return nil, fmt.Errorf("config: ScoreOptions: %q: %w", o.FullFelipe, ErrUnknownFullFelipe)
	}

	return []score.Option{
		score.WithCategories(categories),
		score.WithProduction(o.Production),
		score.WithVariance(o.Variance),
		score.WithMatchWeight(o.MatchWeight),
		score.WithPenaltyWeight(o.PenaltyWeight),
		score.WithLengthWeight(o.LengthWeight),
		score.WithCognateWeight(cognateWeight),
		score.WithPIn(o.PIn),
		score.WithPOut(o.POut),
		score.WithFullFelipe(fullFelipeMode, o.FullFelipeCorrection),
	}, nil
}
