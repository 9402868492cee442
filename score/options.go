// SPDX-License-Identifier: MIT
// options.go — functional options resolved into an immutable Scorer
// config, mirroring package dtw's DTWOptions/resolved-config split.
package score

import "fmt"

const opNewScorer = "NewScorer"

// FullFelipeMode selects which term(s) of a zero-length bead's cost are
// divided by the FullFelipe correction factor (spec.md §4.4(c)).
type FullFelipeMode int

const (
	// FullFelipeNone applies no correction.
	FullFelipeNone FullFelipeMode = iota
	// FullFelipeLengthOnly divides only the length term.
	FullFelipeLengthOnly
	// FullFelipeCognateOnly divides only the cognate term.
	FullFelipeCognateOnly
	// FullFelipeBoth divides both terms.
	FullFelipeBoth
)

// Option configures a Scorer via With* constructors.
type Option func(*config)

type config struct {
	categories *CategoryRegistry

	production float64
	variance   float64

	matchWeight   float64
	penaltyWeight float64

	lengthWeight  float64
	cognateWeight float64

	pIn, pOut float64

	fullFelipeMode       FullFelipeMode
	fullFelipeCorrection float64
}

// WithCategories overrides the registered alignment categories. Default
// DefaultCategories().
func WithCategories(r *CategoryRegistry) Option { return func(c *config) { c.categories = r } }

// WithProduction sets π, the expected target-characters-per-source-
// character ratio. Default 1.0.
func WithProduction(p float64) Option { return func(c *config) { c.production = p } }

// WithVariance sets σ², the variance of the standardized length
// difference. Default 6.8.
func WithVariance(v float64) Option { return func(c *config) { c.variance = v } }

// WithMatchWeight sets the length-term match-probability weight. Default 0.2.
func WithMatchWeight(w float64) Option { return func(c *config) { c.matchWeight = w } }

// WithPenaltyWeight sets the length-term category-penalty weight. Default 1.
func WithPenaltyWeight(w float64) Option { return func(c *config) { c.penaltyWeight = w } }

// WithLengthWeight sets wCG, the composite weight of the length term.
// Default 1.0.
func WithLengthWeight(w float64) Option { return func(c *config) { c.lengthWeight = w } }

// WithCognateWeight sets wSim, the composite weight of the cognate term.
// Default 0.85.
func WithCognateWeight(w float64) Option { return func(c *config) { c.cognateWeight = w } }

// WithPIn sets the cognate probability in translation. Default 0.3.
func WithPIn(p float64) Option { return func(c *config) { c.pIn = p } }

// WithPOut sets the cognate probability not in translation. Default 0.09.
func WithPOut(p float64) Option { return func(c *config) { c.pOut = p } }

// WithFullFelipe sets the zero-length correction selector and factor.
// Default FullFelipeNone, factor 1 (inert).
func WithFullFelipe(mode FullFelipeMode, correction float64) Option {
	return func(c *config) {
		c.fullFelipeMode = mode
		c.fullFelipeCorrection = correction
	}
}

func defaultConfig() config {
	return config{
		categories:           DefaultCategories(),
		production:           1.0,
		variance:             6.8,
		matchWeight:          0.2,
		penaltyWeight:        1,
		lengthWeight:         1.0,
		cognateWeight:        0.85,
		pIn:                  0.3,
		pOut:                 0.09,
		fullFelipeMode:       FullFelipeNone,
		fullFelipeCorrection: 1,
	}
}

// newConfig resolves opts against defaultConfig and validates the result.
//
// Errors:
//   - ErrNoCategories, ErrNonPositiveProbability (category registry),
//     ErrNonPositiveVariance, ErrNonPositiveProduction,
//     ErrInvalidProbabilityRange (pIn/pOut), ErrUnknownFullFelipeMode,
//     ErrNonPositiveCorrection.
func newConfig(opts ...Option) (config, error) {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if err := c.categories.Validate(); err != nil {
		return config{}, fmt.Errorf("%s: %w", opNewScorer, err)
	}
	if c.variance <= 0 {
		return config{}, fmt.Errorf("%s: %w", opNewScorer, ErrNonPositiveVariance)
	}
	if c.production <= 0 {
		return config{}, fmt.Errorf("%s: %w", opNewScorer, ErrNonPositiveProduction)
	}
	if c.pIn <= 0 || c.pIn >= 1 || c.pOut <= 0 || c.pOut >= 1 {
		return config{}, fmt.Errorf("%s: %w", opNewScorer, ErrInvalidProbabilityRange)
	}
	switch c.fullFelipeMode {
	case FullFelipeNone, FullFelipeLengthOnly, FullFelipeCognateOnly, FullFelipeBoth:
	default:
		return config{}, fmt.Errorf("%s: %w", opNewScorer, ErrUnknownFullFelipeMode)
	}
	if c.fullFelipeCorrection <= 0 {
		return config{}, fmt.Errorf("%s: %w", opNewScorer, ErrNonPositiveCorrection)
	}
	return c, nil
}
