// SPDX-License-Identifier: MIT
// options.go — functional options resolved into an immutable config.
package filler

import "fmt"

const opNewConfig = "newConfig"

// Option configures a filler via With* constructors.
type Option func(*config)

type config struct {
	maxFrequency int
	returnCount  int
	returnCost   float64
	radius       int
	beamRadius   int
}

// WithMaxFrequency caps a source word's own frequency and the summed
// frequency of its synonyms for it to seed a passage point. Default 25.
func WithMaxFrequency(n int) Option { return func(c *config) { c.maxFrequency = n } }

// WithReturnCount sets the maximum number of earlier word-grid rows the
// word-level DP may skip back past when searching for a predecessor.
// Default 50.
func WithReturnCount(n int) Option { return func(c *config) { c.returnCount = n } }

// WithReturnCost sets the per-return cost added to the word-level DP
// transition cost. Default 5.
func WithReturnCost(cost float64) Option { return func(c *config) { c.returnCost = cost } }

// WithRadius sets R, the word-level search space's band radius in
// sentences around the perfect diagonal. 0 means unrestricted. Default 0.
func WithRadius(r int) Option { return func(c *config) { c.radius = r } }

// WithBeamRadius sets r, the sentence-grid beam marker's radius. Default 30.
func WithBeamRadius(r int) Option { return func(c *config) { c.beamRadius = r } }

func defaultConfig() config {
	return config{
		maxFrequency: 25,
		returnCount:  50,
		returnCost:   5,
		radius:       0,
		beamRadius:   30,
	}
}

// newConfig resolves opts against defaultConfig and validates the result.
//
// Errors:
//   - ErrInvalidMaxFrequency, ErrInvalidReturnCount, ErrInvalidReturnCost,
//     ErrInvalidRadius, ErrInvalidBeamRadius.
func newConfig(opts ...Option) (config, error) {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if c.maxFrequency <= 0 {
		return config{}, fmt.Errorf("%s: %w", opNewConfig, ErrInvalidMaxFrequency)
	}
	if c.returnCount < 0 {
		return config{}, fmt.Errorf("%s: %w", opNewConfig, ErrInvalidReturnCount)
	}
	if c.returnCost < 0 {
		return config{}, fmt.Errorf("%s: %w", opNewConfig, ErrInvalidReturnCost)
	}
	if c.radius < 0 {
		return config{}, fmt.Errorf("%s: %w", opNewConfig, ErrInvalidRadius)
	}
	if c.beamRadius <= 0 {
		return config{}, fmt.Errorf("%s: %w", opNewConfig, ErrInvalidBeamRadius)
	}
	return c, nil
}
