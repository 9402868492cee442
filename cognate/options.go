// SPDX-License-Identifier: MIT
// options.go — functional options resolved into an immutable config,
// mirroring builder.BuilderOption / builder.newBuilderConfig.
package cognate

import "fmt"

const opNewConfig = "newConfig"

// Mode selects the cognate-detection strategy of spec.md §4.5.
type Mode int

const (
	// ModeNone disables cognate detection: Find proposes no synonym links.
	// Links loaded from an external lexicon by LoadLexicon are unaffected,
	// so package score's cognate term can still count k>0 from those.
	ModeNone Mode = iota
	// ModeIdentity links a source word to a target word iff their
	// canonical forms are identical.
	ModeIdentity
	// ModePrefix links a source word to every target word sharing its
	// first PrefixLength characters; non-alphabetic source tokens fall
	// back to ModeIdentity behavior.
	ModePrefix
)

// Option configures a resolved config via With* constructors.
type Option func(*config)

type config struct {
	mode         Mode
	maxFrequency int
	minLength    int
	prefixLength int
}

// WithMode selects the cognate-detection strategy.
func WithMode(m Mode) Option { return func(c *config) { c.mode = m } }

// WithMaxFrequency caps the occurrence frequency (on both the source and
// target side) a word may have and still be considered a cognate
// candidate. Default 25, per spec.md §6.
func WithMaxFrequency(n int) Option { return func(c *config) { c.maxFrequency = n } }

// WithMinLength sets the minimum character length an alphabetic token
// must have to be a cognate candidate (non-alphabetic tokens are exempt).
// Default 4.
func WithMinLength(n int) Option { return func(c *config) { c.minLength = n } }

// WithPrefixLength sets the prefix length L used by ModePrefix. Default 4,
// per spec.md §6.
func WithPrefixLength(n int) Option { return func(c *config) { c.prefixLength = n } }

// defaultConfig mirrors spec.md §6's defaults: prefix length 4, maximum
// cognate frequency 25.
func defaultConfig() config {
	return config{
		mode:         ModePrefix,
		maxFrequency: 25,
		minLength:    4,
		prefixLength: 4,
	}
}

// newConfig resolves opts against defaultConfig and validates the result.
//
// Errors:
//   - ErrUnknownMode, ErrInvalidMaxFrequency, ErrInvalidMinLength,
//     ErrInvalidPrefixLength.
func newConfig(opts ...Option) (config, error) {
	c := defaultConfig()
	for _, opt := range opts {
		opt(&c)
	}
	if c.mode != ModeNone && c.mode != ModeIdentity && c.mode != ModePrefix {
		return config{}, fmt.Errorf("%s: %w", opNewConfig, ErrUnknownMode)
	}
	if c.maxFrequency <= 0 {
		return config{}, fmt.Errorf("%s: %w", opNewConfig, ErrInvalidMaxFrequency)
	}
	if c.minLength < 0 {
		return config{}, fmt.Errorf("%s: %w", opNewConfig, ErrInvalidMinLength)
	}
	if c.prefixLength <= 0 {
		return config{}, fmt.Errorf("%s: %w", opNewConfig, ErrInvalidPrefixLength)
	}
	return c, nil
}
