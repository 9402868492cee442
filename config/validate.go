// SPDX-License-Identifier: MIT
// validate.go — Options.Validate and the input/output format selectors,
// spec.md §7's configuration-error kind.
package config

import (
	"fmt"

	"github.com/corvidnlp/yasa/parse"
)

var outputFormats = map[string]bool{
	"linked-id":        true,
	"linked-id-header": true,
	"bead":             true,
	"score":            true,
	"human":            true,
}

// ParseFormat resolves InputFormat into a parse.Format.
//
// Errors:
//   - ErrUnknownInputFormat.
func (o Options) ParseFormat() (parse.Format, error) {
	switch o.InputFormat {
	case "line":
		return parse.FormatOneSentPerLine, nil
	case "rali":
		return parse.FormatRALI, nil
	case "arcade":
		return parse.FormatARCADE, nil
	case "cesana":
		return parse.FormatCESANA, nil
	default:
		return 0, fmt.Errorf("config: ParseFormat: %q: %w", o.InputFormat, ErrUnknownInputFormat)
	}
}

// Validate checks every selector and required field, without touching
// the filesystem beyond the lexicon paths' resolution (left to the
// caller that actually opens them). It does not allocate a Scorer or
// cognate/filler config: the deeper numeric validation (e.g. non-positive
// variance) happens when the caller constructs those subsystems from the
// CognateOptions/ScoreOptions/FillerOptions results, in score.NewScorer,
// cognate.Find and the filler constructors.
//
// Errors:
//   - ErrMissingPath, ErrUnknownInputFormat, ErrUnknownOutputFormat,
//     ErrUnknownCognateMode, ErrUnknownScoreFunction, ErrUnknownFullFelipe,
//     ErrMalformedCategory.
func (o Options) Validate() error {
	if o.SourcePath == "" || o.TargetPath == "" {
		return ErrMissingPath
	}
	if _, err := o.ParseFormat(); err != nil {
		return err
	}
	if !outputFormats[o.OutputFormat] {
		return fmt.Errorf("config: Validate: %q: %w", o.OutputFormat, ErrUnknownOutputFormat)
	}
	if _, err := o.CognateOptions(); err != nil {
		return err
	}
	if _, err := o.ScoreOptions(); err != nil {
		return err
	}
	return nil
}
