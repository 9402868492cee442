// SPDX-License-Identifier: MIT
// root.go — the cobra command wiring the whole pipeline of spec.md §4:
// parse, cognate detection, search-space filling, scoring, alignment,
// and output formatting.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/corvidnlp/yasa/align"
	"github.com/corvidnlp/yasa/cognate"
	"github.com/corvidnlp/yasa/config"
	"github.com/corvidnlp/yasa/filler"
	"github.com/corvidnlp/yasa/format"
	"github.com/corvidnlp/yasa/parse"
	"github.com/corvidnlp/yasa/score"
	"github.com/corvidnlp/yasa/searchspace"
	"github.com/corvidnlp/yasa/text"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	opts := config.Default()

	cmd := &cobra.Command{
		Use:           "yasa",
		Short:         "align two texts sentence-by-sentence",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.OutOrStdout(), opts)
		},
	}

	config.BindFlags(cmd.Flags(), &opts)
	return cmd
}

func warn(format string, a ...interface{}) {
	c := color.New(color.FgGreen)
	c.Fprintf(os.Stderr, format, a...)
}

func fatal(err error) error {
	c := color.New(color.FgRed)
	c.Fprintf(os.Stderr, "yasa: %v\n", err)
	return err
}

func run(stdout io.Writer, opts config.Options) error {
	if err := opts.Validate(); err != nil {
		return fatal(err)
	}

	src, tgt, err := loadTexts(opts)
	if err != nil {
		return fatal(err)
	}

	space, err := buildSearchSpace(src, tgt, opts)
	if err != nil {
		return fatal(err)
	}
	if !opts.CheckResources(space.Len()) {
		warn("yasa: warning: estimated alignment table may exceed available memory\n")
	}

	scoreOpts, err := opts.ScoreOptions()
	if err != nil {
		return fatal(err)
	}
	scorer, err := score.NewScorer(scoreOpts...)
	if err != nil {
		return fatal(err)
	}

	result, err := align.Align(src, tgt, space, scorer)
	if err != nil {
		return fatal(err)
	}
	if result.Empty {
		warn("yasa: warning: no alignment path found\n")
		return nil
	}

	if err := writeResult(stdout, src, tgt, result, opts); err != nil {
		return fatal(err)
	}
	return nil
}

func loadTexts(opts config.Options) (src, tgt *text.Text, err error) {
	inputFormat, err := opts.ParseFormat()
	if err != nil {
		return nil, nil, err
	}

	src, err = parseFile(opts.SourcePath, inputFormat, opts.Compressed)
	if err != nil {
		return nil, nil, fmt.Errorf("source %s: %w", opts.SourcePath, err)
	}
	tgt, err = parseFile(opts.TargetPath, inputFormat, opts.Compressed)
	if err != nil {
		return nil, nil, fmt.Errorf("target %s: %w", opts.TargetPath, err)
	}

	for _, lexiconPath := range opts.LexiconPaths {
		if err := loadLexicon(lexiconPath, src, tgt); err != nil {
			return nil, nil, err
		}
	}

	return src, tgt, nil
}

func parseFile(path string, inputFormat parse.Format, compressed bool) (*text.Text, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, err := parse.DecompressingReader(f, compressed)
	if err != nil {
		return nil, err
	}
	return parse.Parse(r, inputFormat)
}

func loadLexicon(path string, src, tgt *text.Text) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, config.ErrUnreadableLexicon)
	}
	defer f.Close()
	return cognate.LoadLexicon(f, src, tgt)
}

func buildSearchSpace(src, tgt *text.Text, opts config.Options) (*searchspace.SetSpace, error) {
	fillerOpts := opts.FillerOptions()

	if opts.CognateMode == "none" {
		return filler.BeamFill(src, tgt, fillerOpts...)
	}

	cognateOpts, err := opts.CognateOptions()
	if err != nil {
		return nil, err
	}
	if err := cognate.Find(src, tgt, cognateOpts...); err != nil {
		return nil, err
	}
	return filler.CognateFill(src, tgt, fillerOpts...)
}

func writeResult(w io.Writer, src, tgt *text.Text, result align.Result, opts config.Options) error {
	sourceName := opts.SourceName
	if sourceName == "" {
		sourceName = opts.SourcePath
	}
	targetName := opts.TargetName
	if targetName == "" {
		targetName = opts.TargetPath
	}

	switch opts.OutputFormat {
	case "linked-id":
		return format.LinkedID(w, src, tgt, result.Beads)
	case "linked-id-header":
		return format.LinkedIDWithHeader(w, src, tgt, result.Beads, sourceName, targetName)
	case "bead":
		return format.Bead(w, result.Beads)
	case "score":
		return format.Score(w, sourceName, targetName, result.TotalScore)
	case "human":
		return format.HumanReadable(w, src, tgt, result.Beads)
	default:
		return fmt.Errorf("%s: %w", opts.OutputFormat, config.ErrUnknownOutputFormat)
	}
}
