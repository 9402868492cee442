package config_test

import (
	"testing"

	"github.com/corvidnlp/yasa/config"
	"github.com/corvidnlp/yasa/score"
	"github.com/corvidnlp/yasa/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validOptions() config.Options {
	o := config.Default()
	o.SourcePath = "src.txt"
	o.TargetPath = "tgt.txt"
	return o
}

func TestDefault_IsValidOnceGivenPaths(t *testing.T) {
	o := validOptions()
	assert.NoError(t, o.Validate())
}

func TestDefault_MissingPathErrors(t *testing.T) {
	o := config.Default()
	err := o.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMissingPath)
}

func TestValidate_UnknownInputFormat(t *testing.T) {
	o := validOptions()
	o.InputFormat = "xml"
	err := o.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnknownInputFormat)
}

func TestValidate_UnknownOutputFormat(t *testing.T) {
	o := validOptions()
	o.OutputFormat = "yaml"
	err := o.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnknownOutputFormat)
}

func TestValidate_UnknownCognateMode(t *testing.T) {
	o := validOptions()
	o.CognateMode = "fuzzy"
	err := o.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnknownCognateMode)
}

func TestValidate_UnknownScoreFunction(t *testing.T) {
	o := validOptions()
	o.ScoreFunction = "bogus"
	err := o.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnknownScoreFunction)
}

func TestValidate_MalformedCategory(t *testing.T) {
	o := validOptions()
	o.Categories = []string{"not-a-triple"}
	err := o.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrMalformedCategory)
}

func TestScoreOptions_LengthOnlyZeroesCognateWeight(t *testing.T) {
	o := validOptions()
	o.ScoreFunction = "length-only"
	opts, err := o.ScoreOptions()
	require.NoError(t, err)
	assert.NotEmpty(t, opts)

	// With a zero cognate weight, linking a cognate pair leaves the bead
	// cost unchanged.
	scorer, err := score.NewScorer(opts...)
	require.NoError(t, err)
	src, tgt := text.NewText(), text.NewText()
	src.AddWord("nation")
	require.NoError(t, src.EndSentence("a"))
	tgt.AddWord("nation")
	require.NoError(t, tgt.EndSentence("a"))
	withoutLink, err := scorer.BeadCost(src, tgt, 1, 1, 1, 1)
	require.NoError(t, err)
	srcWord, _ := src.Dictionary().Lookup("NATION")
	tgtWord, _ := tgt.Dictionary().Lookup("NATION")
	srcWord.AddSynonym(tgtWord)
	withLink, err := scorer.BeadCost(src, tgt, 1, 1, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, withoutLink, withLink)
}

func TestCognateOptions_UnknownMode(t *testing.T) {
	o := validOptions()
	o.CognateMode = "fuzzy"
	_, err := o.CognateOptions()
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrUnknownCognateMode)
}

func TestParseFormat_ResolvesEachSelector(t *testing.T) {
	o := validOptions()
	for _, name := range []string{"line", "rali", "arcade", "cesana"} {
		o.InputFormat = name
		_, err := o.ParseFormat()
		assert.NoError(t, err, name)
	}
}

func TestCheckResources_SmallCellCountFitsMemory(t *testing.T) {
	o := validOptions()
	assert.True(t, o.CheckResources(10_000))
}

func TestCheckResources_SparseSpaceOverLargeTextsFits(t *testing.T) {
	// A book-length pair of 20k-sentence texts has a dense |S|x|T| grid
	// of 4*10^8 cells, but a real sparse search space over them holds
	// only a small multiple of max(|S|,|T|) cells -- the scalability
	// property this check exists to protect.
	o := validOptions()
	assert.True(t, o.CheckResources(20_000*60))
}
