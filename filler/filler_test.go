package filler_test

import (
	"testing"

	"github.com/corvidnlp/yasa/filler"
	"github.com/corvidnlp/yasa/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildText(t *testing.T, sentences [][]string) *text.Text {
	t.Helper()
	tx := text.NewText()
	for i, words := range sentences {
		for _, w := range words {
			tx.AddWord(w)
		}
		require.NoError(t, tx.EndSentence(string(rune('a'+i))))
	}
	tx.EndParagraph()
	tx.EndDivision()
	return tx
}

func TestBeamFill_ContainsCorners(t *testing.T) {
	src := buildText(t, [][]string{{"one"}, {"two"}, {"three"}})
	tgt := buildText(t, [][]string{{"un"}, {"deux"}, {"trois"}})

	space, err := filler.BeamFill(src, tgt, filler.WithBeamRadius(1))
	require.NoError(t, err)

	assert.True(t, space.IsPossibility(-1, -1))
	assert.True(t, space.IsPossibility(2, 2))
}

func TestBeamFill_DiagonalWithinRadius(t *testing.T) {
	src := buildText(t, [][]string{{"one"}, {"two"}, {"three"}, {"four"}})
	tgt := buildText(t, [][]string{{"un"}, {"deux"}, {"trois"}, {"quatre"}})

	space, err := filler.BeamFill(src, tgt, filler.WithBeamRadius(1))
	require.NoError(t, err)

	// The diagonal cell (1,1) must be in-space; far off-diagonal cells
	// outside the beam must not be.
	assert.True(t, space.IsPossibility(1, 1))
	assert.False(t, space.IsPossibility(-1, 2))
}

func TestCognateFill_WithCognateLinksContainsCorners(t *testing.T) {
	src := buildText(t, [][]string{{"alpha", "x"}, {"y", "z"}, {"beta", "w"}})
	tgt := buildText(t, [][]string{{"q"}, {"alpha", "r"}, {"beta", "s"}})

	// Link "alpha" and "beta" as cross-text cognates.
	srcAlpha, ok := src.Dictionary().Lookup("ALPHA")
	require.True(t, ok)
	tgtAlpha, ok := tgt.Dictionary().Lookup("ALPHA")
	require.True(t, ok)
	srcAlpha.AddSynonym(tgtAlpha)

	srcBeta, ok := src.Dictionary().Lookup("BETA")
	require.True(t, ok)
	tgtBeta, ok := tgt.Dictionary().Lookup("BETA")
	require.True(t, ok)
	srcBeta.AddSynonym(tgtBeta)

	space, err := filler.CognateFill(src, tgt, filler.WithBeamRadius(1))
	require.NoError(t, err)

	assert.True(t, space.IsPossibility(-1, -1))
	assert.True(t, space.IsPossibility(2, 2))
}

func TestCognateFill_EmptyTextErrors(t *testing.T) {
	src := text.NewText()
	tgt := buildText(t, [][]string{{"un"}})

	_, err := filler.CognateFill(src, tgt)
	require.Error(t, err)
	assert.ErrorIs(t, err, filler.ErrEmptyText)
}

func TestNewConfig_InvalidOptionsError(t *testing.T) {
	src := buildText(t, [][]string{{"one"}})
	tgt := buildText(t, [][]string{{"un"}})

	_, err := filler.BeamFill(src, tgt, filler.WithBeamRadius(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, filler.ErrInvalidBeamRadius)

	_, err = filler.BeamFill(src, tgt, filler.WithReturnCount(-1))
	require.Error(t, err)
	assert.ErrorIs(t, err, filler.ErrInvalidReturnCount)
}
