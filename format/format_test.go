package format_test

import (
	"strings"
	"testing"

	"github.com/corvidnlp/yasa/align"
	"github.com/corvidnlp/yasa/format"
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
	tx.Finish()
	return tx
}

func sampleBeads() []align.Bead {
	return []align.Bead{
		{SourceLen: 1, TargetLen: 1, Score: 1.5},
		{SourceLen: 1, TargetLen: 1, Score: 3.0},
	}
}

func TestLinkedID(t *testing.T) {
	src := buildText(t, [][]string{{"one"}, {"two"}})
	tgt := buildText(t, [][]string{{"un"}, {"deux"}})

	var buf strings.Builder
	require.NoError(t, format.LinkedID(&buf, src, tgt, sampleBeads()))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, `<link xtargets="a;a" certainty="1.5"></link>`, lines[0])
	assert.Equal(t, `<link xtargets="b;b" certainty="1.5"></link>`, lines[1])
}

func TestLinkedIDWithHeader(t *testing.T) {
	src := buildText(t, [][]string{{"one"}})
	tgt := buildText(t, [][]string{{"un"}})

	var buf strings.Builder
	beads := []align.Bead{{SourceLen: 1, TargetLen: 1, Score: 1.0}}
	require.NoError(t, format.LinkedIDWithHeader(&buf, src, tgt, beads, "s.txt", "t.txt"))

	out := buf.String()
	assert.Contains(t, out, "<!DOCTYPE CESALIGN")
	assert.Contains(t, out, `fromDoc="s.txt"`)
	assert.Contains(t, out, `toDoc="t.txt"`)
	assert.Contains(t, out, "<link xtargets=")
	assert.Contains(t, out, "</cesAlign>")
}

func TestLinkedID_ExhaustedSentencesErrors(t *testing.T) {
	src := buildText(t, [][]string{{"one"}})
	tgt := buildText(t, [][]string{{"un"}})

	var buf strings.Builder
	beads := []align.Bead{{SourceLen: 2, TargetLen: 1, Score: 1.0}}
	err := format.LinkedID(&buf, src, tgt, beads)
	require.Error(t, err)
	assert.ErrorIs(t, err, format.ErrSentenceIDExhausted)
}

func TestBead(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, format.Bead(&buf, sampleBeads()))
	assert.Equal(t, "1-1 1.5\n1-1 3\n", buf.String())
}

func TestScore(t *testing.T) {
	var buf strings.Builder
	require.NoError(t, format.Score(&buf, "s.txt", "t.txt", 4.2))
	assert.Equal(t, "s.txt t.txt 4.2\n", buf.String())
}

func TestHumanReadable(t *testing.T) {
	src := buildText(t, [][]string{{"one", "fish"}})
	tgt := buildText(t, [][]string{{"un", "poisson"}})

	var buf strings.Builder
	beads := []align.Bead{{SourceLen: 1, TargetLen: 1, Score: 1.0}}
	require.NoError(t, format.HumanReadable(&buf, src, tgt, beads))

	out := buf.String()
	assert.Contains(t, out, "one fish")
	assert.Contains(t, out, "un poisson")
	assert.Contains(t, out, "1(a):")
}
