package cognate_test

import (
	"strings"
	"testing"

	"github.com/corvidnlp/yasa/cognate"
	"github.com/corvidnlp/yasa/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildText(t *testing.T, words ...string) *text.Text {
	t.Helper()
	tx := text.NewText()
	for _, w := range words {
		tx.AddWord(w)
	}
	require.NoError(t, tx.EndSentence("s1"))
	tx.EndParagraph()
	tx.EndDivision()
	return tx
}

func TestFind_IdentityMode(t *testing.T) {
	src := buildText(t, "nation", "cat")
	tgt := buildText(t, "nation", "dog")

	require.NoError(t, cognate.Find(src, tgt, cognate.WithMode(cognate.ModeIdentity)))

	w, ok := src.Dictionary().Lookup("NATION")
	require.True(t, ok)
	require.Len(t, w.Synonyms, 1)
	assert.Equal(t, "NATION", w.Synonyms[0].Canonical)

	catWord, ok := src.Dictionary().Lookup("CAT")
	require.True(t, ok)
	assert.Empty(t, catWord.Synonyms)
}

func TestFind_PrefixMode(t *testing.T) {
	src := buildText(t, "nationality")
	tgt := buildText(t, "national", "nations")

	require.NoError(t, cognate.Find(src, tgt, cognate.WithMode(cognate.ModePrefix), cognate.WithPrefixLength(4)))

	w, ok := src.Dictionary().Lookup("NATIONALITY")
	require.True(t, ok)
	assert.Len(t, w.Synonyms, 2)
}

func TestFind_PrefixMode_WordShorterThanPrefixSkipped(t *testing.T) {
	src := buildText(t, "cat")
	tgt := buildText(t, "cats")

	require.NoError(t, cognate.Find(src, tgt, cognate.WithMode(cognate.ModePrefix), cognate.WithPrefixLength(4)))

	w, ok := src.Dictionary().Lookup("CAT")
	require.True(t, ok)
	assert.Empty(t, w.Synonyms)
}

func TestFind_PrefixMode_NonAlphabeticFallsBackToIdentity(t *testing.T) {
	src := buildText(t, "1999")
	tgt := buildText(t, "1999", "1998")

	require.NoError(t, cognate.Find(src, tgt, cognate.WithMode(cognate.ModePrefix), cognate.WithPrefixLength(4)))

	w, ok := src.Dictionary().Lookup("1999")
	require.True(t, ok)
	require.Len(t, w.Synonyms, 1)
	assert.Equal(t, "1999", w.Synonyms[0].Canonical)
}

func TestFind_ModeNoneIsNoop(t *testing.T) {
	src := buildText(t, "nation")
	tgt := buildText(t, "nation")

	require.NoError(t, cognate.Find(src, tgt, cognate.WithMode(cognate.ModeNone)))

	w, ok := src.Dictionary().Lookup("NATION")
	require.True(t, ok)
	assert.Empty(t, w.Synonyms)
}

func TestFind_ValidatorRejectsHighFrequencyAndShortWords(t *testing.T) {
	tx := text.NewText()
	for i := 0; i < 30; i++ {
		tx.AddWord("the")
	}
	tx.AddWord("it")
	require.NoError(t, tx.EndSentence("s1"))
	tx.EndParagraph()
	tx.EndDivision()

	tgt := buildText(t, "the", "it")

	require.NoError(t, cognate.Find(tx, tgt, cognate.WithMode(cognate.ModeIdentity), cognate.WithMaxFrequency(25), cognate.WithMinLength(3)))

	theWord, ok := tx.Dictionary().Lookup("THE")
	require.True(t, ok)
	assert.Empty(t, theWord.Synonyms, "frequency above maxFrequency must be rejected")

	itWord, ok := tx.Dictionary().Lookup("IT")
	require.True(t, ok)
	assert.Empty(t, itWord.Synonyms, "below minLength must be rejected")
}

func TestFind_InvalidOptionsError(t *testing.T) {
	src := buildText(t, "nation")
	tgt := buildText(t, "nation")

	err := cognate.Find(src, tgt, cognate.WithPrefixLength(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, cognate.ErrInvalidPrefixLength)
}

func TestLoadLexicon_LinksExistingEntriesOnly(t *testing.T) {
	src := buildText(t, "chien", "inconnu")
	tgt := buildText(t, "dog", "cat")

	lex := "chien dog\nfantome ghost\nchien cat\n"
	require.NoError(t, cognate.LoadLexicon(strings.NewReader(lex), src, tgt))

	chien, ok := src.Dictionary().Lookup("CHIEN")
	require.True(t, ok)
	require.Len(t, chien.Synonyms, 2)

	inconnu, ok := src.Dictionary().Lookup("INCONNU")
	require.True(t, ok)
	assert.Empty(t, inconnu.Synonyms)
}

func TestLoadLexicon_SkipsMalformedLines(t *testing.T) {
	src := buildText(t, "dog")
	tgt := buildText(t, "chien")

	lex := "\ndog\ndog chien extra-ignored\n"
	require.NoError(t, cognate.LoadLexicon(strings.NewReader(lex), src, tgt))

	dog, ok := src.Dictionary().Lookup("DOG")
	require.True(t, ok)
	require.Len(t, dog.Synonyms, 1)
}
