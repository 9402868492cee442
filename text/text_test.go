package text_test

import (
	"testing"

	"github.com/corvidnlp/yasa/text"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildSimpleText(t *testing.T, sentences [][]string) *text.Text {
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

func TestText_BasicIngest(t *testing.T) {
	tx := buildSimpleText(t, [][]string{{"hello", "world"}, {"foo"}})
	assert.Equal(t, 3, tx.NumWords())
	assert.Equal(t, 2, tx.NumSentences())

	first, last, err := tx.SentenceRange(0)
	require.NoError(t, err)
	assert.Equal(t, 0, first)
	assert.Equal(t, 2, last)

	n, err := tx.SentenceLen(0)
	require.NoError(t, err)
	assert.Equal(t, len("hello")+len("world"), n)

	assert.Equal(t, "a", tx.SentenceID(0))
	assert.Equal(t, "b", tx.SentenceID(1))
}

func TestText_CanonicalizationStripsDiacriticsAndUppercases(t *testing.T) {
	tx := text.NewText()
	tx.AddWord("café")
	canon, err := tx.WordCanonical(0)
	require.NoError(t, err)
	assert.Equal(t, "CAFE", canon)
}

func TestText_DictionaryCountsOccurrences(t *testing.T) {
	tx := buildSimpleText(t, [][]string{{"the", "cat"}, {"the", "dog"}})
	w, ok := tx.Dictionary().Lookup("THE")
	require.True(t, ok)
	assert.Equal(t, 2, w.Count)
	assert.Equal(t, 4, tx.Dictionary().Len())
}

func TestText_EndSentenceWithoutWordsErrors(t *testing.T) {
	tx := text.NewText()
	err := tx.EndSentence("x")
	assert.ErrorIs(t, err, text.ErrNoOpenSentence)
}

func TestText_OutOfRangeErrors(t *testing.T) {
	tx := buildSimpleText(t, [][]string{{"a"}})
	_, _, err := tx.SentenceRange(5)
	assert.ErrorIs(t, err, text.ErrSentenceIndexOutOfRange)

	_, err = tx.WordRaw(5)
	assert.ErrorIs(t, err, text.ErrWordIndexOutOfRange)
}

func TestText_RangeLenSumsAcrossSentences(t *testing.T) {
	tx := buildSimpleText(t, [][]string{{"aa"}, {"bbb"}, {"c"}})
	assert.Equal(t, 2+3+1, tx.RangeLen(0, 3))
	assert.Equal(t, 3, tx.RangeLen(1, 2))
}

func TestText_SentenceContainingLocatesWord(t *testing.T) {
	tx := buildSimpleText(t, [][]string{{"aa"}, {"bbb"}, {"c"}})

	idx, err := tx.SentenceContaining(0)
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	idx, err = tx.SentenceContaining(1)
	require.NoError(t, err)
	assert.Equal(t, 1, idx)

	idx, err = tx.SentenceContaining(2)
	require.NoError(t, err)
	assert.Equal(t, 2, idx)

	_, err = tx.SentenceContaining(5)
	assert.ErrorIs(t, err, text.ErrWordIndexOutOfRange)
}

func TestWordInfo_AddSynonymIsIdempotent(t *testing.T) {
	src := text.NewDictionary().GetOrCreate("CHAT")
	tgt := text.NewDictionary().GetOrCreate("CAT")
	src.AddSynonym(tgt)
	src.AddSynonym(tgt)
	assert.Len(t, src.Synonyms, 1)
}
