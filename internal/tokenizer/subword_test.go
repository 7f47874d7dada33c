package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seg-ml/seg/internal/bpe"
)

func trainedSubword(t *testing.T) *Subword {
	t.Helper()
	sw, err := TrainSubword(map[string]int{
		"fast_":   4,
		"faster_": 3,
		"tall_":   5,
		"taller_": 4,
	}, 10)
	require.NoError(t, err)
	return sw
}

func TestSubword_EncodeDecode(t *testing.T) {
	sw := trainedSubword(t)

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "training words", text: "tall fast", want: "tall fast"},
		{name: "unseen word", text: "tallest", want: "tallest"},
		{name: "single word", text: "faster", want: "faster"},
		{name: "empty", text: "", want: ""},
		{name: "extra whitespace", text: "  tall\tfast ", want: "tall fast"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := sw.Encode(tt.text)
			require.NoError(t, err)

			text, err := sw.Decode(ids)
			require.NoError(t, err)
			assert.Equal(t, tt.want, text)
		})
	}
}

func TestSubword_EncodeUsesLearnedSubwords(t *testing.T) {
	sw := trainedSubword(t)

	ids, err := sw.Encode("tall fast")
	require.NoError(t, err)

	// Whole words collapsed to single learned symbols.
	require.Len(t, ids, 2)
	assert.Equal(t, "tall_", sw.Vocab().Symbol(ids[0]))
	assert.Equal(t, "fast_", sw.Vocab().Symbol(ids[1]))
}

func TestSubword_EncodeUnknownCharacter(t *testing.T) {
	sw := trainedSubword(t)

	ids, err := sw.Encode("x9z")
	require.NoError(t, err)

	// "x" matches, then the digit sinks the rest of the token.
	require.Len(t, ids, 2)
	assert.Equal(t, "x", sw.Vocab().Symbol(ids[0]))
	assert.Equal(t, sw.UnkToken(), ids[1])
}

func TestSubword_DecodeInvalidID(t *testing.T) {
	sw := trainedSubword(t)

	text, err := sw.Decode([]int32{int32(sw.VocabSize()) + 5})
	require.NoError(t, err)
	assert.Equal(t, "�", text)
}

func TestSubword_SpecialTokens(t *testing.T) {
	sw := trainedSubword(t)

	unk, ok := sw.Vocab().ID(bpe.Unknown)
	require.True(t, ok)

	assert.Equal(t, unk, sw.UnkToken())
	assert.True(t, sw.IsSpecialToken(unk))
	assert.False(t, sw.IsSpecialToken(0))

	assert.Equal(t, int32(-1), sw.BosToken())
	assert.Equal(t, int32(-1), sw.EosToken())
	assert.Equal(t, int32(-1), sw.PadToken())
}

func TestSubword_VocabSize(t *testing.T) {
	sw := trainedSubword(t)

	// 26 letters + 2 sentinels + 10 merges.
	assert.Equal(t, 38, sw.VocabSize())
}

func TestSubword_ImplementsTokenizer(t *testing.T) {
	var _ Tokenizer = trainedSubword(t)
}
