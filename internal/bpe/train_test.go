package bpe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The classic fast/faster/tall/taller corpus. Counts chosen so that the
// merge sequence is fully determined by the documented tie-break.
func referenceCorpus() map[string]int {
	return map[string]int{
		"fast_":   4,
		"faster_": 3,
		"tall_":   5,
		"taller_": 4,
	}
}

func TestTrain_ReferenceMergeSequence(t *testing.T) {
	result, err := Train(referenceCorpus(), 10)
	require.NoError(t, err)

	want := []Pair{
		{"t", "a"},
		{"ta", "l"},
		{"tal", "l"},
		{"f", "a"},
		{"fa", "s"},
		{"fas", "t"},
		{"e", "r"},
		{"er", "_"},
		{"tall", "_"},
		{"fast", "_"},
	}
	assert.Equal(t, want, result.Merges)

	assert.Equal(t, FreqTable{
		"fast_":    4,
		"fast er_": 3,
		"tall_":    5,
		"tall er_": 4,
	}, result.Table)
}

func TestTrain_FrequencyConservation(t *testing.T) {
	corpus := referenceCorpus()

	initial, err := NewFreqTable(corpus)
	require.NoError(t, err)

	for _, merges := range []int{0, 1, 5, 10, 100} {
		result, err := Train(corpus, merges)
		require.NoError(t, err)
		assert.Equal(t, initial.Total(), result.Table.Total(),
			"frequency mass changed after %d merges", merges)
	}
}

func TestTrain_VocabularyMonotonicity(t *testing.T) {
	initialSize := NewVocabulary().Len()

	for _, merges := range []int{0, 1, 5, 10} {
		result, err := Train(referenceCorpus(), merges)
		require.NoError(t, err)
		assert.Equal(t, initialSize+merges, result.Vocab.Len())

		// No duplicates: every symbol resolves back to its own ID.
		for i, sym := range result.Vocab.Symbols() {
			id, ok := result.Vocab.ID(sym)
			require.True(t, ok)
			assert.Equal(t, int32(i), id)
		}
	}
}

func TestTrain_Deterministic(t *testing.T) {
	first, err := Train(referenceCorpus(), 10)
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again, err := Train(referenceCorpus(), 10)
		require.NoError(t, err)
		assert.Equal(t, first.Merges, again.Merges)
		assert.Equal(t, first.Vocab.Symbols(), again.Vocab.Symbols())
	}
}

func TestTrain_StopsWhenPairsExhausted(t *testing.T) {
	// Two short words collapse to single symbols after a few merges;
	// asking for far more merges stops early instead of failing.
	result, err := Train(map[string]int{"ab": 2, "cd": 1}, 100)
	require.NoError(t, err)

	assert.Less(t, len(result.Merges), 100)
	for key := range result.Table {
		assert.NotContains(t, key, delimiter, "key %q not fully collapsed", key)
	}
}

func TestTrain_InvalidCorpus(t *testing.T) {
	tests := []struct {
		name   string
		corpus map[string]int
	}{
		{name: "empty word", corpus: map[string]int{"": 1}},
		{name: "zero count", corpus: map[string]int{"fast": 0}},
		{name: "negative count", corpus: map[string]int{"fast": -2}},
		{name: "embedded delimiter", corpus: map[string]int{"fa st": 1}},
		{name: "interior end marker", corpus: map[string]int{"fa_st": 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Train(tt.corpus, 1)
			assert.Error(t, err)
		})
	}
}

func TestNewFreqTable_MarkerIdempotent(t *testing.T) {
	// "fast" and "fast_" describe the same word; the marker is appended
	// exactly once either way and the counts land on one key.
	table, err := NewFreqTable(map[string]int{"fast": 2, "fast_": 3})
	require.NoError(t, err)

	assert.Equal(t, FreqTable{"f a s t _": 5}, table)
}

func TestMaxFreqPair_Empty(t *testing.T) {
	tests := []struct {
		name  string
		table FreqTable
	}{
		{name: "empty table", table: FreqTable{}},
		{name: "all collapsed", table: FreqTable{"fast_": 4, "tall_": 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := MaxFreqPair(tt.table)
			assert.ErrorIs(t, err, ErrEmptyPairSet)
		})
	}
}

func TestMaxFreqPair_TieBreakScanOrder(t *testing.T) {
	// Ties go to the first pair encountered scanning keys in sorted
	// order, pairs left to right — not to the lexicographically smallest
	// pair.
	tests := []struct {
		name  string
		table FreqTable
		want  Pair
	}{
		{
			name:  "tie across keys",
			table: FreqTable{"b a": 1, "a b": 1},
			want:  Pair{"a", "b"}, // key "a b" sorts first
		},
		{
			name:  "tie within one key",
			table: FreqTable{"c a b": 1},
			want:  Pair{"c", "a"}, // leftmost pair wins over (a,b)
		},
		{
			name: "first iteration of the reference corpus",
			table: FreqTable{
				"f a s t _":     4,
				"f a s t e r _": 3,
				"t a l l _":     5,
				"t a l l e r _": 4,
			},
			// (t,a), (a,l) and (l,l) all tie at 9; (t,a) is seen first.
			// Lexicographic tie-breaking would pick (a,l) instead.
			want: Pair{"t", "a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair, err := MaxFreqPair(tt.table)
			require.NoError(t, err)
			assert.Equal(t, tt.want, pair)
		})
	}
}

func TestMaxFreqPair_CountsWithinWordsOnly(t *testing.T) {
	// "b a" would be the top pair if adjacency leaked across word
	// boundaries ("...a b" followed by "a b...").
	table := FreqTable{
		"a b":   3,
		"b a c": 1,
	}
	pair, err := MaxFreqPair(table)
	require.NoError(t, err)
	assert.Equal(t, Pair{"a", "b"}, pair)
}

func TestApplyMerge_CollidingKeysSum(t *testing.T) {
	table := FreqTable{
		"a b":   2,
		"ab":    3,
		"a b c": 1,
	}
	merged := ApplyMerge(Pair{"a", "b"}, table)

	assert.Equal(t, FreqTable{"ab": 5, "ab c": 1}, merged)
	assert.Equal(t, table.Total(), merged.Total())
}

func TestApplyMerge_LeftToRight(t *testing.T) {
	// Overlapping occurrences resolve left to right: "a a a" has two
	// overlapping (a,a) pairs but only the first merges.
	merged := ApplyMerge(Pair{"a", "a"}, FreqTable{"a a a": 1})
	assert.Equal(t, FreqTable{"aa a": 1}, merged)
}

func BenchmarkTrain(b *testing.B) {
	corpus := map[string]int{
		"fast_": 4, "faster_": 3, "fastest_": 2,
		"tall_": 5, "taller_": 4, "tallest_": 2,
		"small_": 3, "smaller_": 2, "smallest_": 1,
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Train(corpus, 20); err != nil {
			b.Fatal(err)
		}
	}
}
