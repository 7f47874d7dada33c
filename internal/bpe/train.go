package bpe

import (
	"errors"
	"sort"
	"strings"
	"sync"

	"github.com/seg-ml/seg/internal/parallel"
)

// ErrEmptyPairSet is returned by MaxFreqPair when no adjacent symbol pair
// exists anywhere in the table: every word has collapsed to a single
// symbol, or the table is empty. Train stops merging when it sees this.
var ErrEmptyPairSet = errors.New("bpe: no adjacent symbol pairs left to merge")

// Pair is an ordered pair of adjacent symbols within one word.
type Pair struct {
	First  string
	Second string
}

// Merged returns the symbol produced by merging the pair.
func (p Pair) Merged() string {
	return p.First + p.Second
}

// TrainResult holds the outcome of a training run.
type TrainResult struct {
	Vocab  *Vocabulary // initial alphabet + one symbol per applied merge
	Table  FreqTable   // final segmentation of the training words
	Merges []Pair      // applied merges, in order
}

// Train builds the initial frequency table and vocabulary from words, then
// applies up to numMerges merge iterations, each merging the most frequent
// adjacent symbol pair. Training stops early, without error, once no pair
// remains to merge.
func Train(words map[string]int, numMerges int) (*TrainResult, error) {
	table, err := NewFreqTable(words)
	if err != nil {
		return nil, err
	}

	vocab := NewVocabulary()
	merges := make([]Pair, 0, numMerges)
	for i := 0; i < numMerges; i++ {
		pair, err := MaxFreqPair(table)
		if errors.Is(err, ErrEmptyPairSet) {
			break
		}
		if err != nil {
			return nil, err
		}
		table = ApplyMerge(pair, table)
		vocab.add(pair.Merged())
		merges = append(merges, pair)
	}

	return &TrainResult{Vocab: vocab, Table: table, Merges: merges}, nil
}

// MaxFreqPair returns the adjacent symbol pair with the greatest summed
// frequency across all word keys. Pairs are only counted within a single
// word; nothing spans word boundaries.
//
// Frequency ties are broken by scan order: word keys are visited in sorted
// order, pairs left to right within each key, and the first pair to attain
// the maximum wins. The rule is deterministic regardless of map iteration
// order, and on the classic fast/faster/tall/taller corpus it reproduces
// the merge sequence BPE write-ups usually show.
//
// Returns ErrEmptyPairSet if no key contains an adjacent pair.
func MaxFreqPair(table FreqTable) (Pair, error) {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	counts := pairCounts(keys, table)
	if len(counts) == 0 {
		return Pair{}, ErrEmptyPairSet
	}

	var best Pair
	bestCount := 0
	for _, key := range keys {
		symbols := strings.Split(key, delimiter)
		for i := 0; i+1 < len(symbols); i++ {
			pair := Pair{symbols[i], symbols[i+1]}
			if n := counts[pair]; n > bestCount {
				best = pair
				bestCount = n
			}
		}
	}
	return best, nil
}

// pairCounts accumulates adjacent-pair frequencies across the given word
// keys. The per-word scans are independent, so large tables are counted in
// parallel shards and reduced at the end.
func pairCounts(keys []string, table FreqTable) map[Pair]int {
	counts := make(map[Pair]int)

	var mu sync.Mutex
	parallel.ForChunks(len(keys), func(start, end int) {
		local := make(map[Pair]int)
		for _, key := range keys[start:end] {
			symbols := strings.Split(key, delimiter)
			freq := table[key]
			for i := 0; i+1 < len(symbols); i++ {
				local[Pair{symbols[i], symbols[i+1]}] += freq
			}
		}
		mu.Lock()
		for pair, n := range local {
			counts[pair] += n
		}
		mu.Unlock()
	}, parallel.DefaultConfig())

	return counts
}

// ApplyMerge returns a new table in which every adjacent occurrence of the
// pair, scanned left to right within each word, is replaced by the merged
// symbol. Counts are carried over unchanged; if two distinct keys become
// identical after the merge their counts sum. Total frequency mass is
// preserved.
func ApplyMerge(pair Pair, table FreqTable) FreqTable {
	merged := pair.Merged()
	out := make(FreqTable, len(table))
	for key, freq := range table {
		symbols := strings.Split(key, delimiter)
		next := make([]string, 0, len(symbols))
		for i := 0; i < len(symbols); {
			if i+1 < len(symbols) && symbols[i] == pair.First && symbols[i+1] == pair.Second {
				next = append(next, merged)
				i += 2
			} else {
				next = append(next, symbols[i])
				i++
			}
		}
		out[strings.Join(next, delimiter)] += freq
	}
	return out
}
