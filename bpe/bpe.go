// Package bpe exposes the byte pair encoding trainer and segmenter.
//
// This package wraps the internal implementation and provides a clean
// public API for vocabulary training and subword segmentation.
//
// Example usage:
//
//	import "github.com/seg-ml/seg/bpe"
//
//	result, err := bpe.Train(map[string]int{"fast": 4, "tall": 5}, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	subwords := bpe.Segment("tallest_", result.Vocab)
package bpe

import (
	"github.com/seg-ml/seg/internal/bpe"
)

// Sentinel symbols present in every vocabulary.
const (
	// EndOfWord marks the boundary of a training word.
	EndOfWord = bpe.EndOfWord

	// Unknown is emitted when input cannot be matched against any known
	// symbol.
	Unknown = bpe.Unknown
)

// ErrEmptyPairSet is returned when a merge is requested but no adjacent
// symbol pair exists anywhere in the table.
var ErrEmptyPairSet = bpe.ErrEmptyPairSet

// Vocabulary is the ordered sequence of known symbols.
type Vocabulary = bpe.Vocabulary

// FreqTable maps a word's current symbol segmentation to its frequency.
type FreqTable = bpe.FreqTable

// Pair is an ordered pair of adjacent symbols within one word.
type Pair = bpe.Pair

// TrainResult holds the outcome of a training run.
type TrainResult = bpe.TrainResult

// NewVocabulary returns the initial vocabulary: the lowercase alphabet
// plus the end-of-word and unknown sentinels.
func NewVocabulary() *Vocabulary {
	return bpe.NewVocabulary()
}

// FromSymbols reconstructs a vocabulary from an ordered symbol list.
func FromSymbols(symbols []string) (*Vocabulary, error) {
	return bpe.FromSymbols(symbols)
}

// NewFreqTable builds the initial frequency table from raw words.
func NewFreqTable(words map[string]int) (FreqTable, error) {
	return bpe.NewFreqTable(words)
}

// Train applies up to numMerges merge iterations to a word frequency
// corpus, stopping early once no pair remains to merge.
func Train(words map[string]int, numMerges int) (*TrainResult, error) {
	return bpe.Train(words, numMerges)
}

// MaxFreqPair returns the most frequent adjacent symbol pair in the
// table, or ErrEmptyPairSet if none exists.
func MaxFreqPair(table FreqTable) (Pair, error) {
	return bpe.MaxFreqPair(table)
}

// ApplyMerge replaces every adjacent occurrence of the pair with its
// merged symbol, returning a new table.
func ApplyMerge(pair Pair, table FreqTable) FreqTable {
	return bpe.ApplyMerge(pair, table)
}

// Segment splits a token into the longest known subwords, greedily,
// left to right.
func Segment(token string, vocab *Vocabulary) []string {
	return bpe.Segment(token, vocab)
}

// SegmentAll segments a batch of independent tokens, in parallel for
// large batches.
func SegmentAll(tokens []string, vocab *Vocabulary) [][]string {
	return bpe.SegmentAll(tokens, vocab)
}
