// Package bpe implements byte pair encoding: vocabulary construction from
// a word frequency corpus, iterative greedy pair merging, and longest-match
// segmentation of unseen tokens.
//
// The algorithm operates on three structures:
//   - FreqTable: a word's current symbol segmentation (space-delimited)
//     mapped to its corpus frequency
//   - Vocabulary: the ordered set of known symbols, growing by one merged
//     symbol per training iteration
//   - an ephemeral pair frequency map, recomputed each iteration
//
// Training repeatedly merges the most frequent adjacent symbol pair:
//
//	result, err := bpe.Train(map[string]int{"fast": 4, "tall": 5}, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	subwords := bpe.Segment("tallest_", result.Vocab)
//
// Pairs are only ever counted within a single word; the end-of-word marker
// appended to every training word keeps merges from leaking across word
// boundaries and makes segmentations exactly reconstructable.
package bpe
