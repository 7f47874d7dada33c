package bpe

import (
	"github.com/seg-ml/seg/internal/parallel"
)

// Segment splits a token into the longest known subwords, greedily, left
// to right. The token is expected to already follow the end-of-word
// convention (e.g. "tallest_"); Segment itself never appends the marker.
//
// At each position the longest substring present in the vocabulary is
// emitted and the scan restarts after it. If no prefix of the remaining
// suffix matches at all, a single Unknown symbol is emitted for the entire
// remainder and the scan stops. An empty token yields nil.
//
// Worst case O(L²) substring probes for a token of length L.
func Segment(token string, vocab *Vocabulary) []string {
	if token == "" {
		return nil
	}

	runes := []rune(token)
	var out []string
	start, end := 0, len(runes)
	for start < len(runes) {
		if end == start {
			// Nothing in the vocabulary covers the remaining suffix,
			// not even its first character.
			out = append(out, Unknown)
			break
		}
		if candidate := string(runes[start:end]); vocab.Contains(candidate) {
			out = append(out, candidate)
			start = end
			end = len(runes)
		} else {
			end--
		}
	}
	return out
}

// SegmentAll segments each token independently. Tokens only read the
// immutable vocabulary, so batches are processed in parallel.
func SegmentAll(tokens []string, vocab *Vocabulary) [][]string {
	out := make([][]string, len(tokens))
	parallel.For(len(tokens), func(i int) {
		out[i] = Segment(tokens[i], vocab)
	}, parallel.DefaultConfig())
	return out
}
