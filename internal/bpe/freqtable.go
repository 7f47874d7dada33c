package bpe

import (
	"fmt"
	"strings"
)

// delimiter joins the symbols of a word key. Raw words must not contain it.
const delimiter = " "

// FreqTable maps a word's current symbol segmentation, encoded as a
// space-delimited string, to the word's corpus frequency. Keys start out
// fully split (one symbol per character plus the end-of-word marker) and
// coarsen as merges are applied.
type FreqTable map[string]int

// NewFreqTable builds the initial table from raw words and their counts.
// Each word gets the end-of-word marker appended (words already carrying a
// trailing marker are left as-is) and is split into one symbol per
// character.
//
// Raw words containing the delimiter, or the end-of-word marker anywhere
// but the final position, violate the caller contract and are rejected.
func NewFreqTable(words map[string]int) (FreqTable, error) {
	table := make(FreqTable, len(words))
	for word, count := range words {
		if word == "" {
			return nil, fmt.Errorf("empty word in corpus")
		}
		if count <= 0 {
			return nil, fmt.Errorf("word %q has non-positive count %d", word, count)
		}
		if strings.Contains(word, delimiter) {
			return nil, fmt.Errorf("word %q contains the symbol delimiter", word)
		}
		body := strings.TrimSuffix(word, EndOfWord)
		if strings.Contains(body, EndOfWord) {
			return nil, fmt.Errorf("word %q contains an interior end-of-word marker", word)
		}
		table[wordKey(body)] += count
	}
	return table, nil
}

// wordKey produces the canonical fully-split key for a word body: one
// symbol per character, then the end-of-word marker.
func wordKey(body string) string {
	runes := []rune(body)
	symbols := make([]string, 0, len(runes)+1)
	for _, r := range runes {
		symbols = append(symbols, string(r))
	}
	symbols = append(symbols, EndOfWord)
	return strings.Join(symbols, delimiter)
}

// Total returns the sum of all counts. Merges never change it.
func (t FreqTable) Total() int {
	sum := 0
	for _, n := range t {
		sum += n
	}
	return sum
}
