package bpe

import (
	"fmt"
)

// Sentinel symbols present in every vocabulary.
const (
	// EndOfWord marks the boundary of a training word. It is appended to
	// every word before segmentation so that subwords never span two words
	// and so the original word is exactly reconstructable.
	EndOfWord = "_"

	// Unknown is emitted when a stretch of input cannot be matched against
	// any known symbol.
	Unknown = "[UNK]"
)

// Vocabulary is the ordered sequence of known symbols: the initial
// lowercase alphabet plus the two sentinels, followed by one merged symbol
// per training iteration. It grows monotonically and never shrinks.
//
// A Vocabulary is immutable once training completes and safe for
// concurrent reads.
type Vocabulary struct {
	symbols []string
	ids     map[string]int32
}

// NewVocabulary returns the initial vocabulary: the symbols "a" through
// "z", then EndOfWord, then Unknown. Symbol IDs are insertion positions.
func NewVocabulary() *Vocabulary {
	v := &Vocabulary{
		symbols: make([]string, 0, 28),
		ids:     make(map[string]int32, 28),
	}
	for c := 'a'; c <= 'z'; c++ {
		v.add(string(c))
	}
	v.add(EndOfWord)
	v.add(Unknown)
	return v
}

// FromSymbols reconstructs a vocabulary from an ordered symbol list, as
// produced by Symbols. It rejects duplicate symbols and lists missing the
// sentinels, since such a list cannot have come from training.
func FromSymbols(symbols []string) (*Vocabulary, error) {
	v := &Vocabulary{
		symbols: make([]string, 0, len(symbols)),
		ids:     make(map[string]int32, len(symbols)),
	}
	for _, s := range symbols {
		if s == "" {
			return nil, fmt.Errorf("vocabulary contains empty symbol")
		}
		if _, ok := v.ids[s]; ok {
			return nil, fmt.Errorf("duplicate symbol %q in vocabulary", s)
		}
		v.add(s)
	}
	if !v.Contains(EndOfWord) || !v.Contains(Unknown) {
		return nil, fmt.Errorf("vocabulary missing sentinel symbols")
	}
	return v, nil
}

// add appends a symbol and assigns it the next ID. The training loop never
// produces duplicates: a merged pair ceases to exist as an adjacency the
// moment it is merged.
func (v *Vocabulary) add(symbol string) {
	v.ids[symbol] = int32(len(v.symbols))
	v.symbols = append(v.symbols, symbol)
}

// Contains reports whether symbol is in the vocabulary.
func (v *Vocabulary) Contains(symbol string) bool {
	_, ok := v.ids[symbol]
	return ok
}

// ID returns the symbol's ID and whether the symbol is known.
func (v *Vocabulary) ID(symbol string) (int32, bool) {
	id, ok := v.ids[symbol]
	return id, ok
}

// Symbol returns the symbol with the given ID, or "" if out of range.
func (v *Vocabulary) Symbol(id int32) string {
	if id < 0 || int(id) >= len(v.symbols) {
		return ""
	}
	return v.symbols[id]
}

// Len returns the number of symbols.
func (v *Vocabulary) Len() int {
	return len(v.symbols)
}

// Symbols returns a copy of the ordered symbol list.
func (v *Vocabulary) Symbols() []string {
	out := make([]string, len(v.symbols))
	copy(out, v.symbols)
	return out
}
