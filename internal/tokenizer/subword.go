package tokenizer

import (
	"strings"

	"github.com/seg-ml/seg/internal/bpe"
)

// Subword tokenizes text against a trained BPE vocabulary using greedy
// longest-match segmentation. Token IDs are vocabulary positions.
type Subword struct {
	vocab  *bpe.Vocabulary
	merges []bpe.Pair
	unk    int32
}

// TrainSubword learns a vocabulary from a word frequency corpus and
// returns a tokenizer over it. numMerges is the training hyperparameter:
// each merge adds one subword symbol to the vocabulary.
func TrainSubword(words map[string]int, numMerges int) (*Subword, error) {
	result, err := bpe.Train(words, numMerges)
	if err != nil {
		return nil, err
	}
	return NewSubword(result.Vocab, result.Merges), nil
}

// NewSubword wraps an already-trained vocabulary. merges is informational
// (persisted alongside the vocabulary) and may be nil.
func NewSubword(vocab *bpe.Vocabulary, merges []bpe.Pair) *Subword {
	unk, _ := vocab.ID(bpe.Unknown)
	return &Subword{
		vocab:  vocab,
		merges: merges,
		unk:    unk,
	}
}

// Vocab returns the underlying vocabulary.
func (s *Subword) Vocab() *bpe.Vocabulary {
	return s.vocab
}

// Merges returns the merge sequence the vocabulary was trained with.
func (s *Subword) Merges() []bpe.Pair {
	out := make([]bpe.Pair, len(s.merges))
	copy(out, s.merges)
	return out
}

// Encode converts text to token IDs. The text is split on whitespace and
// each word gets the end-of-word convention applied before segmentation,
// so decoded output restores the word boundaries.
func (s *Subword) Encode(text string) ([]int32, error) {
	words := strings.Fields(text)
	tokens := []int32{}

	for _, word := range words {
		if !strings.HasSuffix(word, bpe.EndOfWord) {
			word += bpe.EndOfWord
		}
		for _, symbol := range bpe.Segment(word, s.vocab) {
			if id, ok := s.vocab.ID(symbol); ok {
				tokens = append(tokens, id)
			} else {
				tokens = append(tokens, s.unk)
			}
		}
	}

	return tokens, nil
}

// Decode converts token IDs back to text. End-of-word markers become
// spaces; IDs outside the vocabulary decode to the replacement character.
func (s *Subword) Decode(tokens []int32) (string, error) {
	var sb strings.Builder
	for _, token := range tokens {
		if symbol := s.vocab.Symbol(token); symbol != "" {
			sb.WriteString(symbol)
		} else {
			sb.WriteString("�")
		}
	}
	text := strings.ReplaceAll(sb.String(), bpe.EndOfWord, " ")
	return strings.TrimSuffix(text, " "), nil
}

// VocabSize returns the total vocabulary size.
func (s *Subword) VocabSize() int {
	return s.vocab.Len()
}

// BosToken returns -1; subword vocabularies have no BOS sentinel.
func (s *Subword) BosToken() int32 {
	return -1
}

// EosToken returns -1; subword vocabularies have no EOS sentinel.
func (s *Subword) EosToken() int32 {
	return -1
}

// PadToken returns -1; subword vocabularies have no padding sentinel.
func (s *Subword) PadToken() int32 {
	return -1
}

// UnkToken returns the unknown-token marker's ID.
func (s *Subword) UnkToken() int32 {
	return s.unk
}

// IsSpecialToken checks if a token ID is a special token.
func (s *Subword) IsSpecialToken(token int32) bool {
	return token == s.unk
}
