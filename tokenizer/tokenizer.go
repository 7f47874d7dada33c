// Package tokenizer provides subword tokenization for seg.
//
// This package wraps the internal tokenizer implementations and provides
// a clean public API for tokenization tasks.
//
// Supported tokenizers:
//   - Subword: trainable byte-pair-encoding tokenizer
//   - TikToken: pretrained OpenAI BPE encodings (GPT-3, GPT-4)
//
// Example usage:
//
//	import "github.com/seg-ml/seg/tokenizer"
//
//	// Train on a word frequency corpus
//	sw, err := tokenizer.TrainSubword(corpus, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Encode text
//	tokens, err := sw.Encode("tallest")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Decode tokens
//	text, err := sw.Decode(tokens)
//	if err != nil {
//	    log.Fatal(err)
//	}
package tokenizer

import (
	"github.com/seg-ml/seg/internal/tokenizer"
)

// Tokenizer is the core interface for text tokenization.
//
// All tokenizer implementations must implement this interface.
type Tokenizer = tokenizer.Tokenizer

// Subword is a trainable BPE tokenizer using greedy longest-match
// segmentation over a learned vocabulary.
type Subword = tokenizer.Subword

// TikToken exposes pretrained OpenAI BPE encodings.
type TikToken = tokenizer.TikToken

// TrainSubword learns a subword vocabulary from a word frequency corpus.
//
// numMerges controls vocabulary growth: each merge adds one symbol.
func TrainSubword(words map[string]int, numMerges int) (*Subword, error) {
	return tokenizer.TrainSubword(words, numMerges)
}

// SaveSubword persists a trained tokenizer to a .segf file.
func SaveSubword(path string, s *Subword) error {
	return tokenizer.SaveSubword(path, s)
}

// LoadSubword reads a tokenizer persisted with SaveSubword.
func LoadSubword(path string) (*Subword, error) {
	return tokenizer.LoadSubword(path)
}

// NewTikToken creates a TikToken tokenizer with the specified encoding.
//
// Supported encodings: "cl100k_base" (GPT-4), "p50k_base" (GPT-3).
func NewTikToken(encodingName string) (*TikToken, error) {
	return tokenizer.NewTikToken(encodingName)
}

// NewTikTokenForModel creates a TikToken tokenizer for a specific model.
//
// Example models: "gpt-4", "gpt-3.5-turbo", "text-embedding-ada-002".
func NewTikTokenForModel(modelName string) (*TikToken, error) {
	return tokenizer.NewTikTokenForModel(modelName)
}
