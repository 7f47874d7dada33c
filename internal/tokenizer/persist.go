package tokenizer

import (
	"encoding/json"
	"fmt"

	"github.com/seg-ml/seg/internal/bpe"
	"github.com/seg-ml/seg/internal/serialization"
)

// vocabSection is the .segf section holding the trained vocabulary.
const vocabSection = "vocab"

// vocabPayload is the JSON layout of the vocab section.
type vocabPayload struct {
	Symbols []string    `json:"symbols"`
	Merges  [][2]string `json:"merges"`
}

// SaveSubword persists a trained tokenizer to a .segf file.
func SaveSubword(path string, s *Subword) error {
	payload := vocabPayload{
		Symbols: s.Vocab().Symbols(),
		Merges:  make([][2]string, 0, len(s.merges)),
	}
	for _, m := range s.merges {
		payload.Merges = append(payload.Merges, [2]string{m.First, m.Second})
	}

	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal vocabulary: %w", err)
	}

	w := serialization.NewWriter()
	if err := w.Add(vocabSection, serialization.KindJSON, data); err != nil {
		return err
	}
	w.SetMetadata("tokenizer", "subword")
	return w.Save(path)
}

// LoadSubword reads a tokenizer persisted with SaveSubword.
func LoadSubword(path string) (*Subword, error) {
	r, err := serialization.Open(path)
	if err != nil {
		return nil, err
	}

	data, ok := r.Section(vocabSection)
	if !ok {
		return nil, fmt.Errorf("%s: no %q section", path, vocabSection)
	}

	var payload vocabPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary: %w", err)
	}

	vocab, err := bpe.FromSymbols(payload.Symbols)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	merges := make([]bpe.Pair, 0, len(payload.Merges))
	for _, m := range payload.Merges {
		merges = append(merges, bpe.Pair{First: m[0], Second: m[1]})
	}

	return NewSubword(vocab, merges), nil
}
