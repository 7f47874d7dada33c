package tokenizer

import (
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"
)

const (
	// encodingCL100kBase is used by GPT-4 and GPT-3.5-turbo.
	encodingCL100kBase = "cl100k_base"
	// encodingP50kBase is used by GPT-3 and Codex.
	encodingP50kBase = "p50k_base"
	// encodingR50kBase is used by older GPT-3 models.
	encodingR50kBase = "r50k_base"
)

// encodingInfo holds the per-encoding facts tiktoken-go does not expose:
// vocabulary size, the <|endoftext|> ID, and the ID range the encoding
// reserves for special tokens.
type encodingInfo struct {
	vocabSize  int
	eosToken   int32
	specialMin int32
	specialMax int32
}

var encodingInfos = map[string]encodingInfo{
	encodingCL100kBase: {
		vocabSize: 100256,
		eosToken:  100257,
		// 100256-100276 are the ChatML markers.
		specialMin: 100256,
		specialMax: 100276,
	},
	encodingP50kBase: {
		vocabSize:  50257,
		eosToken:   50256,
		specialMin: 50256,
		specialMax: 50256,
	},
	encodingR50kBase: {
		vocabSize:  50257,
		eosToken:   50256,
		specialMin: 50256,
		specialMax: 50256,
	},
}

// TikToken exposes pretrained OpenAI BPE encodings behind the Tokenizer
// interface, backed by the pkoukk/tiktoken-go library. It is the
// pretrained counterpart to the trainable Subword tokenizer.
type TikToken struct {
	encoding *tiktoken.Tiktoken
	name     string
	info     encodingInfo
}

// NewTikToken creates a TikToken tokenizer for the named encoding.
//
// Supported encodings: "cl100k_base" (GPT-4), "p50k_base" (GPT-3).
func NewTikToken(encodingName string) (*TikToken, error) {
	encoding, err := tiktoken.GetEncoding(encodingName)
	if err != nil {
		return nil, fmt.Errorf("failed to load tiktoken encoding %q: %w", encodingName, err)
	}

	info, ok := encodingInfos[encodingName]
	if !ok {
		// Unrecognized but loadable encoding: no EOS or special range.
		info = encodingInfo{vocabSize: 100000, eosToken: -1, specialMin: 0, specialMax: -1}
	}

	return &TikToken{
		encoding: encoding,
		name:     encodingName,
		info:     info,
	}, nil
}

// NewTikTokenForModel creates a TikToken tokenizer for a specific model
// by resolving the model name to its encoding.
//
// Example models: "gpt-4", "gpt-3.5-turbo", "text-embedding-ada-002".
func NewTikTokenForModel(modelName string) (*TikToken, error) {
	encodingName, err := encodingForModel(modelName)
	if err != nil {
		return nil, err
	}
	return NewTikToken(encodingName)
}

// encodingForModel maps a model name to its encoding using the tables
// tiktoken-go ships, preferring an exact match over a version prefix.
func encodingForModel(modelName string) (string, error) {
	if name, ok := tiktoken.MODEL_TO_ENCODING[modelName]; ok {
		return name, nil
	}
	for prefix, name := range tiktoken.MODEL_PREFIX_TO_ENCODING {
		if strings.HasPrefix(modelName, prefix) {
			return name, nil
		}
	}
	return "", fmt.Errorf("no tiktoken encoding for model %q", modelName)
}

// Encode converts text to token IDs.
func (t *TikToken) Encode(text string) ([]int32, error) {
	result := []int32{}
	for _, tok := range t.encoding.Encode(text, nil, nil) {
		result = append(result, int32(tok)) //nolint:gosec // G115: Token ID fits in int32 - vocab size < 2^31.
	}
	return result, nil
}

// Decode converts token IDs back to text.
func (t *TikToken) Decode(tokens []int32) (string, error) {
	intTokens := make([]int, len(tokens))
	for i, tok := range tokens {
		intTokens[i] = int(tok)
	}
	return t.encoding.Decode(intTokens), nil
}

// VocabSize returns the total vocabulary size of the encoding.
func (t *TikToken) VocabSize() int {
	return t.info.vocabSize
}

// BosToken returns -1; tiktoken encodings have no BOS token.
func (t *TikToken) BosToken() int32 {
	return -1
}

// EosToken returns the <|endoftext|> token ID for the encoding.
func (t *TikToken) EosToken() int32 {
	return t.info.eosToken
}

// PadToken returns -1; tiktoken encodings have no padding token.
func (t *TikToken) PadToken() int32 {
	return -1
}

// UnkToken returns -1; tiktoken falls back to byte-level BPE instead of
// an unknown token.
func (t *TikToken) UnkToken() int32 {
	return -1
}

// IsSpecialToken checks if a token ID is a special token.
func (t *TikToken) IsSpecialToken(token int32) bool {
	if token == t.info.eosToken && t.info.eosToken >= 0 {
		return true
	}
	return token >= t.info.specialMin && token <= t.info.specialMax
}

// Name returns the encoding name this tokenizer was built from.
func (t *TikToken) Name() string {
	return t.name
}
