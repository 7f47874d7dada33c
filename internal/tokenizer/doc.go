// Package tokenizer provides subword tokenization.
//
// Two implementations share the Tokenizer interface:
//   - Subword: a trainable byte-pair-encoding tokenizer backed by a
//     vocabulary learned with the bpe package
//   - TikToken: pretrained OpenAI encodings (cl100k_base, p50k_base)
//     via the pkoukk/tiktoken-go library
//
// Example usage:
//
//	sw, err := tokenizer.TrainSubword(map[string]int{"fast": 4, "tall": 5}, 10)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	ids, err := sw.Encode("tall fast")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	text, err := sw.Decode(ids)
//
// Trained tokenizers persist through the .segf container:
//
//	if err := tokenizer.SaveSubword("vocab.segf", sw); err != nil {
//	    log.Fatal(err)
//	}
//	sw, err = tokenizer.LoadSubword("vocab.segf")
package tokenizer
