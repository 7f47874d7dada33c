package main

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seg-ml/seg/bpe"
	"github.com/seg-ml/seg/tokenizer"
)

func newSegmentCommand() *cobra.Command {
	var vocabPath string

	cmd := &cobra.Command{
		Use:   "segment [TOKEN...]",
		Short: "Segment tokens into subwords using a trained vocabulary",
		Long: `Segment tokens into subwords using a trained vocabulary.

Tokens are taken from the arguments, or read one per line from stdin when
no arguments are given. The end-of-word marker is appended to tokens that
do not already carry it.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sw, err := tokenizer.LoadSubword(vocabPath)
			if err != nil {
				return err
			}

			tokens := args
			if len(tokens) == 0 {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				for scanner.Scan() {
					if line := strings.TrimSpace(scanner.Text()); line != "" {
						tokens = append(tokens, line)
					}
				}
				if err := scanner.Err(); err != nil {
					return err
				}
			}

			for i, token := range tokens {
				if !strings.HasSuffix(token, bpe.EndOfWord) {
					tokens[i] = token + bpe.EndOfWord
				}
			}

			for i, subwords := range bpe.SegmentAll(tokens, sw.Vocab()) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\n", tokens[i], strings.Join(subwords, " "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&vocabPath, "vocab", "v", "vocab.segf", "trained vocabulary file")
	return cmd
}
