package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/seg-ml/seg/tokenizer"
)

func newTrainCommand() *cobra.Command {
	var (
		merges int
		output string
	)

	cmd := &cobra.Command{
		Use:   "train FILE...",
		Short: "Train a subword vocabulary from text files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			corpus, err := countWords(args)
			if err != nil {
				return err
			}
			if len(corpus) == 0 {
				return fmt.Errorf("no usable words found in input")
			}

			sw, err := tokenizer.TrainSubword(corpus, merges)
			if err != nil {
				return err
			}
			if err := tokenizer.SaveSubword(output, sw); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "trained on %d distinct words, applied %d merges, %d symbols -> %s\n",
				len(corpus), len(sw.Merges()), sw.VocabSize(), output)
			return nil
		},
	}

	cmd.Flags().IntVarP(&merges, "merges", "m", 1000, "number of merge iterations")
	cmd.Flags().StringVarP(&output, "output", "o", "vocab.segf", "output vocabulary file")
	return cmd
}

// countWords builds a word frequency table from the given files, reading
// them concurrently. Words are normalized to the lowercase alphabet the
// trainer's initial vocabulary covers.
func countWords(paths []string) (map[string]int, error) {
	var (
		mu     sync.Mutex
		corpus = make(map[string]int)
	)

	var g errgroup.Group
	for _, path := range paths {
		path := path
		g.Go(func() error {
			local, err := countFile(path)
			if err != nil {
				return err
			}
			mu.Lock()
			for word, n := range local {
				corpus[word] += n
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return corpus, nil
}

func countFile(path string) (map[string]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	counts := make(map[string]int)
	scanner := bufio.NewScanner(f)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		if word := normalizeWord(scanner.Text()); word != "" {
			counts[word]++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return counts, nil
}

// normalizeWord lowercases a raw token and drops everything outside a-z.
func normalizeWord(raw string) string {
	var sb strings.Builder
	for _, r := range strings.ToLower(raw) {
		if r >= 'a' && r <= 'z' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
