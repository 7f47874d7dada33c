package main

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/seg-ml/seg/bpe"
	"github.com/seg-ml/seg/tokenizer"
)

func newVocabCommand() *cobra.Command {
	var vocabPath string

	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Show the symbols of a trained vocabulary",
		RunE: func(cmd *cobra.Command, _ []string) error {
			sw, err := tokenizer.LoadSubword(vocabPath)
			if err != nil {
				return err
			}

			table := tablewriter.NewWriter(cmd.OutOrStdout())
			table.SetHeader([]string{"ID", "Symbol", "Origin"})
			for id, symbol := range sw.Vocab().Symbols() {
				table.Append([]string{strconv.Itoa(id), symbol, symbolOrigin(symbol, id)})
			}
			table.Render()
			return nil
		},
	}

	cmd.Flags().StringVarP(&vocabPath, "vocab", "v", "vocab.segf", "trained vocabulary file")
	return cmd
}

func symbolOrigin(symbol string, id int) string {
	switch {
	case symbol == bpe.EndOfWord || symbol == bpe.Unknown:
		return "sentinel"
	case id < 26:
		return "alphabet"
	default:
		return "merge"
	}
}
