// Package main provides the seg CLI: train subword vocabularies, inspect
// them, and segment text.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.2.0"

func main() {
	root := &cobra.Command{
		Use:           "seg",
		Short:         "Subword tokenization toolkit",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newTrainCommand(),
		newSegmentCommand(),
		newVocabCommand(),
		newVersionCommand(),
	)

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "seg %s\n", version)
		},
	}
}
