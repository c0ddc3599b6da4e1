package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"journal_backend/internal/sentiment"
)

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score [text...]",
		Short: "Print the sentiment score and label of the given text",
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(strings.Join(args, " "))
			if text == "" {
				return errors.New("text required")
			}

			result := sentiment.NewScorer().Score(text)
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%.4f\t%s\n", result.Compound, result.Label.Summary())
			return err
		},
	}
}
