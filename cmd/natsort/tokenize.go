package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"natsort"
	"natsort/internal/textfmt"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] string",
	Short: "Show how a string splits into letter and number runs",
	Long:  `Tokenize breaks a string into the alternating letter and number runs that drive natural ordering`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}

	seq := natsort.Tokenize(args[0])

	switch format {
	case "pretty":
		return textfmt.TokensPretty(cmd.OutOrStdout(), seq)
	case "json":
		return textfmt.TokensJSON(cmd.OutOrStdout(), seq)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
