package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"natsort"
	"natsort/internal/textfmt"
)

var compareCmd = &cobra.Command{
	Use:   "compare A B",
	Short: "Compare two strings under natural ordering",
	Long:  `Compare prints less, equal, greater, or incomparable for the given pair of strings`,
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

func runCompare(cmd *cobra.Command, args []string) error {
	ord := natsort.CompareStrings(args[0], args[1])
	_, err := fmt.Fprintln(cmd.OutOrStdout(), textfmt.OrderingWord(ord))
	return err
}
