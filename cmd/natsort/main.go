package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"natsort/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "natsort",
	Short: "Natural (human-friendly) string sorting",
	Long:  `natsort orders strings so that embedded numbers compare by magnitude ("file2" before "file11")`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		configureColor(cmd)
	},
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// configureColor applies the persistent --color flag to the global color
// state used by every formatter.
func configureColor(cmd *cobra.Command) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		colorFlag = "auto"
	}
	switch colorFlag {
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		color.NoColor = !isTerminal(os.Stdout)
	}
}
