package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"natsort"
)

var sortCmd = &cobra.Command{
	Use:   "sort [flags] [file ...]",
	Short: "Naturally sort lines from files or stdin",
	Long:  `Sort reads lines from the given files (or stdin when none are given) and prints them in natural order`,
	Args:  cobra.ArbitraryArgs,
	RunE:  runSort,
}

func init() {
	sortCmd.Flags().BoolP("reverse", "r", false, "sort in descending order")
	sortCmd.Flags().BoolP("check", "c", false, "verify the input is already sorted instead of sorting it")
	sortCmd.Flags().StringP("output", "o", "", "write result to file instead of stdout")
}

func runSort(cmd *cobra.Command, args []string) error {
	reverse, err := cmd.Flags().GetBool("reverse")
	if err != nil {
		return fmt.Errorf("failed to get reverse flag: %w", err)
	}
	check, err := cmd.Flags().GetBool("check")
	if err != nil {
		return fmt.Errorf("failed to get check flag: %w", err)
	}
	output, err := cmd.Flags().GetString("output")
	if err != nil {
		return fmt.Errorf("failed to get output flag: %w", err)
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	lines, err := readLines(cmd.Context(), args)
	if err != nil {
		return err
	}

	if check {
		if err := checkSorted(lines, reverse); err != nil {
			return err
		}
		if !quiet {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d lines in natural order\n", len(lines))
		}
		return nil
	}

	if err := natsort.Sort(lines); err != nil {
		return fmt.Errorf("input is not naturally orderable: %w", err)
	}
	if reverse {
		slices.Reverse(lines)
	}

	return writeLines(cmd.OutOrStdout(), output, lines)
}

// readLines gathers input lines from the named files, or from stdin when no
// files are given. Files are read concurrently; the result keeps the
// argument order.
func readLines(ctx context.Context, paths []string) ([]string, error) {
	if len(paths) == 0 {
		return splitLines(os.Stdin)
	}

	perFile := make([][]string, len(paths))
	grp, _ := errgroup.WithContext(ctx)
	grp.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		i, path := i, path
		grp.Go(func() error {
			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", path, err)
			}
			defer f.Close()

			lines, err := splitLines(f)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", path, err)
			}
			perFile[i] = lines
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return nil, err
	}

	var lines []string
	for _, part := range perFile {
		lines = append(lines, part...)
	}
	return lines, nil
}

// splitLines reads r to the end and returns its lines without terminators.
func splitLines(r io.Reader) ([]string, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}

// checkSorted verifies that lines already appear in natural order and
// reports the first out-of-order or unorderable pair.
func checkSorted(lines []string, descending bool) error {
	for i := 1; i < len(lines); i++ {
		ord := natsort.CompareStrings(lines[i-1], lines[i])
		if !ord.Ordered() {
			return fmt.Errorf("lines %d and %d (%q, %q) are not naturally orderable", i, i+1, lines[i-1], lines[i])
		}
		bad := ord == natsort.Greater
		if descending {
			bad = ord == natsort.Less
		}
		if bad {
			return fmt.Errorf("line %d is out of order: %q", i+1, lines[i])
		}
	}
	return nil
}

// writeLines prints lines to the output file, or to w when no file is named.
func writeLines(w io.Writer, output string, lines []string) error {
	if output != "" {
		f, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", output, err)
		}
		defer f.Close()
		w = f
	}

	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := fmt.Fprintln(bw, line); err != nil {
			return err
		}
	}
	return bw.Flush()
}
