package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/wetshaving/brushmatch"
	"github.com/wetshaving/brushmatch/pkg/batch"
)

var (
	batchInput   string
	batchWorkers int
	batchBypass  bool
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Match many descriptions from a file or stdin",
	Long: `Read one description per line and emit one JSON result per line, in input
order. Blank lines produce unmatched results, never failures.`,
	RunE: runBatch,
}

func init() {
	batchCmd.Flags().StringVar(&batchInput, "input", "-", "Input file, or - for stdin")
	batchCmd.Flags().IntVar(&batchWorkers, "workers", 4, "Number of concurrent match workers")
	batchCmd.Flags().BoolVar(&batchBypass, "bypass-cache", false, "Skip the correct-match cache fast path")
}

func runBatch(cmd *cobra.Command, args []string) error {
	var opts []brushmatch.Option
	if batchBypass {
		opts = append(opts, brushmatch.WithBypassCache())
	}
	engine, err := newEngine(opts...)
	if err != nil {
		return err
	}
	defer engine.Close()

	inputs, err := readLines(cmd, batchInput)
	if err != nil {
		return err
	}

	runner := batch.NewRunner(engine.Matcher(), batchWorkers)
	results := runner.Run(context.Background(), inputs)

	encoder := json.NewEncoder(cmd.OutOrStdout())
	for _, r := range results {
		if err := encoder.Encode(r.Result); err != nil {
			return fmt.Errorf("writing result %d: %w", r.Index, err)
		}
	}
	return nil
}

func readLines(cmd *cobra.Command, path string) ([]string, error) {
	var reader io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening input: %w", err)
		}
		defer f.Close()
		reader = f
	}

	var lines []string
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading input: %w", err)
	}
	return lines, nil
}
