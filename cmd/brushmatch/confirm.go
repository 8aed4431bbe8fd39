package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/wetshaving/brushmatch"
)

var confirmFrom string

var confirmCmd = &cobra.Command{
	Use:   "confirm <description>",
	Short: "Record a confirmed match in the cache",
	Long: `Store a human-confirmed result for a description in the correct-match
cache. By default the engine's own match result is confirmed; --from reads a
corrected result as JSON instead.`,
	Args: cobra.ExactArgs(1),
	RunE: runConfirm,
}

func init() {
	confirmCmd.Flags().StringVar(&confirmFrom, "from", "", "JSON result file to confirm, or - for stdin")
}

func runConfirm(cmd *cobra.Command, args []string) error {
	if cachePath == "" {
		return fmt.Errorf("--cache is required to confirm matches")
	}
	engine, err := newEngine()
	if err != nil {
		return err
	}
	defer engine.Close()

	var result *brushmatch.BrushMatchResult
	if confirmFrom != "" {
		result, err = readResult(cmd, confirmFrom)
		if err != nil {
			return err
		}
	} else {
		result = engine.Match(args[0])
		if result.Matched == nil {
			return fmt.Errorf("refusing to confirm an unmatched result; supply --from")
		}
	}

	if err := engine.Confirm(args[0], result); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "confirmed %q\n", args[0])
	return nil
}

func readResult(cmd *cobra.Command, path string) (*brushmatch.BrushMatchResult, error) {
	var reader io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("opening result file: %w", err)
		}
		defer f.Close()
		reader = f
	}

	var result brushmatch.BrushMatchResult
	if err := json.NewDecoder(reader).Decode(&result); err != nil {
		return nil, fmt.Errorf("parsing result JSON: %w", err)
	}
	return &result, nil
}
