package main

import (
	"github.com/spf13/cobra"
)

var (
	catalogDir string
	cachePath  string
)

var rootCmd = &cobra.Command{
	Use:   "brushmatch",
	Short: "brushmatch - shaving brush description classifier",
	Long: `brushmatch resolves free-text shaving brush descriptions into structured
catalog records: brand, model, fiber, knot size, and the distinct handle and
knot components, each attributed to the strategy and pattern that produced it.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogDir, "catalog", "", "Directory of custom catalog section files")
	rootCmd.PersistentFlags().StringVar(&cachePath, "cache", "", "Path to the correct-match cache database")

	// Add subcommands
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(batchCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(confirmCmd)
	rootCmd.AddCommand(versionCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
