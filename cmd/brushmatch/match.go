package main

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wetshaving/brushmatch"
	"github.com/wetshaving/brushmatch/pkg/types"
)

var (
	matchBypassCache bool
	matchShowAll     bool
	matchFormat      string
	matchColor       string
)

// styles holds color formatters for human-readable match output.
type styles struct {
	heading *color.Color
	brand   *color.Color
	field   *color.Color
	value   *color.Color
	muted   *color.Color
}

// newStyles creates color formatters.
// enabled=false respects --color never and the NO_COLOR env var.
func newStyles(enabled bool) *styles {
	s := &styles{
		heading: color.New(color.Bold, color.FgHiWhite),
		brand:   color.New(color.Bold, color.FgHiBlue),
		field:   color.New(color.FgHiGreen),
		value:   color.New(color.FgYellow),
		muted:   color.New(color.FgHiBlack),
	}
	if !enabled {
		s.heading.DisableColor()
		s.brand.DisableColor()
		s.field.DisableColor()
		s.value.DisableColor()
		s.muted.DisableColor()
	}
	return s
}

func colorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return true
}

var matchCmd = &cobra.Command{
	Use:   "match <description>",
	Short: "Match one brush description",
	Long:  "Resolve a free-text brush description into a structured catalog record",
	Args:  cobra.ExactArgs(1),
	RunE:  runMatch,
}

func init() {
	matchCmd.Flags().BoolVar(&matchBypassCache, "bypass-cache", false, "Skip the correct-match cache fast path")
	matchCmd.Flags().BoolVar(&matchShowAll, "all", false, "Show every strategy's scored candidate")
	matchCmd.Flags().StringVar(&matchFormat, "format", "human", "Output format: human, json")
	matchCmd.Flags().StringVar(&matchColor, "color", "auto", "Color output: auto, always, never")
}

func runMatch(cmd *cobra.Command, args []string) error {
	var opts []brushmatch.Option
	if matchBypassCache {
		opts = append(opts, brushmatch.WithBypassCache())
	}
	engine, err := newEngine(opts...)
	if err != nil {
		return err
	}
	defer engine.Close()

	result := engine.Match(args[0])

	switch matchFormat {
	case "json":
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(result); err != nil {
			return err
		}
	case "human":
		printResult(cmd, result)
	default:
		return fmt.Errorf("unknown output format: %s", matchFormat)
	}

	if matchShowAll {
		return printCandidates(cmd, engine.MatchAll(args[0]))
	}
	return nil
}

func printResult(cmd *cobra.Command, r *brushmatch.BrushMatchResult) {
	out := cmd.OutOrStdout()
	s := newStyles(colorEnabled(matchColor))

	s.heading.Fprintln(out, r.Original)
	if r.Matched == nil {
		s.muted.Fprintln(out, "  unmatched")
		return
	}

	m := r.Matched
	fmt.Fprintf(out, "  %s %s\n", s.field.Sprint("brand:"), s.brand.Sprint(deref(m.Brand)))
	fmt.Fprintf(out, "  %s %s\n", s.field.Sprint("model:"), s.value.Sprint(deref(m.Model)))
	fmt.Fprintf(out, "  %s %s %s\n", s.field.Sprint("handle:"),
		s.brand.Sprint(deref(m.Handle.Brand)), s.value.Sprint(deref(m.Handle.Model)))
	fmt.Fprintf(out, "  %s %s %s %s %s\n", s.field.Sprint("knot:"),
		s.brand.Sprint(deref(m.Knot.Brand)), s.value.Sprint(deref(m.Knot.Model)),
		s.value.Sprint(fiberString(m.Knot.Fiber)), s.value.Sprint(sizeString(m.Knot.KnotSizeMM)))
	fmt.Fprintf(out, "  %s %s (%s)\n", s.field.Sprint("matched by:"),
		s.muted.Sprint(deref(m.MatchedBy)), s.muted.Sprint(matchTypeString(m.MatchType)))
}

func printCandidates(cmd *cobra.Command, cands []*brushmatch.ScoredCandidate) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	defer w.Flush()

	fmt.Fprintf(w, "STRATEGY\tTYPE\tSCORE\tBASE\tMODIFIERS\tPATTERN\n")
	for _, sc := range cands {
		c := sc.Candidate
		fmt.Fprintf(w, "%s\t%s\t%.1f\t%.1f\t%.1f\t%s\n",
			c.Strategy, c.MatchType, sc.Score.Total, sc.Score.Base, sc.Score.Modifiers, c.Pattern)
	}
	return nil
}

// =============================================================================
// HELPERS
// =============================================================================

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}

func fiberString(f *types.Fiber) string {
	if f == nil {
		return "-"
	}
	return string(*f)
}

func sizeString(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%gmm", *v)
}

func matchTypeString(t *types.MatchType) string {
	if t == nil {
		return "-"
	}
	return string(*t)
}
