package types

// MatchCandidate is the unit of comparison across strategies. Candidates are
// ephemeral: built during a single match invocation, scored, and discarded
// once a winner is selected.
type MatchCandidate struct {
	Strategy  string    // strategy identifier that produced the candidate
	Pattern   string    // the exact regex or rule that fired
	MatchType MatchType // exact, regex, alias, brand

	// Top-level composite/catalog identity, when the catalog defines one.
	Brand *string
	Model *string

	// Resolved components. A complete-brush candidate populates both with
	// the same maker; a composite split populates them independently; a
	// component fallback populates exactly one.
	Handle *HandleRecord
	Knot   *KnotRecord

	// SplitConfidence carries the splitter's confidence for split
	// candidates ("high", "medium", "low"); empty otherwise. Heuristic
	// splits score a lower base than delimiter splits.
	SplitConfidence string

	// StrategyRank is the strategy's index in the registration order, used
	// as a deterministic tie-break after scoring.
	StrategyRank int
}

// IsComposite reports whether both components resolved to a brand.
func (c *MatchCandidate) IsComposite() bool {
	return c.Handle != nil && c.Handle.Brand != nil &&
		c.Knot != nil && c.Knot.Brand != nil
}
