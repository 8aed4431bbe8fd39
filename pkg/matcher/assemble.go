package matcher

import "github.com/wetshaving/brushmatch/pkg/types"

// Assemble normalizes a winning candidate into the canonical result shape.
// Pure transformation: it never re-invokes strategies or changes scores,
// and it builds a fresh value rather than mutating the candidate.
//
// Field presence rules: handle and knot sections always exist, defaulting
// to null fields where unknown. The top-level brand is populated for
// catalog identities and for same-maker composites; the top-level model
// only for true single-catalog-entry matches.
func Assemble(winner *types.MatchCandidate, original, normalized string) *types.BrushMatchResult {
	sections := &types.MatchedSections{
		MatchedBy: types.Ptr(winner.Strategy),
		MatchType: types.Ptr(winner.MatchType),
	}
	if winner.Pattern != "" {
		sections.Pattern = types.Ptr(winner.Pattern)
	}

	if winner.Handle != nil {
		sections.Handle = *winner.Handle
	}
	if winner.Knot != nil {
		sections.Knot = *winner.Knot
	}

	switch {
	case winner.Brand != nil:
		// catalog identity: single-entry matches carry brand and model,
		// known composites carry the composite's own catalog identity
		sections.Brand = copyString(winner.Brand)
		sections.Model = copyString(winner.Model)
	case sections.SameMaker():
		// same-maker composite: promote the shared brand, leave model
		// null; the product remains conceptually two sections
		sections.Brand = copyString(sections.Handle.Brand)
	}

	return &types.BrushMatchResult{
		Original:   original,
		Normalized: normalized,
		Matched:    sections,
	}
}

// cachedResult adapts a cache hit to the current input. The stored sections
// pass through untouched; the top-level provenance reflects the fast path.
func cachedResult(hit *types.BrushMatchResult, original, normalized string) *types.BrushMatchResult {
	out := &types.BrushMatchResult{
		Original:   original,
		Normalized: normalized,
	}
	if hit.Matched != nil {
		sections := *hit.Matched
		sections.MatchedBy = types.Ptr(types.StrategyCorrectMatches)
		sections.MatchType = types.Ptr(types.MatchTypeExact)
		out.Matched = &sections
	}
	return out
}

// unmatchedResult is the well-formed negative outcome: matched is null,
// original and normalized still populated.
func unmatchedResult(original, normalized string) *types.BrushMatchResult {
	return &types.BrushMatchResult{
		Original:   original,
		Normalized: normalized,
	}
}

func copyString(s *string) *string {
	if s == nil {
		return nil
	}
	return types.Ptr(*s)
}
