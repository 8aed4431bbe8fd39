package types

// MatchType describes how a result was produced.
type MatchType string

const (
	// MatchTypeExact is a correct-match cache hit on the normalized text.
	MatchTypeExact MatchType = "exact"

	// MatchTypeRegex is a catalog pattern match against a specific model.
	MatchTypeRegex MatchType = "regex"

	// MatchTypeAlias is a match through a catalog alias pattern.
	MatchTypeAlias MatchType = "alias"

	// MatchTypeBrand is a brand-only match with no model resolved.
	MatchTypeBrand MatchType = "brand"
)

// Precedence returns the tie-break rank of a match type; lower wins.
func (t MatchType) Precedence() int {
	switch t {
	case MatchTypeExact:
		return 0
	case MatchTypeRegex:
		return 1
	case MatchTypeAlias:
		return 2
	case MatchTypeBrand:
		return 3
	}
	return 4
}
