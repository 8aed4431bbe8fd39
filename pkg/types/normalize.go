package types

import "strings"

// Normalize canonicalizes free-text input for matching: trims surrounding
// whitespace and collapses internal runs of whitespace to single spaces.
// Case is preserved; patterns compile case-insensitively and component
// source_text stays a substring of the normalized input.
func Normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// EqualFold is strings.EqualFold after trimming, for brand comparisons.
func EqualFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}
