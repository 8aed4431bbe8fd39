package catalog

import (
	"fmt"

	"github.com/dlclark/regexp2"
	"github.com/wetshaving/brushmatch/pkg/types"
)

// ValidateSection checks every entry of a section: required fields, regex
// compilability, and duplicate patterns. Any failure is fatal at load time;
// a broken catalog silently degrades matching quality otherwise.
func ValidateSection(section Section, entries []*types.CatalogEntry) error {
	seen := make(map[string]string) // pattern -> "brand/model" that declared it

	for _, e := range entries {
		if e.Brand == "" {
			return &Error{Section: section, Model: e.Model, Err: fmt.Errorf("brand is required")}
		}
		if len(e.Patterns) == 0 {
			return &Error{Section: section, Brand: e.Brand, Model: e.Model,
				Err: fmt.Errorf("at least one pattern is required")}
		}
		if e.KnotSizeMM != nil && *e.KnotSizeMM <= 0 {
			return &Error{Section: section, Brand: e.Brand, Model: e.Model,
				Err: fmt.Errorf("knot_size_mm must be positive, got %v", *e.KnotSizeMM)}
		}

		for _, p := range e.Patterns {
			if p == "" {
				return &Error{Section: section, Brand: e.Brand, Model: e.Model,
					Err: fmt.Errorf("empty pattern")}
			}
			if _, err := compilePattern(p); err != nil {
				return &Error{Section: section, Brand: e.Brand, Model: e.Model, Pattern: p,
					Err: fmt.Errorf("invalid regex: %w", err)}
			}
			owner := e.Brand + "/" + e.Model
			if prev, dup := seen[p]; dup && prev != owner {
				return &Error{Section: section, Brand: e.Brand, Model: e.Model, Pattern: p,
					Err: fmt.Errorf("pattern already declared by %s", prev)}
			}
			seen[p] = owner
		}
	}
	return nil
}

// compilePattern compiles a catalog pattern the way the matcher will use it:
// case-insensitive, RE2 mode first for safety, Perl-compatible fallback for
// patterns using extended features.
func compilePattern(pattern string) (*regexp2.Regexp, error) {
	re, err := regexp2.Compile(pattern, regexp2.RE2|regexp2.IgnoreCase)
	if err != nil {
		re, err = regexp2.Compile(pattern, regexp2.IgnoreCase)
		if err != nil {
			return nil, err
		}
	}
	re.MatchTimeout = patternTimeout
	return re, nil
}
