package catalog

import (
	"fmt"
	"sort"
	"time"

	"github.com/dlclark/regexp2"
	"github.com/wetshaving/brushmatch/pkg/types"
)

// patternTimeout bounds a single regex evaluation against catastrophic
// backtracking in Perl-mode patterns.
const patternTimeout = 5 * time.Second

// CompiledPattern is a validated, pre-parsed pattern with a back-reference
// to its owning entry. Never mutated after compilation.
type CompiledPattern struct {
	Source string
	Re     *regexp2.Regexp
	Entry  *types.CatalogEntry

	prefixLen int // length of the literal prefix, for specificity ordering
	declIndex int // position in catalog declaration order
}

// Compiled holds every section's patterns in match order, ready for the
// strategies. Write-once, read-many.
type Compiled struct {
	catalog  *Catalog
	sections map[Section][]*CompiledPattern
}

// Compile turns a loaded catalog into ordered compiled pattern lists.
// Ordering within a section guarantees deterministic first-match-wins
// semantics: explicit priority first, then model entries before brand-only
// fallbacks, then longer literal prefixes, then declaration order, then
// longer patterns.
func Compile(c *Catalog) (*Compiled, error) {
	compiled := &Compiled{
		catalog:  c,
		sections: make(map[Section][]*CompiledPattern),
	}

	for _, section := range Sections {
		var list []*CompiledPattern
		decl := 0
		for _, entry := range c.Section(section) {
			for _, p := range entry.Patterns {
				re, err := compilePattern(p)
				if err != nil {
					return nil, &Error{Section: section, Brand: entry.Brand,
						Model: entry.Model, Pattern: p,
						Err: fmt.Errorf("compiling: %w", err)}
				}
				list = append(list, &CompiledPattern{
					Source:    p,
					Re:        re,
					Entry:     entry,
					prefixLen: literalPrefixLen(p),
					declIndex: decl,
				})
				decl++
			}
		}
		sortPatterns(list)
		compiled.sections[section] = list
	}

	return compiled, nil
}

// Section returns a section's patterns in match order.
func (c *Compiled) Section(s Section) []*CompiledPattern {
	return c.sections[s]
}

// Catalog returns the source catalog.
func (c *Compiled) Catalog() *Catalog { return c.catalog }

// PatternCount returns the number of compiled patterns in a section.
func (c *Compiled) PatternCount(s Section) int {
	return len(c.sections[s])
}

func sortPatterns(list []*CompiledPattern) {
	sort.SliceStable(list, func(i, j int) bool {
		a, b := list[i], list[j]
		if a.Entry.Priority != b.Entry.Priority {
			return a.Entry.Priority < b.Entry.Priority
		}
		if a.Entry.HasModel() != b.Entry.HasModel() {
			return a.Entry.HasModel()
		}
		if a.prefixLen != b.prefixLen {
			return a.prefixLen > b.prefixLen
		}
		if a.declIndex != b.declIndex {
			return a.declIndex < b.declIndex
		}
		return len(a.Source) > len(b.Source)
	})
}

// literalPrefixLen counts leading literal characters of a pattern as a cheap
// specificity measure. Stops at the first regex metacharacter.
func literalPrefixLen(pattern string) int {
	n := 0
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case '\\', '(', ')', '[', ']', '{', '}', '.', '*', '+', '?', '|', '^', '$':
			return n
		case ' ':
			// spaces inside a literal prefix still count
			n++
		default:
			n++
		}
	}
	return n
}
