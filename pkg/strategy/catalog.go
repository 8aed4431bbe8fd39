package strategy

import (
	"strings"

	"github.com/wetshaving/brushmatch/pkg/catalog"
	"github.com/wetshaving/brushmatch/pkg/types"
)

// catalogStrategy tests text against one compiled catalog section with
// first-match-wins semantics. First match, not best match: pattern order is
// precomputed at compile time, which keeps per-call work bounded and
// results deterministic.
type catalogStrategy struct {
	name     string
	kind     Kind
	patterns []*catalog.CompiledPattern
	rank     int
}

func newCatalogStrategy(name string, kind Kind, patterns []*catalog.CompiledPattern, rank int) *catalogStrategy {
	return &catalogStrategy{name: name, kind: kind, patterns: patterns, rank: rank}
}

func (s *catalogStrategy) Name() string { return s.name }

// Match iterates compiled patterns in order and builds a candidate for the
// first that fires. Empty input and regex timeouts are no-matches.
func (s *catalogStrategy) Match(normalized string) *types.MatchCandidate {
	if strings.TrimSpace(normalized) == "" {
		return nil
	}

	for _, p := range s.patterns {
		ok, err := p.Re.MatchString(normalized)
		if err != nil || !ok {
			continue
		}
		return s.candidate(p, normalized)
	}
	return nil
}

func (s *catalogStrategy) candidate(p *catalog.CompiledPattern, text string) *types.MatchCandidate {
	entry := p.Entry
	matchType := types.MatchTypeRegex
	if !entry.HasModel() && !entry.IsComposite() {
		matchType = types.MatchTypeBrand
	}

	c := &types.MatchCandidate{
		Strategy:     s.name,
		Pattern:      p.Source,
		MatchType:    matchType,
		StrategyRank: s.rank,
	}

	switch s.kind {
	case KindHandle:
		c.Handle = handleRecord(entry, nil, s.name, p.Source, text)
	case KindKnot:
		c.Knot = knotRecord(entry, nil, s.name, p.Source, text)
	default:
		c.Brand = types.Ptr(entry.Brand)
		if entry.HasModel() {
			c.Model = types.Ptr(entry.Model)
		}
		c.Handle = handleRecord(entry, entry.Handle, s.name, p.Source, text)
		c.Knot = knotRecord(entry, entry.Knot, s.name, p.Source, text)
	}
	return c
}

// handleRecord builds the handle section from an entry, applying a
// composite override when present.
func handleRecord(entry *types.CatalogEntry, override *types.CatalogComponent, matchedBy, pattern, text string) *types.HandleRecord {
	brand, model := entry.Brand, entry.Model
	if override != nil {
		brand, model = override.Brand, override.Model
	}

	r := &types.HandleRecord{
		Brand:      types.Ptr(brand),
		SourceText: types.Ptr(text),
		MatchedBy:  types.Ptr(matchedBy),
		Pattern:    types.Ptr(pattern),
	}
	if model != "" {
		r.Model = types.Ptr(model)
	}
	return r
}

// knotRecord builds the knot section from an entry with catalog fiber and
// size defaults, applying a composite override when present.
func knotRecord(entry *types.CatalogEntry, override *types.CatalogComponent, matchedBy, pattern, text string) *types.KnotRecord {
	brand, model := entry.Brand, entry.Model
	fiber, size := entry.Fiber, entry.KnotSizeMM
	if override != nil {
		brand, model = override.Brand, override.Model
		fiber, size = override.Fiber, override.KnotSizeMM
	}

	r := &types.KnotRecord{
		Brand:      types.Ptr(brand),
		Fiber:      fiber,
		KnotSizeMM: size,
		SourceText: types.Ptr(text),
		MatchedBy:  types.Ptr(matchedBy),
		Pattern:    types.Ptr(pattern),
	}
	if model != "" {
		r.Model = types.Ptr(model)
	}
	return r
}
