// Package matcher implements the top-level brush matching orchestrator:
// cache lookup, split attempt, complete-brush matching, component fallback,
// scoring, and final result assembly.
package matcher

import (
	"fmt"

	"github.com/wetshaving/brushmatch/pkg/cache"
	"github.com/wetshaving/brushmatch/pkg/catalog"
	"github.com/wetshaving/brushmatch/pkg/lexicon"
	"github.com/wetshaving/brushmatch/pkg/scorer"
	"github.com/wetshaving/brushmatch/pkg/splitter"
	"github.com/wetshaving/brushmatch/pkg/strategy"
	"github.com/wetshaving/brushmatch/pkg/types"
)

// Config for matcher initialization.
type Config struct {
	// Catalog is the compiled catalog; required.
	Catalog *catalog.Compiled

	// Cache is the correct-match store consulted as a fast path. Optional.
	Cache cache.Cache

	// BypassCache skips the cache fast path while still computing the
	// full candidate set.
	BypassCache bool

	// Logger receives diagnostics. Defaults to NoopLogger.
	Logger DebugLogger
}

// Matcher resolves free-text brush descriptions into structured results.
// Safe for concurrent use: all state is written once at construction.
type Matcher struct {
	reg      *strategy.Registry
	splitter *splitter.Splitter
	scorer   *scorer.Scorer
	lex      *lexicon.Lexicon
	cache    cache.Cache
	bypass   bool
	logger   DebugLogger
}

// ScoredCandidate pairs a candidate with its score breakdown, for selection
// and for MatchAll diagnostics.
type ScoredCandidate struct {
	Candidate *types.MatchCandidate `json:"candidate"`
	Score     scorer.Score          `json:"score"`
}

// New creates a Matcher over a compiled catalog.
func New(cfg Config) (*Matcher, error) {
	if cfg.Catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = NoopLogger{}
	}

	lex := lexicon.New()
	return &Matcher{
		reg:      strategy.NewRegistry(cfg.Catalog),
		splitter: splitter.New(lex),
		scorer:   scorer.New(lex),
		lex:      lex,
		cache:    cfg.Cache,
		bypass:   cfg.BypassCache,
		logger:   logger,
	}, nil
}

// Match resolves one description. It is total: malformed or unrecognized
// input yields an unmatched result, never an error.
func (m *Matcher) Match(original string) *types.BrushMatchResult {
	normalized := types.Normalize(original)
	if normalized == "" {
		return unmatchedResult(original, normalized)
	}

	if !m.bypass {
		if hit := m.cacheLookup(normalized); hit != nil {
			m.logger.Log("cache hit for %q", normalized)
			return cachedResult(hit, original, normalized)
		}
	}

	scored := m.collect(normalized)
	if len(scored) == 0 {
		m.logger.Log("no candidates for %q", normalized)
		return unmatchedResult(original, normalized)
	}

	winner := scored[0]
	for _, sc := range scored[1:] {
		if better(sc, winner) {
			winner = sc
		}
	}
	m.logger.Log("winner for %q: %s (%.1f)", normalized, winner.Candidate.Strategy, winner.Score.Total)

	return Assemble(winner.Candidate, original, normalized)
}

// MatchAll returns every scored candidate in descending score order. This
// is a read-only diagnostic view of the same machinery Match uses; a cache
// hit appears as an exact candidate rather than short-circuiting.
func (m *Matcher) MatchAll(original string) []*ScoredCandidate {
	normalized := types.Normalize(original)
	if normalized == "" {
		return nil
	}

	scored := m.collect(normalized)
	if hit := m.cacheLookup(normalized); hit != nil {
		scored = append(scored, cacheCandidate(hit))
	}

	sortScored(scored)
	return scored
}

// cacheLookup consults the correct-match store. Store errors and invalid
// entries degrade to misses; cache trouble must never fail a match.
func (m *Matcher) cacheLookup(normalized string) *types.BrushMatchResult {
	if m.cache == nil {
		return nil
	}
	hit, err := m.cache.Lookup(normalized)
	if err != nil {
		m.logger.Log("cache lookup failed for %q: %v", normalized, err)
		return nil
	}
	return hit
}

// collect runs the priority algorithm and returns all scored candidates:
// composite candidates for every viable split, complete-brush candidates
// when no high-confidence split exists, and single-component fallbacks when
// nothing else matched.
func (m *Matcher) collect(normalized string) []*ScoredCandidate {
	var cands []*types.MatchCandidate

	splits := m.splitter.Split(normalized)
	highConfidence := false
	for _, sp := range splits {
		if sp.Confidence == splitter.ConfidenceHigh {
			highConfidence = true
		}
		if c := m.compositeCandidate(sp); c != nil {
			cands = append(cands, c)
		}
	}

	if !highConfidence {
		for _, s := range m.reg.Complete {
			if c := s.Match(normalized); c != nil {
				c.Knot = m.resolveKnot(c.Knot, normalized)
				cands = append(cands, c)
			}
		}
	}

	if !hasResolved(cands) {
		if c := m.reg.HandleOnly.Match(normalized); c != nil {
			cands = append(cands, c)
		}
		if c := m.reg.KnotOnly.Match(normalized); c != nil {
			c.Knot = m.resolveKnot(c.Knot, normalized)
			cands = append(cands, c)
		}
	}

	scored := make([]*ScoredCandidate, 0, len(cands))
	for _, c := range cands {
		scored = append(scored, &ScoredCandidate{
			Candidate: c,
			Score:     m.scorer.Score(c, normalized),
		})
	}
	return scored
}

// compositeCandidate matches both sides of a split independently and merges
// them into one candidate. Returns nil when neither side matched.
func (m *Matcher) compositeCandidate(sp splitter.Candidate) *types.MatchCandidate {
	hCand := firstMatch(m.reg.Handle, sp.HandleText)
	kCand := firstMatch(m.reg.Knot, sp.KnotText)
	if hCand == nil && kCand == nil {
		return nil
	}

	handle := &types.HandleRecord{SourceText: types.Ptr(sp.HandleText)}
	rank := 0
	if hCand != nil && hCand.Handle != nil {
		handle = hCand.Handle
		rank = hCand.StrategyRank
	}

	knot := &types.KnotRecord{SourceText: types.Ptr(sp.KnotText)}
	if kCand != nil && kCand.Knot != nil {
		knot = m.resolveKnot(kCand.Knot, sp.KnotText)
		if rank == 0 || kCand.StrategyRank < rank {
			rank = kCand.StrategyRank
		}
	}

	matchType := types.MatchTypeBrand
	if handle.Model != nil || knot.Model != nil {
		matchType = types.MatchTypeRegex
	}

	return &types.MatchCandidate{
		Strategy:        types.StrategySplit,
		Pattern:         sp.Reasoning,
		MatchType:       matchType,
		Handle:          handle,
		Knot:            knot,
		SplitConfidence: string(sp.Confidence),
		StrategyRank:    rank,
	}
}

// hasResolved reports whether any candidate already represents a complete
// product or a fully resolved composite. Only then is the single-component
// fallback skipped; a half-matched heuristic split does not count.
func hasResolved(cands []*types.MatchCandidate) bool {
	for _, c := range cands {
		if c.Brand != nil || c.IsComposite() {
			return true
		}
	}
	return false
}

// resolveKnot reconciles the knot record against explicit claims in its
// source text: a fiber keyword or size specification written by the user
// overrides the catalog default. Returns a new record; candidates never
// share mutable state with catalog entries.
func (m *Matcher) resolveKnot(k *types.KnotRecord, text string) *types.KnotRecord {
	if k == nil {
		return nil
	}
	out := *k

	if fiber, ok := m.lex.Fiber(text); ok {
		out.Fiber = types.Ptr(fiber)
	} else if k.Fiber != nil {
		out.Fiber = types.Ptr(*k.Fiber)
	}
	if size, ok := m.lex.KnotSize(text); ok {
		out.KnotSizeMM = types.Ptr(size)
	} else if k.KnotSizeMM != nil {
		out.KnotSizeMM = types.Ptr(*k.KnotSizeMM)
	}
	return &out
}

// firstMatch returns the first strategy's candidate for text, in
// registration order.
func firstMatch(strategies []strategy.Strategy, text string) *types.MatchCandidate {
	for _, s := range strategies {
		if c := s.Match(text); c != nil {
			return c
		}
	}
	return nil
}

// better reports whether a should win over b. Ties on score break on match
// type precedence (exact > regex > alias > brand), then composite over
// single-component, then strategy registration order, then longer pattern.
func better(a, b *ScoredCandidate) bool {
	if a.Score.Total != b.Score.Total {
		return a.Score.Total > b.Score.Total
	}
	ap, bp := a.Candidate.MatchType.Precedence(), b.Candidate.MatchType.Precedence()
	if ap != bp {
		return ap < bp
	}
	if ac, bc := a.Candidate.IsComposite(), b.Candidate.IsComposite(); ac != bc {
		return ac
	}
	if a.Candidate.StrategyRank != b.Candidate.StrategyRank {
		return a.Candidate.StrategyRank < b.Candidate.StrategyRank
	}
	return len(a.Candidate.Pattern) > len(b.Candidate.Pattern)
}

func sortScored(scored []*ScoredCandidate) {
	for i := 1; i < len(scored); i++ {
		for j := i; j > 0 && better(scored[j], scored[j-1]); j-- {
			scored[j], scored[j-1] = scored[j-1], scored[j]
		}
	}
}

// cacheCandidate converts a cache hit into an exact candidate for MatchAll.
func cacheCandidate(hit *types.BrushMatchResult) *ScoredCandidate {
	c := &types.MatchCandidate{
		Strategy:  types.StrategyCorrectMatches,
		MatchType: types.MatchTypeExact,
	}
	if hit.Matched != nil {
		handle := hit.Matched.Handle
		knot := hit.Matched.Knot
		c.Brand = hit.Matched.Brand
		c.Model = hit.Matched.Model
		c.Handle = &handle
		c.Knot = &knot
	}
	return &ScoredCandidate{
		Candidate: c,
		Score:     scorer.Score{Total: scorer.BaseExact, Base: scorer.BaseExact},
	}
}
