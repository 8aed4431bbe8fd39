package matcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wetshaving/brushmatch/pkg/cache"
	"github.com/wetshaving/brushmatch/pkg/catalog"
	"github.com/wetshaving/brushmatch/pkg/scorer"
	"github.com/wetshaving/brushmatch/pkg/types"
)

func newMatcher(t *testing.T, cfg Config) *Matcher {
	t.Helper()
	if cfg.Catalog == nil {
		c, err := catalog.NewLoader().Load()
		require.NoError(t, err)
		compiled, err := catalog.Compile(c)
		require.NoError(t, err)
		cfg.Catalog = compiled
	}
	m, err := New(cfg)
	require.NoError(t, err)
	return m
}

func TestMatchCompleteBrush(t *testing.T) {
	m := newMatcher(t, Config{})

	r := m.Match("Simpson Chubby 2")
	require.NotNil(t, r.Matched)
	assert.Equal(t, "Simpson Chubby 2", r.Original)
	assert.Equal(t, "Simpson Chubby 2", r.Normalized)

	assert.Equal(t, "Simpson", *r.Matched.Brand)
	assert.Equal(t, "Chubby 2", *r.Matched.Model)
	assert.Equal(t, types.StrategyKnownBrush, *r.Matched.MatchedBy)
	assert.Equal(t, types.MatchTypeRegex, *r.Matched.MatchType)

	assert.Equal(t, "Simpson", *r.Matched.Handle.Brand)
	assert.Equal(t, "Chubby 2", *r.Matched.Handle.Model)
	assert.Equal(t, "Simpson", *r.Matched.Knot.Brand)
	require.NotNil(t, r.Matched.Knot.Model)
	assert.Equal(t, "Chubby 2", *r.Matched.Knot.Model)
	require.NotNil(t, r.Matched.Knot.Fiber)
	assert.Equal(t, types.FiberBadger, *r.Matched.Knot.Fiber)
	require.NotNil(t, r.Matched.Knot.KnotSizeMM)
	assert.Equal(t, 27.0, *r.Matched.Knot.KnotSizeMM)
}

func TestMatchDelimitedComposite(t *testing.T) {
	m := newMatcher(t, Config{})

	r := m.Match("Rad Dinosaur Creations - Jetson - 25mm Muhle STF")
	require.NotNil(t, r.Matched)

	// different makers on each side: no top-level identity
	assert.Nil(t, r.Matched.Brand)
	assert.Nil(t, r.Matched.Model)
	assert.Equal(t, types.StrategySplit, *r.Matched.MatchedBy)

	assert.Equal(t, "Rad Dinosaur Creations", *r.Matched.Handle.Brand)
	require.NotNil(t, r.Matched.Handle.Model)
	assert.Equal(t, "Jetson", *r.Matched.Handle.Model)
	assert.Equal(t, "Rad Dinosaur Creations - Jetson", *r.Matched.Handle.SourceText)

	assert.Equal(t, "Muhle", *r.Matched.Knot.Brand)
	require.NotNil(t, r.Matched.Knot.Model)
	assert.Equal(t, "STF", *r.Matched.Knot.Model)
	require.NotNil(t, r.Matched.Knot.Fiber)
	assert.Equal(t, types.FiberBadger, *r.Matched.Knot.Fiber)

	// 25mm in the text overrides the catalog default of 23
	require.NotNil(t, r.Matched.Knot.KnotSizeMM)
	assert.Equal(t, 25.0, *r.Matched.Knot.KnotSizeMM)
}

func TestMatchSameMakerPromotion(t *testing.T) {
	m := newMatcher(t, Config{})

	r := m.Match("Simpson Chubby 2 w/ Simpson knot")
	require.NotNil(t, r.Matched)

	// shared maker promotes the brand but never fabricates a model
	require.NotNil(t, r.Matched.Brand)
	assert.Equal(t, "Simpson", *r.Matched.Brand)
	assert.Nil(t, r.Matched.Model)

	require.NotNil(t, r.Matched.Handle.Model)
	assert.Equal(t, "Chubby 2", *r.Matched.Handle.Model)
	assert.Equal(t, "Simpson", *r.Matched.Knot.Brand)
	assert.Nil(t, r.Matched.Knot.Model)
	assert.Equal(t, types.StrategySplit, *r.Matched.MatchedBy)
}

func TestMatchHandleOnlyFallback(t *testing.T) {
	m := newMatcher(t, Config{})

	r := m.Match("Elite handle")
	require.NotNil(t, r.Matched)

	assert.Equal(t, types.StrategyKnownHandle, *r.Matched.MatchedBy)
	assert.Equal(t, types.MatchTypeBrand, *r.Matched.MatchType)
	assert.Nil(t, r.Matched.Brand)

	assert.Equal(t, "Elite", *r.Matched.Handle.Brand)
	assert.Nil(t, r.Matched.Handle.Model)

	// the knot section is present with null fields
	assert.Nil(t, r.Matched.Knot.Brand)
	assert.Nil(t, r.Matched.Knot.Model)
	assert.Nil(t, r.Matched.Knot.Fiber)
	assert.Nil(t, r.Matched.Knot.KnotSizeMM)
}

func TestMatchEmptyInput(t *testing.T) {
	m := newMatcher(t, Config{})

	for _, in := range []string{"", "   ", "\t\n"} {
		r := m.Match(in)
		require.NotNil(t, r, "input %q", in)
		assert.Equal(t, in, r.Original)
		assert.Equal(t, "", r.Normalized)
		assert.Nil(t, r.Matched)
	}
}

func TestMatchNonsenseInput(t *testing.T) {
	m := newMatcher(t, Config{})

	r := m.Match("xyzzyqqqnonsense12345")
	require.NotNil(t, r)
	assert.Equal(t, "xyzzyqqqnonsense12345", r.Normalized)
	assert.Nil(t, r.Matched)
}

func TestMatchIsIdempotent(t *testing.T) {
	m := newMatcher(t, Config{})

	inputs := []string{
		"Simpson Chubby 2",
		"Rad Dinosaur Creations - Jetson - 25mm Muhle STF",
		"Elite handle",
		"Zenith B26",
		"total garbage input",
	}
	for _, in := range inputs {
		first := m.Match(in)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, m.Match(in), "input %q", in)
		}
	}
}

func TestMatchNeverSharesCatalogState(t *testing.T) {
	m := newMatcher(t, Config{})

	// a size claim in one input must not leak into a later plain match
	r1 := m.Match("Zenith B26 31mm")
	require.NotNil(t, r1.Matched)

	r2 := m.Match("Zenith B26")
	require.NotNil(t, r2.Matched)
	require.NotNil(t, r2.Matched.Knot.KnotSizeMM)
	assert.Equal(t, 27.0, *r2.Matched.Knot.KnotSizeMM)
}

func TestMatchCacheHit(t *testing.T) {
	store := cache.NewMemory()
	confirmed := &types.BrushMatchResult{
		Original:   "Simpson Chubby 2",
		Normalized: "Simpson Chubby 2",
		Matched: &types.MatchedSections{
			Brand: types.Ptr("Simpson"),
			Model: types.Ptr("Chubby 2 Manchurian"),
			Handle: types.HandleRecord{
				Brand: types.Ptr("Simpson"),
				Model: types.Ptr("Chubby 2 Manchurian"),
			},
			Knot: types.KnotRecord{
				Brand: types.Ptr("Simpson"),
				Model: types.Ptr("Chubby 2 Manchurian"),
				Fiber: types.Ptr(types.FiberBadger),
			},
		},
	}
	require.NoError(t, store.Record("Simpson Chubby 2", confirmed))

	m := newMatcher(t, Config{Cache: store})
	r := m.Match("  Simpson   Chubby 2 ")
	require.NotNil(t, r.Matched)

	// the confirmed record wins over what the catalog would say
	assert.Equal(t, "Chubby 2 Manchurian", *r.Matched.Model)
	assert.Equal(t, types.StrategyCorrectMatches, *r.Matched.MatchedBy)
	assert.Equal(t, types.MatchTypeExact, *r.Matched.MatchType)
	assert.Equal(t, "  Simpson   Chubby 2 ", r.Original)
	assert.Equal(t, "Simpson Chubby 2", r.Normalized)
}

func TestMatchBypassCache(t *testing.T) {
	store := cache.NewMemory()
	require.NoError(t, store.Record("Simpson Chubby 2", &types.BrushMatchResult{
		Normalized: "Simpson Chubby 2",
		Matched: &types.MatchedSections{
			Model: types.Ptr("Confirmed Override"),
		},
	}))

	m := newMatcher(t, Config{Cache: store, BypassCache: true})
	r := m.Match("Simpson Chubby 2")
	require.NotNil(t, r.Matched)
	assert.Equal(t, "Chubby 2", *r.Matched.Model)
	assert.Equal(t, types.StrategyKnownBrush, *r.Matched.MatchedBy)
}

func TestMatchAllOrdering(t *testing.T) {
	m := newMatcher(t, Config{})

	scored := m.MatchAll("Elite handle")
	require.NotEmpty(t, scored)

	// descending by the same comparison Match uses
	for i := 1; i < len(scored); i++ {
		assert.False(t, better(scored[i], scored[i-1]),
			"candidate %d should not outrank candidate %d", i, i-1)
	}
	assert.Equal(t, types.StrategyKnownHandle, scored[0].Candidate.Strategy)

	// the "handle" keyword puts the handle interpretation strictly above
	// the knot interpretation of the same text
	var handleScore, knotScore float64
	for _, sc := range scored {
		switch sc.Candidate.Strategy {
		case types.StrategyKnownHandle:
			handleScore = sc.Score.Total
		case types.StrategyKnownKnot:
			knotScore = sc.Score.Total
		}
	}
	assert.Greater(t, handleScore, knotScore)
}

func TestMatchAllIncludesCacheCandidate(t *testing.T) {
	store := cache.NewMemory()
	require.NoError(t, store.Record("Simpson Chubby 2", &types.BrushMatchResult{
		Normalized: "Simpson Chubby 2",
		Matched: &types.MatchedSections{
			Brand: types.Ptr("Simpson"),
		},
	}))

	m := newMatcher(t, Config{Cache: store})
	scored := m.MatchAll("Simpson Chubby 2")
	require.NotEmpty(t, scored)

	// the exact candidate outranks every computed one
	assert.Equal(t, types.StrategyCorrectMatches, scored[0].Candidate.Strategy)
	assert.Equal(t, scorer.BaseExact, scored[0].Score.Total)

	assert.Nil(t, m.MatchAll(""))
}

func TestResolveKnotTextOverrides(t *testing.T) {
	m := newMatcher(t, Config{})

	stored := &types.KnotRecord{
		Brand:      types.Ptr("Muhle"),
		Model:      types.Ptr("STF"),
		Fiber:      types.Ptr(types.FiberBadger),
		KnotSizeMM: types.Ptr(23.0),
	}
	out := m.resolveKnot(stored, "25mm synthetic")
	require.NotNil(t, out)
	assert.Equal(t, types.FiberSynthetic, *out.Fiber)
	assert.Equal(t, 25.0, *out.KnotSizeMM)

	// the input record is never mutated or aliased
	assert.Equal(t, types.FiberBadger, *stored.Fiber)
	assert.Equal(t, 23.0, *stored.KnotSizeMM)
	assert.NotSame(t, stored.Fiber, out.Fiber)
	assert.NotSame(t, stored.KnotSizeMM, out.KnotSizeMM)
}

func TestBetterTieBreaks(t *testing.T) {
	sc := func(c *types.MatchCandidate, total float64) *ScoredCandidate {
		return &ScoredCandidate{Candidate: c, Score: scorer.Score{Total: total}}
	}
	composite := func(mt types.MatchType, rank int, pattern string) *types.MatchCandidate {
		return &types.MatchCandidate{
			MatchType:    mt,
			StrategyRank: rank,
			Pattern:      pattern,
			Handle:       &types.HandleRecord{Brand: types.Ptr("A")},
			Knot:         &types.KnotRecord{Brand: types.Ptr("B")},
		}
	}

	// higher score wins outright
	assert.True(t, better(
		sc(&types.MatchCandidate{MatchType: types.MatchTypeBrand}, 80),
		sc(&types.MatchCandidate{MatchType: types.MatchTypeExact}, 70)))

	// equal score: match type precedence
	assert.True(t, better(
		sc(&types.MatchCandidate{MatchType: types.MatchTypeRegex}, 70),
		sc(&types.MatchCandidate{MatchType: types.MatchTypeBrand}, 70)))

	// equal score and type: composite beats single-component
	assert.True(t, better(
		sc(composite(types.MatchTypeRegex, 5, "x"), 70),
		sc(&types.MatchCandidate{MatchType: types.MatchTypeRegex, StrategyRank: 1}, 70)))

	// then earlier-registered strategy
	assert.True(t, better(
		sc(composite(types.MatchTypeRegex, 1, "x"), 70),
		sc(composite(types.MatchTypeRegex, 2, "x"), 70)))

	// then longer pattern
	assert.True(t, better(
		sc(composite(types.MatchTypeRegex, 1, "longer pattern"), 70),
		sc(composite(types.MatchTypeRegex, 1, "short"), 70)))
}

func TestNewRequiresCatalog(t *testing.T) {
	_, err := New(Config{})
	assert.Error(t, err)
}
