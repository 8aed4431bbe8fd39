package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wetshaving/brushmatch/pkg/catalog"
	"github.com/wetshaving/brushmatch/pkg/types"
)

func newRegistry(t *testing.T) *Registry {
	t.Helper()
	c, err := catalog.NewLoader().Load()
	require.NoError(t, err)
	compiled, err := catalog.Compile(c)
	require.NoError(t, err)
	return NewRegistry(compiled)
}

func findStrategy(t *testing.T, list []Strategy, name string) Strategy {
	t.Helper()
	for _, s := range list {
		if s.Name() == name {
			return s
		}
	}
	t.Fatalf("strategy %s not registered", name)
	return nil
}

func TestKnownBrushModelMatch(t *testing.T) {
	reg := newRegistry(t)
	kb := findStrategy(t, reg.Complete, types.StrategyKnownBrush)

	c := kb.Match("Simpson Chubby 2")
	require.NotNil(t, c)
	assert.Equal(t, types.StrategyKnownBrush, c.Strategy)
	assert.Equal(t, types.MatchTypeRegex, c.MatchType)
	require.NotNil(t, c.Brand)
	assert.Equal(t, "Simpson", *c.Brand)
	require.NotNil(t, c.Model)
	assert.Equal(t, "Chubby 2", *c.Model)

	// complete matches populate both sections from the same entry
	require.NotNil(t, c.Handle)
	require.NotNil(t, c.Knot)
	assert.Equal(t, "Simpson", *c.Handle.Brand)
	assert.Equal(t, "Simpson", *c.Knot.Brand)
	require.NotNil(t, c.Knot.Fiber)
	assert.Equal(t, types.FiberBadger, *c.Knot.Fiber)
	require.NotNil(t, c.Knot.KnotSizeMM)
	assert.Equal(t, 27.0, *c.Knot.KnotSizeMM)
}

func TestKnownBrushBrandOnlyMatch(t *testing.T) {
	reg := newRegistry(t)
	kb := findStrategy(t, reg.Complete, types.StrategyKnownBrush)

	c := kb.Match("a Simpson of some kind")
	require.NotNil(t, c)
	assert.Equal(t, types.MatchTypeBrand, c.MatchType)
	require.NotNil(t, c.Brand)
	assert.Equal(t, "Simpson", *c.Brand)
	assert.Nil(t, c.Model)
	assert.Nil(t, c.Handle.Model)
	assert.Nil(t, c.Knot.Model)
}

func TestModelOutranksBrandFallback(t *testing.T) {
	reg := newRegistry(t)
	kb := findStrategy(t, reg.Complete, types.StrategyKnownBrush)

	// both the brand-only "simpson" pattern and the model pattern fire;
	// first-match-wins order must pick the model
	c := kb.Match("Simpson Trafalgar T2")
	require.NotNil(t, c)
	require.NotNil(t, c.Model)
	assert.Equal(t, "Trafalgar T2", *c.Model)
	assert.Equal(t, types.MatchTypeRegex, c.MatchType)
}

func TestMatchCaseInsensitive(t *testing.T) {
	reg := newRegistry(t)
	kb := findStrategy(t, reg.Complete, types.StrategyKnownBrush)

	for _, text := range []string{"SIMPSON CHUBBY 2", "simpson chubby 2", "Simpson chubby 2"} {
		c := kb.Match(text)
		require.NotNil(t, c, "text %q", text)
		assert.Equal(t, "Chubby 2", *c.Model)
	}
}

func TestNoMatchReturnsNil(t *testing.T) {
	reg := newRegistry(t)

	for _, s := range reg.Complete {
		assert.Nil(t, s.Match("xyzzyqqqnonsense12345"), "strategy %s", s.Name())
		assert.Nil(t, s.Match(""), "strategy %s on empty", s.Name())
		assert.Nil(t, s.Match("   "), "strategy %s on blank", s.Name())
	}
}

func TestVendorStrategies(t *testing.T) {
	reg := newRegistry(t)

	cases := []struct {
		strategy string
		text     string
		brand    string
		model    string
		fiber    types.Fiber
	}{
		{types.StrategyDeclarationGrooming, "Declaration Grooming B3", "Declaration Grooming", "B3", types.FiberBadger},
		{types.StrategyChiselAndHound, "C&H v21", "Chisel & Hound", "v21", types.FiberBadger},
		{types.StrategyZenith, "Zenith B26", "Zenith", "B26", types.FiberBoar},
		{types.StrategyOmegaSemogue, "Omega 10048", "Omega", "10048", types.FiberBoar},
	}
	for _, tc := range cases {
		s := findStrategy(t, reg.Complete, tc.strategy)
		c := s.Match(tc.text)
		require.NotNil(t, c, "strategy %s text %q", tc.strategy, tc.text)
		assert.Equal(t, tc.brand, *c.Brand)
		require.NotNil(t, c.Model, "strategy %s", tc.strategy)
		assert.Equal(t, tc.model, *c.Model)
		require.NotNil(t, c.Knot.Fiber)
		assert.Equal(t, tc.fiber, *c.Knot.Fiber)
	}
}

func TestKnownHandlePopulatesHandleOnly(t *testing.T) {
	reg := newRegistry(t)

	c := reg.HandleOnly.Match("Rad Dinosaur Creations Jetson")
	require.NotNil(t, c)
	assert.Equal(t, types.StrategyKnownHandle, c.Strategy)
	assert.Nil(t, c.Brand)
	assert.Nil(t, c.Knot)
	require.NotNil(t, c.Handle)
	assert.Equal(t, "Rad Dinosaur Creations", *c.Handle.Brand)
	require.NotNil(t, c.Handle.Model)
	assert.Equal(t, "Jetson", *c.Handle.Model)
	assert.Equal(t, types.StrategyKnownHandle, *c.Handle.MatchedBy)
}

func TestKnownKnotPopulatesKnotOnly(t *testing.T) {
	reg := newRegistry(t)

	c := reg.KnotOnly.Match("26mm Maggard SHD")
	require.NotNil(t, c)
	assert.Equal(t, types.StrategyKnownKnot, c.Strategy)
	assert.Nil(t, c.Brand)
	assert.Nil(t, c.Handle)
	require.NotNil(t, c.Knot)
	assert.Equal(t, "Maggard", *c.Knot.Brand)
	require.NotNil(t, c.Knot.Fiber)
	assert.Equal(t, types.FiberBadger, *c.Knot.Fiber)
}

func TestCompositeEntryOverrides(t *testing.T) {
	reg := newRegistry(t)
	kb := findStrategy(t, reg.Complete, types.StrategyKnownBrush)

	c := kb.Match("Muninn Woodworks BFM")
	require.NotNil(t, c)
	require.NotNil(t, c.Brand)
	assert.Equal(t, "Muninn Woodworks", *c.Brand)
	require.NotNil(t, c.Model)
	assert.Equal(t, "BFM", *c.Model)

	// components carry their own identities, not the top-level brand
	assert.Equal(t, "Muninn Woodworks", *c.Handle.Brand)
	assert.Nil(t, c.Handle.Model)
	assert.Equal(t, "Moti", *c.Knot.Brand)
	require.NotNil(t, c.Knot.Model)
	assert.Equal(t, "Motherlode", *c.Knot.Model)
	require.NotNil(t, c.Knot.KnotSizeMM)
	assert.Equal(t, 50.0, *c.Knot.KnotSizeMM)
	assert.Equal(t, types.MatchTypeRegex, c.MatchType)
}

func TestRegistryOrder(t *testing.T) {
	reg := newRegistry(t)

	names := make([]string, len(reg.Complete))
	for i, s := range reg.Complete {
		names[i] = s.Name()
	}
	assert.Equal(t, []string{
		types.StrategyKnownBrush,
		types.StrategyDeclarationGrooming,
		types.StrategyChiselAndHound,
		types.StrategyZenith,
		types.StrategyOmegaSemogue,
		types.StrategyOtherBrush,
	}, names)

	// split-side lists lead with their dedicated component strategy
	assert.Equal(t, types.StrategyKnownHandle, reg.Handle[0].Name())
	assert.Equal(t, types.StrategyKnownKnot, reg.Knot[0].Name())
}
