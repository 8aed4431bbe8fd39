// Package strategy implements the catalog matching strategies. Each
// strategy tests normalized text against one compiled catalog section and
// returns a candidate or nil; nil is the normal negative result, never an
// error. The set of strategies is closed and registered once at startup.
package strategy

import (
	"github.com/wetshaving/brushmatch/pkg/catalog"
	"github.com/wetshaving/brushmatch/pkg/types"
)

// Strategy matches normalized text against one catalog subset.
type Strategy interface {
	// Name returns the strategy identifier used in _matched_by fields.
	Name() string

	// Match returns a candidate for the first pattern that fires, or nil.
	Match(normalized string) *types.MatchCandidate
}

// Kind selects how a catalog strategy populates candidate sections.
type Kind int

const (
	// KindComplete matches whole products: handle and knot both populated
	// from the entry (identically for single-maker entries, independently
	// for known composites).
	KindComplete Kind = iota

	// KindHandle matches handle makers: only the handle section populated.
	KindHandle

	// KindKnot matches knots: only the knot section populated, with fiber
	// and size defaults.
	KindKnot
)

// Registry is the fixed strategy registration list, built once at startup.
// Order within each list is the precedence order: the known-brush catalog
// first, vendor catalogs next in a fixed order, the generic fallback last.
type Registry struct {
	// Complete strategies match the full text as one product.
	Complete []Strategy

	// Handle strategies match the handle side of a split. Complete
	// strategies appear here too: a split side may reference a complete
	// catalog product as its handle.
	Handle []Strategy

	// Knot strategies match the knot side of a split.
	Knot []Strategy

	// HandleOnly and KnotOnly are the single-component strategies used by
	// the orchestrator's fallback when neither splitting nor complete-brush
	// matching produced anything.
	HandleOnly Strategy
	KnotOnly   Strategy
}

// NewRegistry builds the strategy set over a compiled catalog.
func NewRegistry(c *catalog.Compiled) *Registry {
	knownBrush := newCatalogStrategy(types.StrategyKnownBrush, KindComplete, c.Section(catalog.SectionBrushes), 1)
	dg := newCatalogStrategy(types.StrategyDeclarationGrooming, KindComplete, c.Section(catalog.SectionDeclarationGrooming), 2)
	ch := newCatalogStrategy(types.StrategyChiselAndHound, KindComplete, c.Section(catalog.SectionChiselAndHound), 3)
	zenith := newCatalogStrategy(types.StrategyZenith, KindComplete, c.Section(catalog.SectionZenith), 4)
	omega := newCatalogStrategy(types.StrategyOmegaSemogue, KindComplete, c.Section(catalog.SectionOmegaSemogue), 5)
	knownKnot := newCatalogStrategy(types.StrategyKnownKnot, KindKnot, c.Section(catalog.SectionKnots), 6)
	knownHandle := newCatalogStrategy(types.StrategyKnownHandle, KindHandle, c.Section(catalog.SectionHandles), 7)
	otherBrush := newCatalogStrategy(types.StrategyOtherBrush, KindComplete, c.Section(catalog.SectionOtherBrushes), 8)

	return &Registry{
		Complete:   []Strategy{knownBrush, dg, ch, zenith, omega, otherBrush},
		Handle:     []Strategy{knownHandle, knownBrush, dg, ch, zenith, omega, otherBrush},
		Knot:       []Strategy{knownKnot, knownBrush, dg, ch, zenith, omega, otherBrush},
		HandleOnly: knownHandle,
		KnotOnly:   knownKnot,
	}
}
