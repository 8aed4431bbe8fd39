// Package scorer ranks match candidates. Every candidate gets a strategy
// base score plus additive modifier bonuses, each reported individually so
// a selection can be audited after the fact. All modifiers are rewards:
// evidence in the text that agrees with a candidate's own classification
// can only raise its score, never lower it.
package scorer

import (
	"math"

	"github.com/wetshaving/brushmatch/pkg/lexicon"
	"github.com/wetshaving/brushmatch/pkg/types"
)

// Modifier is one reported score adjustment.
type Modifier struct {
	Name        string  `json:"name"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description"`
}

// Score is the full breakdown for one candidate.
type Score struct {
	Total     float64    `json:"total"`
	Base      float64    `json:"base"`
	Modifiers float64    `json:"modifiers"`
	Details   []Modifier `json:"modifier_details"`
}

// Base scores by candidate origin. Exact cache hits outrank everything;
// complete catalog matches outrank composites; single-component fallbacks
// rank below both; the generic catalog ranks last.
const (
	BaseExact         = 100.0
	BaseKnownBrush    = 80.0
	BaseVendor        = 75.0
	BaseSplitComplete = 70.0
	BaseSplitPartial  = 55.0
	BaseComponent     = 50.0
	BaseOtherBrush    = 40.0

	// heuristicSplitDiscount lowers the base of splits the splitter was
	// not confident about, so a midpoint guess never shadows a dedicated
	// component match.
	heuristicSplitDiscount = 10.0
)

// Modifier weights.
const (
	weightFiberMatch     = 10.0
	weightSizeMatch      = 10.0
	weightIndicatorMatch = 15.0
	weightModelResolved  = 5.0
	specificityCap       = 15.0
	specificityPerChar   = 0.5
)

// Scorer computes candidate scores. Pure and deterministic: identical
// candidate and text always produce an identical breakdown.
type Scorer struct {
	lex *lexicon.Lexicon
}

// New creates a scorer sharing the given lexicon.
func New(lex *lexicon.Lexicon) *Scorer {
	return &Scorer{lex: lex}
}

// Score computes the full breakdown for a candidate against the original
// input text.
func (s *Scorer) Score(c *types.MatchCandidate, original string) Score {
	base := s.base(c)
	var details []Modifier

	if m, ok := s.fiberModifier(c, original); ok {
		details = append(details, m)
	}
	if m, ok := s.sizeModifier(c, original); ok {
		details = append(details, m)
	}
	if m, ok := s.indicatorModifier(c, original); ok {
		details = append(details, m)
	}
	details = append(details, s.modelModifiers(c)...)
	if m, ok := specificityModifier(c); ok {
		details = append(details, m)
	}

	var sum float64
	for _, m := range details {
		sum += m.Weight
	}
	return Score{
		Total:     base + sum,
		Base:      base,
		Modifiers: sum,
		Details:   details,
	}
}

func (s *Scorer) base(c *types.MatchCandidate) float64 {
	switch c.Strategy {
	case types.StrategyCorrectMatches:
		return BaseExact
	case types.StrategyKnownBrush:
		return BaseKnownBrush
	case types.StrategyDeclarationGrooming, types.StrategyChiselAndHound,
		types.StrategyZenith, types.StrategyOmegaSemogue:
		return BaseVendor
	case types.StrategySplit:
		base := BaseSplitPartial
		if c.IsComposite() {
			base = BaseSplitComplete
		}
		if c.SplitConfidence != "" && c.SplitConfidence != "high" {
			base -= heuristicSplitDiscount
		}
		return base
	case types.StrategyKnownKnot, types.StrategyKnownHandle:
		return BaseComponent
	case types.StrategyOtherBrush:
		return BaseOtherBrush
	}
	return BaseOtherBrush
}

// fiberModifier rewards a fiber keyword in the text that agrees with the
// candidate's fiber claim.
func (s *Scorer) fiberModifier(c *types.MatchCandidate, original string) (Modifier, bool) {
	if c.Knot == nil || c.Knot.Fiber == nil {
		return Modifier{}, false
	}
	fiber, ok := s.lex.Fiber(original)
	if !ok || fiber != *c.Knot.Fiber {
		return Modifier{}, false
	}
	return Modifier{
		Name:        "fiber_match",
		Weight:      weightFiberMatch,
		Description: "fiber keyword in text matches candidate fiber",
	}, true
}

// sizeModifier rewards an explicit size in the text consistent with the
// candidate's knot size.
func (s *Scorer) sizeModifier(c *types.MatchCandidate, original string) (Modifier, bool) {
	if c.Knot == nil || c.Knot.KnotSizeMM == nil {
		return Modifier{}, false
	}
	size, ok := s.lex.KnotSize(original)
	if !ok || math.Abs(size-*c.Knot.KnotSizeMM) > 0.5 {
		return Modifier{}, false
	}
	return Modifier{
		Name:        "size_match",
		Weight:      weightSizeMatch,
		Description: "size specification in text matches candidate knot size",
	}, true
}

// indicatorModifier rewards the literal words "handle" or "knot" when they
// agree with a single-component candidate's side. This is what lets
// "Elite handle" resolve as a handle rather than a knot.
func (s *Scorer) indicatorModifier(c *types.MatchCandidate, original string) (Modifier, bool) {
	handleOnly := c.Handle != nil && c.Handle.Brand != nil && (c.Knot == nil || c.Knot.Brand == nil)
	knotOnly := c.Knot != nil && c.Knot.Brand != nil && (c.Handle == nil || c.Handle.Brand == nil)

	switch {
	case handleOnly && s.lex.HasHandleIndicator(original):
		return Modifier{
			Name:        "handle_indicator",
			Weight:      weightIndicatorMatch,
			Description: `word "handle" in text matches handle-only candidate`,
		}, true
	case knotOnly && s.lex.HasKnotIndicator(original):
		return Modifier{
			Name:        "knot_indicator",
			Weight:      weightIndicatorMatch,
			Description: `word "knot" in text matches knot-only candidate`,
		}, true
	}
	return Modifier{}, false
}

// modelModifiers reward brand/model specificity: a candidate that resolved
// a concrete model beats one that stopped at the maker.
func (s *Scorer) modelModifiers(c *types.MatchCandidate) []Modifier {
	var out []Modifier
	if c.Handle != nil && c.Handle.Model != nil {
		out = append(out, Modifier{
			Name:        "handle_model",
			Weight:      weightModelResolved,
			Description: "handle resolved to a specific model",
		})
	}
	if c.Knot != nil && c.Knot.Model != nil {
		out = append(out, Modifier{
			Name:        "knot_model",
			Weight:      weightModelResolved,
			Description: "knot resolved to a specific model",
		})
	}
	return out
}

// specificityModifier rewards longer, more literal winning patterns.
func specificityModifier(c *types.MatchCandidate) (Modifier, bool) {
	n := len(longestPattern(c))
	if n == 0 {
		return Modifier{}, false
	}
	w := float64(n) * specificityPerChar
	if w > specificityCap {
		w = specificityCap
	}
	return Modifier{
		Name:        "pattern_specificity",
		Weight:      w,
		Description: "longer winning pattern implies a more specific match",
	}, true
}

func longestPattern(c *types.MatchCandidate) string {
	longest := ""
	consider := func(p *string) {
		if p != nil && len(*p) > len(longest) {
			longest = *p
		}
	}
	if c.Handle != nil {
		consider(c.Handle.Pattern)
	}
	if c.Knot != nil {
		consider(c.Knot.Pattern)
	}
	if longest == "" && c.Strategy != types.StrategySplit {
		longest = c.Pattern
	}
	return longest
}
