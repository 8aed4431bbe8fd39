package catalog

// Section identifies one catalog subset, each backing one strategy.
type Section string

const (
	SectionBrushes             Section = "brushes"
	SectionHandles             Section = "handles"
	SectionKnots               Section = "knots"
	SectionDeclarationGrooming Section = "declaration_grooming"
	SectionChiselAndHound      Section = "chisel_and_hound"
	SectionZenith              Section = "zenith"
	SectionOmegaSemogue        Section = "omega_semogue"
	SectionOtherBrushes        Section = "other_brushes"
)

// Sections lists all catalog sections in load order. Vendor sections sit
// between the known-brush catalog and the generic fallback; that order is
// also the strategy precedence order.
var Sections = []Section{
	SectionBrushes,
	SectionHandles,
	SectionKnots,
	SectionDeclarationGrooming,
	SectionChiselAndHound,
	SectionZenith,
	SectionOmegaSemogue,
	SectionOtherBrushes,
}
