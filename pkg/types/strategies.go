package types

// Strategy identifiers. These appear verbatim in result _matched_by fields,
// so they are part of the output contract.
const (
	StrategyCorrectMatches      = "correct_matches"
	StrategyKnownBrush          = "known_brush"
	StrategyKnownKnot           = "known_knot"
	StrategyKnownHandle         = "known_handle"
	StrategyDeclarationGrooming = "declaration_grooming"
	StrategyChiselAndHound      = "chisel_and_hound"
	StrategyZenith              = "zenith"
	StrategyOmegaSemogue        = "omega_semogue"
	StrategyOtherBrush          = "other_brush"
	StrategySplit               = "split"
)
