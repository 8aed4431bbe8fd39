package types

import "strings"

// Fiber is the knot material classification.
type Fiber string

const (
	FiberBadger    Fiber = "Badger"
	FiberBoar      Fiber = "Boar"
	FiberSynthetic Fiber = "Synthetic"
	FiberMixed     Fiber = "Mixed"
)

// ParseFiber converts a catalog or user-supplied fiber name to a Fiber.
// Returns false for unrecognized values.
func ParseFiber(s string) (Fiber, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "badger":
		return FiberBadger, true
	case "boar":
		return FiberBoar, true
	case "synthetic":
		return FiberSynthetic, true
	case "mixed":
		return FiberMixed, true
	}
	return "", false
}
