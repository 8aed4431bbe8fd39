package types

// CatalogEntry is one brand/model definition from a catalog section.
// Entries are immutable after load.
type CatalogEntry struct {
	Brand      string   // required
	Model      string   // empty for brand-only fallback entries
	Patterns   []string // ordered regex sources
	Fiber      *Fiber   // default fiber, knot-bearing entries only
	KnotSizeMM *float64 // default knot diameter in mm
	Priority   int      // lower = higher precedence; DefaultPriority when unset

	// Composite catalog entries (a known handle/knot pairing sold as one
	// product) carry explicit per-component identities.
	Handle *CatalogComponent
	Knot   *CatalogComponent
}

// CatalogComponent is the per-component identity of a composite entry.
type CatalogComponent struct {
	Brand      string
	Model      string
	Fiber      *Fiber
	KnotSizeMM *float64
}

// DefaultPriority is assigned to entries without an explicit priority field.
const DefaultPriority = 50

// HasModel reports whether the entry resolves to a specific model.
func (e *CatalogEntry) HasModel() bool {
	return e.Model != ""
}

// IsComposite reports whether the entry describes a known handle/knot pairing.
func (e *CatalogEntry) IsComposite() bool {
	return e.Handle != nil || e.Knot != nil
}
