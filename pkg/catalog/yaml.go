package catalog

// yamlComponent is the per-component identity of a composite entry.
type yamlComponent struct {
	Brand      string   `yaml:"brand"`
	Model      string   `yaml:"model,omitempty"`
	Fiber      string   `yaml:"fiber,omitempty"`
	KnotSizeMM *float64 `yaml:"knot_size_mm,omitempty"`
}

// yamlModel is one model definition under a brand.
type yamlModel struct {
	Model      string         `yaml:"model,omitempty"` // empty = brand-only fallback
	Patterns   []string       `yaml:"patterns"`
	Fiber      string         `yaml:"fiber,omitempty"`
	KnotSizeMM *float64       `yaml:"knot_size_mm,omitempty"`
	Priority   *int           `yaml:"priority,omitempty"`
	Handle     *yamlComponent `yaml:"handle,omitempty"`
	Knot       *yamlComponent `yaml:"knot,omitempty"`
}

// yamlBrand groups models under a brand. Brand-level fiber/size apply to
// models that do not set their own.
type yamlBrand struct {
	Brand      string      `yaml:"brand"`
	Fiber      string      `yaml:"fiber,omitempty"`
	KnotSizeMM *float64    `yaml:"knot_size_mm,omitempty"`
	Models     []yamlModel `yaml:"models"`
}

// yamlCatalogFile is the top-level structure of one catalog section file.
// Brands and models are lists, not maps, so declaration order is preserved
// for the pattern ordering tie-break.
type yamlCatalogFile struct {
	Brands []yamlBrand `yaml:"brands"`
}
