package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/wetshaving/brushmatch/pkg/types"
	"gopkg.in/yaml.v3"
)

// Catalog holds every loaded section's entries in declaration order.
// Immutable after load; share freely across goroutines.
type Catalog struct {
	sections map[Section][]*types.CatalogEntry
}

// Loader reads catalog sections from YAML files.
type Loader struct {
	fs fs.FS
}

// NewLoader creates a loader backed by the embedded built-in catalogs.
func NewLoader() *Loader {
	return &Loader{fs: builtinCatalogFS}
}

// NewLoaderWithFS creates a loader with a custom filesystem. The filesystem
// must contain a catalogs/ directory with one <section>.yml per section.
func NewLoaderWithFS(fsys fs.FS) *Loader {
	return &Loader{fs: fsys}
}

// Load reads and validates every section. A missing section file means an
// empty section; a malformed file or pattern is fatal.
func (l *Loader) Load() (*Catalog, error) {
	c := &Catalog{sections: make(map[Section][]*types.CatalogEntry)}

	for _, section := range Sections {
		path := filepath.ToSlash(filepath.Join("catalogs", string(section)+".yml"))
		data, err := fs.ReadFile(l.fs, path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		entries, err := parseSection(section, data)
		if err != nil {
			return nil, err
		}
		c.sections[section] = entries
	}

	for _, section := range Sections {
		if err := ValidateSection(section, c.sections[section]); err != nil {
			return nil, err
		}
	}

	return c, nil
}

// LoadDir loads catalog sections from a directory of <section>.yml files,
// for user-supplied catalogs.
func LoadDir(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog dir %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog path %s is not a directory", dir)
	}

	c := &Catalog{sections: make(map[Section][]*types.CatalogEntry)}
	for _, section := range Sections {
		path := filepath.Join(dir, string(section)+".yml")
		data, err := os.ReadFile(path)
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}
		entries, err := parseSection(section, data)
		if err != nil {
			return nil, err
		}
		c.sections[section] = entries
	}

	for _, section := range Sections {
		if err := ValidateSection(section, c.sections[section]); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Section returns the entries of one section in declaration order.
func (c *Catalog) Section(s Section) []*types.CatalogEntry {
	return c.sections[s]
}

// EntryCount returns the total number of entries across all sections.
func (c *Catalog) EntryCount() int {
	n := 0
	for _, entries := range c.sections {
		n += len(entries)
	}
	return n
}

// parseSection converts one section file into catalog entries, applying
// brand-level fiber/size defaults to models that do not set their own.
func parseSection(section Section, data []byte) ([]*types.CatalogEntry, error) {
	var file yamlCatalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, &Error{Section: section, Err: fmt.Errorf("parsing YAML: %w", err)}
	}

	var entries []*types.CatalogEntry
	for _, b := range file.Brands {
		brandFiber, err := parseFiberField(section, b.Brand, "", b.Fiber)
		if err != nil {
			return nil, err
		}

		for _, m := range b.Models {
			fiber, err := parseFiberField(section, b.Brand, m.Model, m.Fiber)
			if err != nil {
				return nil, err
			}
			if fiber == nil {
				fiber = brandFiber
			}
			size := m.KnotSizeMM
			if size == nil {
				size = b.KnotSizeMM
			}
			priority := types.DefaultPriority
			if m.Priority != nil {
				priority = *m.Priority
			}

			entry := &types.CatalogEntry{
				Brand:      b.Brand,
				Model:      m.Model,
				Patterns:   m.Patterns,
				Fiber:      fiber,
				KnotSizeMM: size,
				Priority:   priority,
			}

			if entry.Handle, err = parseComponent(section, b.Brand, m.Model, m.Handle); err != nil {
				return nil, err
			}
			if entry.Knot, err = parseComponent(section, b.Brand, m.Model, m.Knot); err != nil {
				return nil, err
			}

			entries = append(entries, entry)
		}
	}
	return entries, nil
}

func parseComponent(section Section, brand, model string, yc *yamlComponent) (*types.CatalogComponent, error) {
	if yc == nil {
		return nil, nil
	}
	fiber, err := parseFiberField(section, brand, model, yc.Fiber)
	if err != nil {
		return nil, err
	}
	return &types.CatalogComponent{
		Brand:      yc.Brand,
		Model:      yc.Model,
		Fiber:      fiber,
		KnotSizeMM: yc.KnotSizeMM,
	}, nil
}

func parseFiberField(section Section, brand, model, raw string) (*types.Fiber, error) {
	if raw == "" {
		return nil, nil
	}
	f, ok := types.ParseFiber(raw)
	if !ok {
		return nil, &Error{
			Section: section,
			Brand:   brand,
			Model:   model,
			Err:     fmt.Errorf("unknown fiber %q", raw),
		}
	}
	return &f, nil
}
