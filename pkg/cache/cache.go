// Package cache implements the correct-match store: a human-curated mapping
// from normalized description text to a previously confirmed match result.
// The engine only reads it; writes come from review tooling.
package cache

import (
	"fmt"

	"github.com/wetshaving/brushmatch/pkg/types"
)

// SchemaVersion is bumped whenever the serialized result shape changes.
// Rows recorded under another version are treated as misses, never errors;
// cache corruption must not crash the pipeline.
const SchemaVersion = 2

// Cache is the correct-match store interface.
type Cache interface {
	// Lookup returns the confirmed result for normalized text, or nil on
	// a miss. Undecodable or out-of-date entries are misses.
	Lookup(normalized string) (*types.BrushMatchResult, error)

	// Record stores a human-confirmed result for normalized text,
	// replacing any previous entry.
	Record(normalized string, result *types.BrushMatchResult) error

	// Close releases underlying resources.
	Close() error
}

// Config for cache initialization.
type Config struct {
	// Path is the SQLite database path. ":memory:" selects the pure
	// in-memory implementation, useful for tests and one-shot runs.
	Path string
}

// New creates a Cache from config.
func New(cfg Config) (Cache, error) {
	if cfg.Path == "" {
		return nil, fmt.Errorf("cache path is required")
	}
	if cfg.Path == ":memory:" {
		return NewMemory(), nil
	}
	return NewSQLite(cfg.Path)
}

// valid reports whether a decoded result satisfies the output schema the
// engine guarantees: matched results always carry handle and knot sections
// with normalized text present.
func valid(normalized string, r *types.BrushMatchResult) bool {
	if r == nil || r.Matched == nil {
		return false
	}
	return r.Normalized == "" || r.Normalized == normalized
}
