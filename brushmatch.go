// Package brushmatch classifies free-text shaving brush descriptions into
// normalized catalog records identifying brand, model, fiber, knot size,
// and the distinct handle and knot components.
//
// # Basic Usage
//
// Create an engine with the builtin catalogs and match a description:
//
//	engine, err := brushmatch.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer engine.Close()
//
//	result := engine.Match("Simpson Chubby 2")
//	if result.Matched != nil {
//	    fmt.Printf("%s %s\n", *result.Matched.Brand, *result.Matched.Model)
//	}
//
// # With a correct-match cache
//
// A previously confirmed result short-circuits matching:
//
//	engine, err := brushmatch.New(brushmatch.WithCachePath("matches.db"))
package brushmatch

import (
	"fmt"

	"github.com/wetshaving/brushmatch/pkg/cache"
	"github.com/wetshaving/brushmatch/pkg/catalog"
	"github.com/wetshaving/brushmatch/pkg/matcher"
	"github.com/wetshaving/brushmatch/pkg/types"
)

// Re-export commonly used types so callers can import just
// "github.com/wetshaving/brushmatch" without subpackages.
type (
	// BrushMatchResult is the engine's output for one input string.
	BrushMatchResult = types.BrushMatchResult

	// MatchedSections is the structured payload of a successful match.
	MatchedSections = types.MatchedSections

	// HandleRecord is the handle section of a result.
	HandleRecord = types.HandleRecord

	// KnotRecord is the knot section of a result.
	KnotRecord = types.KnotRecord

	// Fiber is the knot material classification.
	Fiber = types.Fiber

	// MatchType describes how a result was produced.
	MatchType = types.MatchType

	// ScoredCandidate pairs a candidate with its score breakdown.
	ScoredCandidate = matcher.ScoredCandidate
)

// Re-export fiber and match type constants.
const (
	FiberBadger    = types.FiberBadger
	FiberBoar      = types.FiberBoar
	FiberSynthetic = types.FiberSynthetic
	FiberMixed     = types.FiberMixed

	MatchTypeExact = types.MatchTypeExact
	MatchTypeRegex = types.MatchTypeRegex
	MatchTypeAlias = types.MatchTypeAlias
	MatchTypeBrand = types.MatchTypeBrand
)

// Ptr returns a pointer to v, for building or editing result values whose
// nullable JSON fields are pointers.
func Ptr[T any](v T) *T { return types.Ptr(v) }

// Engine resolves brush descriptions. Safe for concurrent use.
type Engine struct {
	matcher *matcher.Matcher
	cache   cache.Cache
	config  *engineConfig
}

type engineConfig struct {
	catalog     *catalog.Catalog
	catalogDir  string
	cache       cache.Cache
	cachePath   string
	bypassCache bool
	logger      matcher.DebugLogger
}

// Option configures an Engine.
type Option func(*engineConfig)

// WithCatalog uses an already-loaded catalog instead of the builtin one.
func WithCatalog(c *catalog.Catalog) Option {
	return func(cfg *engineConfig) { cfg.catalog = c }
}

// WithCatalogDir loads catalog sections from a directory of <section>.yml
// files instead of the builtin catalogs.
func WithCatalogDir(dir string) Option {
	return func(cfg *engineConfig) { cfg.catalogDir = dir }
}

// WithCache uses the given correct-match cache.
func WithCache(c cache.Cache) Option {
	return func(cfg *engineConfig) { cfg.cache = c }
}

// WithCachePath opens a SQLite correct-match cache at path. Use ":memory:"
// for a non-persistent cache.
func WithCachePath(path string) Option {
	return func(cfg *engineConfig) { cfg.cachePath = path }
}

// WithBypassCache skips the cache fast path; every match runs the full
// strategy pipeline.
func WithBypassCache() Option {
	return func(cfg *engineConfig) { cfg.bypassCache = true }
}

// WithDebugLogger receives strategy selection diagnostics.
func WithDebugLogger(l matcher.DebugLogger) Option {
	return func(cfg *engineConfig) { cfg.logger = l }
}

// New creates an Engine. By default it loads the builtin catalogs and runs
// without a correct-match cache. Catalog problems (malformed patterns,
// unknown fibers, duplicates) are fatal here, never at match time.
func New(opts ...Option) (*Engine, error) {
	cfg := &engineConfig{}
	for _, opt := range opts {
		opt(cfg)
	}

	cat := cfg.catalog
	var err error
	switch {
	case cat != nil:
	case cfg.catalogDir != "":
		cat, err = catalog.LoadDir(cfg.catalogDir)
		if err != nil {
			return nil, fmt.Errorf("loading catalog: %w", err)
		}
	default:
		cat, err = catalog.NewLoader().Load()
		if err != nil {
			return nil, fmt.Errorf("loading builtin catalog: %w", err)
		}
	}

	compiled, err := catalog.Compile(cat)
	if err != nil {
		return nil, fmt.Errorf("compiling catalog: %w", err)
	}

	store := cfg.cache
	if store == nil && cfg.cachePath != "" {
		store, err = cache.New(cache.Config{Path: cfg.cachePath})
		if err != nil {
			return nil, fmt.Errorf("opening cache: %w", err)
		}
	}

	m, err := matcher.New(matcher.Config{
		Catalog:     compiled,
		Cache:       store,
		BypassCache: cfg.bypassCache,
		Logger:      cfg.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("creating matcher: %w", err)
	}

	return &Engine{matcher: m, cache: store, config: cfg}, nil
}

// Match resolves one description into a structured result. It is total:
// empty or unrecognized input yields an unmatched result, never an error.
func (e *Engine) Match(original string) *BrushMatchResult {
	return e.matcher.Match(original)
}

// MatchAll returns every scored candidate for a description in descending
// score order, for diagnostics and per-strategy comparison display.
func (e *Engine) MatchAll(original string) []*ScoredCandidate {
	return e.matcher.MatchAll(original)
}

// Confirm records a human-confirmed result in the correct-match cache.
// Returns an error when no cache is configured.
func (e *Engine) Confirm(original string, result *BrushMatchResult) error {
	if e.cache == nil {
		return fmt.Errorf("no correct-match cache configured")
	}
	return e.cache.Record(types.Normalize(original), result)
}

// Matcher exposes the underlying matcher for batch processing.
func (e *Engine) Matcher() *matcher.Matcher {
	return e.matcher
}

// Close releases cache resources. Always call Close when done.
func (e *Engine) Close() error {
	if e.cache != nil {
		return e.cache.Close()
	}
	return nil
}
