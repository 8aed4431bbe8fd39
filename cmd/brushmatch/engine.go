package main

import (
	"github.com/wetshaving/brushmatch"
)

// newEngine builds an engine from the persistent flags shared by the
// match, batch, and confirm commands.
func newEngine(extra ...brushmatch.Option) (*brushmatch.Engine, error) {
	var opts []brushmatch.Option
	if catalogDir != "" {
		opts = append(opts, brushmatch.WithCatalogDir(catalogDir))
	}
	if cachePath != "" {
		opts = append(opts, brushmatch.WithCachePath(cachePath))
	}
	opts = append(opts, extra...)
	return brushmatch.New(opts...)
}
