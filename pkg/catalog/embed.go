package catalog

import "embed"

// builtinCatalogFS embeds the built-in catalog sections. One YAML file per
// section, named after the section.
//
//go:embed catalogs/*.yml
var builtinCatalogFS embed.FS
