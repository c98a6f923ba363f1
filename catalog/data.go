package catalog

import "embed"

// Embedded per-vendor data files, built by the vendors' extraction scripts.
//
//go:embed data
var dataFS embed.FS

// DefaultSources are the shipped vendor sources, in merge order.
// The option functions are applied to every source (useful for Logger or a
// shared FS); use the per-vendor constructors to override individual paths.
func DefaultSources(optFns ...func(o *SourceOptions)) []Source {
	return []Source{
		NewDaddario(optFns...),
		NewStringjoy(optFns...),
		NewWorth(optFns...),
	}
}
