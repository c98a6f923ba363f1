// Package catalog builds the merged string catalog consumed by the tension
// calculations and the gauge-suggestion search.
//
// Each vendor ships its data in its own tabular shape; a Source normalizes
// one vendor's file into the common record schema (id, uw, gauge, group,
// group_id), namespacing its ids with a short source tag so they stay
// globally unique in the merged table. The merge fails loudly if two sources
// collide on ids or group-id namespaces; integrity problems are never
// deferred to query time.
//
// The merged catalog is immutable once built. Service caches one build per
// process and is safe for concurrent readers; the first build is guarded so
// concurrent first callers do not race to build it twice.
package catalog
