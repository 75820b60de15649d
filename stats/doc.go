// Package stats computes per-entry performance extrema over a catalog.
//
// Extremes scans an entry's records for one attribute and returns the
// minimum and maximum recorded value with the RPM each was recorded at.
// Cache memoizes the derived pairs; the catalog is build-once read-only,
// so cached values never go stale.
package stats
