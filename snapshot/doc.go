// Package snapshot persists catalogs as self-describing snapshot files.
//
// A snapshot records the codec name and compression scheme in its header
// and carries a CRC32 checksum over the payload, so readers can select the
// right codec, detect accidental corruption, and refuse files written by a
// newer format version. Catalog load order is preserved across a round
// trip; extrema tie-breaks therefore survive save/load.
//
// Snapshots are written whole and read whole. There is no partial or lazy
// load: the data-loading boundary supplies a fully materialized catalog
// before any query runs.
package snapshot
