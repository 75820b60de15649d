package catalog

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/dynoq/model"
)

// Catalog is an immutable, fully materialized collection of dyno records.
//
// Entries and records keep their load order; that order is the documented
// tie-break for grouping positions and for aggregation extrema. A Catalog
// is safe for concurrent readers.
type Catalog struct {
	entries  []model.EntryKey
	ordinals map[model.EntryKey]int // key -> load-order ordinal
	records  []model.Record
	byEntry  map[model.EntryKey][]int // record indexes per entry, load order

	// presence[attr] holds the entry ordinals that carry at least one
	// record for that attribute.
	presence [model.NumAttributes]*roaring.Bitmap
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// RecordCount returns the total number of records across all entries.
func (c *Catalog) RecordCount() int {
	return len(c.records)
}

// Entries returns all entry keys in catalog load order.
// The returned slice is a copy.
func (c *Catalog) Entries() []model.EntryKey {
	out := make([]model.EntryKey, len(c.entries))
	copy(out, c.entries)
	return out
}

// Contains reports whether the entry is part of the catalog.
func (c *Catalog) Contains(key model.EntryKey) bool {
	_, ok := c.ordinals[key]
	return ok
}

// AllRecords returns every record in catalog load order. The returned
// slice is a copy. Snapshots persist this order so tie-break semantics
// survive a save/load round trip.
func (c *Catalog) AllRecords() []model.Record {
	out := make([]model.Record, len(c.records))
	copy(out, c.records)
	return out
}

// Records returns the entry's records in load order. The returned slice is
// a copy; an unknown entry yields nil.
func (c *Catalog) Records(key model.EntryKey) []model.Record {
	idxs, ok := c.byEntry[key]
	if !ok {
		return nil
	}
	out := make([]model.Record, len(idxs))
	for i, ri := range idxs {
		out[i] = c.records[ri]
	}
	return out
}

// HasData reports whether the entry carries at least one record for the
// attribute. Unknown entries and invalid attributes report false.
func (c *Catalog) HasData(key model.EntryKey, attr model.Attribute) bool {
	if !attr.Valid() {
		return false
	}
	ord, ok := c.ordinals[key]
	if !ok {
		return false
	}
	return c.presence[attr].Contains(uint32(ord))
}

// EntriesWithData returns, in catalog load order, the entries that carry at
// least one record for the attribute.
func (c *Catalog) EntriesWithData(attr model.Attribute) []model.EntryKey {
	if !attr.Valid() {
		return nil
	}
	bm := c.presence[attr]
	out := make([]model.EntryKey, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		out = append(out, c.entries[it.Next()])
	}
	return out
}
