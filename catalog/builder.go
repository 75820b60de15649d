package catalog

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/dynoq/model"
)

// Builder accumulates entries and records and produces an immutable
// Catalog. Load order is preserved: the order of AddEntry calls defines
// entry ordinals, the order of AddRecord calls defines record order.
//
// Builder is not safe for concurrent use; build the catalog once, then
// share the Catalog freely.
type Builder struct {
	entries  []model.EntryKey
	ordinals map[model.EntryKey]int
	records  []model.Record
}

// NewBuilder creates an empty catalog builder.
func NewBuilder() *Builder {
	return &Builder{
		ordinals: make(map[model.EntryKey]int),
	}
}

// AddEntry declares an entry. Re-declaring a key is a no-op; the first
// declaration keeps its load-order ordinal.
func (b *Builder) AddEntry(key model.EntryKey) *Builder {
	if _, ok := b.ordinals[key]; ok {
		return b
	}
	b.ordinals[key] = len(b.entries)
	b.entries = append(b.entries, key)
	return b
}

// AddRecord appends a record. The record's entry must be declared via
// AddEntry before Build; otherwise Build fails with *ErrOrphanRecord.
func (b *Builder) AddRecord(rec model.Record) *Builder {
	b.records = append(b.records, rec)
	return b
}

// AddRecords appends records in order.
func (b *Builder) AddRecords(recs []model.Record) *Builder {
	b.records = append(b.records, recs...)
	return b
}

// Build validates the accumulated data and returns the immutable Catalog.
//
// Every record must resolve to a declared entry; the first orphan found
// (in record load order) fails the build.
func (b *Builder) Build() (*Catalog, error) {
	c := &Catalog{
		entries:  make([]model.EntryKey, len(b.entries)),
		ordinals: make(map[model.EntryKey]int, len(b.entries)),
		records:  make([]model.Record, len(b.records)),
		byEntry:  make(map[model.EntryKey][]int, len(b.entries)),
	}
	copy(c.entries, b.entries)
	for k, v := range b.ordinals {
		c.ordinals[k] = v
	}
	copy(c.records, b.records)

	for i := range c.presence {
		c.presence[i] = roaring.New()
	}

	for i, rec := range c.records {
		ord, ok := c.ordinals[rec.Entry]
		if !ok {
			return nil, &ErrOrphanRecord{Record: rec}
		}
		if !rec.Attribute.Valid() {
			return nil, &model.ErrInvalidAttribute{Name: rec.Attribute.String()}
		}
		c.byEntry[rec.Entry] = append(c.byEntry[rec.Entry], i)
		c.presence[rec.Attribute].Add(uint32(ord))
	}

	return c, nil
}
