package catalog

import (
	"slices"
	"strings"

	"github.com/hupe1980/dynoq/model"
)

// Grouping names one of the two ordered entry partitions used to derive
// positional indices.
type Grouping uint8

const (
	// GroupingYear orders entries by year.
	GroupingYear Grouping = iota
	// GroupingMake orders entries by make.
	GroupingMake
)

// String returns "year" or "make".
func (g Grouping) String() string {
	switch g {
	case GroupingYear:
		return "year"
	case GroupingMake:
		return "make"
	default:
		return "unknown"
	}
}

// Index maps user-facing identifiers (canonical keys or grouping
// positions) to catalog entries.
//
// Groupings sort by their single key only (year, or make); entries that
// compare equal keep catalog load order. There is no secondary sort, so
// positions are reproducible across repeated queries against the same
// loaded catalog. They are NOT stable across catalog reloads: a reload
// builds a new Index, and in-flight holders of the old one keep the old
// positions.
type Index struct {
	cat    *Catalog
	byYear []model.EntryKey
	byMake []model.EntryKey
}

// NewIndex builds the lookup structures for the catalog. The Index is
// read-only after construction and safe for concurrent use.
func NewIndex(cat *Catalog) *Index {
	byYear := cat.Entries()
	slices.SortStableFunc(byYear, func(a, b model.EntryKey) int {
		return a.Year - b.Year
	})

	byMake := cat.Entries()
	slices.SortStableFunc(byMake, func(a, b model.EntryKey) int {
		return strings.Compare(a.Make, b.Make)
	})

	return &Index{
		cat:    cat,
		byYear: byYear,
		byMake: byMake,
	}
}

// Catalog returns the catalog this index was built from.
func (ix *Index) Catalog() *Catalog {
	return ix.cat
}

// ByYear returns the year grouping: all entries ordered by year, position
// 0..count-1. The returned slice is a copy.
func (ix *Index) ByYear() []model.EntryKey {
	out := make([]model.EntryKey, len(ix.byYear))
	copy(out, ix.byYear)
	return out
}

// ByMake returns the make grouping: all entries ordered by make, position
// 0..count-1. The returned slice is a copy.
func (ix *Index) ByMake() []model.EntryKey {
	out := make([]model.EntryKey, len(ix.byMake))
	copy(out, ix.byMake)
	return out
}

// Resolve maps an identifier to its entry key.
//
// It fails with *ErrUnknownEntry if a canonical key has no catalog match,
// and with *ErrPositionOutOfRange if a positional index falls outside
// [0, count) for its grouping.
func (ix *Index) Resolve(ref Ref) (model.EntryKey, error) {
	return ref.resolve(ix)
}

func (ix *Index) grouping(g Grouping) []model.EntryKey {
	if g == GroupingMake {
		return ix.byMake
	}
	return ix.byYear
}
