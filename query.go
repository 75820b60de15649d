package dynoq

import (
	"fmt"
	"time"

	"github.com/hupe1980/dynoq/catalog"
	"github.com/hupe1980/dynoq/model"
)

// Extreme selects which end of a recorded range an Item reports.
type Extreme uint8

const (
	// ExtremeMin is the smallest recorded value.
	ExtremeMin Extreme = iota
	// ExtremeMax is the largest recorded value.
	ExtremeMax
)

// String returns "Min" or "Max".
func (e Extreme) String() string {
	if e == ExtremeMax {
		return "Max"
	}
	return "Min"
}

// Item is one line of a range query result: an extreme value of one
// attribute, with the RPM at which it was recorded.
type Item struct {
	Attribute model.Attribute
	Extreme   Extreme
	Value     float64
	RPM       float64
}

// Label returns the item's display label, e.g. "MinHP" or "MaxBoost".
func (it Item) Label() string {
	return it.Extreme.String() + it.Attribute.String()
}

// String renders the item for display. Values print as recorded, without
// rounding.
func (it Item) String() string {
	return fmt.Sprintf("%s: %v @ %v RPM", it.Label(), it.Value, it.RPM)
}

const (
	searchKindDataRange = "data_range"
	searchKindMinData   = "min_data"
	searchKindMaxData   = "max_data"
)

// DataRange queries the minimum and maximum of every attribute for one
// entry.
type DataRange struct {
	dq  *Dynoq
	key model.EntryKey
}

// DataRange builds a range query for the referenced entry. Resolution is
// eager: an unknown key or out-of-range position fails here, not in Search.
func (dq *Dynoq) DataRange(ref catalog.Ref) (*DataRange, error) {
	key, err := dq.Resolve(ref)
	if err != nil {
		return nil, err
	}
	return &DataRange{dq: dq, key: key}, nil
}

// Entry returns the resolved entry key.
func (q *DataRange) Entry() model.EntryKey {
	return q.key
}

// Search returns two items per attribute (min then max) in the fixed
// attribute order: HP, Torque, AFR, Boost. Search is pure; repeated calls
// return equal results.
//
// It fails with *ErrNoData if any attribute has no records for the entry.
// There are no partial results.
func (q *DataRange) Search() ([]Item, error) {
	return q.dq.searchExtremes(searchKindDataRange, q.key, true, true)
}

// MinData queries the minimum of every attribute for one entry.
type MinData struct {
	dq  *Dynoq
	key model.EntryKey
}

// MinData builds a minima query for the referenced entry. Resolution is
// eager: an unknown key or out-of-range position fails here, not in Search.
func (dq *Dynoq) MinData(ref catalog.Ref) (*MinData, error) {
	key, err := dq.Resolve(ref)
	if err != nil {
		return nil, err
	}
	return &MinData{dq: dq, key: key}, nil
}

// Entry returns the resolved entry key.
func (q *MinData) Entry() model.EntryKey {
	return q.key
}

// Search returns one minimum item per attribute in the fixed attribute
// order. Error semantics match DataRange.Search.
func (q *MinData) Search() ([]Item, error) {
	return q.dq.searchExtremes(searchKindMinData, q.key, true, false)
}

// MaxData queries the maximum of every attribute for one entry.
type MaxData struct {
	dq  *Dynoq
	key model.EntryKey
}

// MaxData builds a maxima query for the referenced entry. Resolution is
// eager: an unknown key or out-of-range position fails here, not in Search.
func (dq *Dynoq) MaxData(ref catalog.Ref) (*MaxData, error) {
	key, err := dq.Resolve(ref)
	if err != nil {
		return nil, err
	}
	return &MaxData{dq: dq, key: key}, nil
}

// Entry returns the resolved entry key.
func (q *MaxData) Entry() model.EntryKey {
	return q.key
}

// Search returns one maximum item per attribute in the fixed attribute
// order. Error semantics match DataRange.Search.
func (q *MaxData) Search() ([]Item, error) {
	return q.dq.searchExtremes(searchKindMaxData, q.key, false, true)
}

func (dq *Dynoq) searchExtremes(kind string, key model.EntryKey, includeMin, includeMax bool) ([]Item, error) {
	start := time.Now()

	attrs := model.Attributes()
	n := len(attrs)
	if includeMin && includeMax {
		n *= 2
	}
	items := make([]Item, 0, n)

	for _, attr := range attrs {
		pair, err := dq.stats.Extremes(key, attr)
		if err != nil {
			err = translateError(err)
			dq.metrics.RecordSearch(kind, 0, time.Since(start), err)
			dq.logger.LogSearch(kind, key, 0, err)
			return nil, err
		}
		if includeMin {
			items = append(items, Item{
				Attribute: attr,
				Extreme:   ExtremeMin,
				Value:     pair.Min.Value,
				RPM:       pair.Min.RPM,
			})
		}
		if includeMax {
			items = append(items, Item{
				Attribute: attr,
				Extreme:   ExtremeMax,
				Value:     pair.Max.Value,
				RPM:       pair.Max.RPM,
			})
		}
	}

	dq.metrics.RecordSearch(kind, len(items), time.Since(start), nil)
	dq.logger.LogSearch(kind, key, len(items), nil)

	return items, nil
}
