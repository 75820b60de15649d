package stats

import (
	"fmt"

	"github.com/hupe1980/dynoq/catalog"
	"github.com/hupe1980/dynoq/model"
)

// ErrNoData indicates an entry with zero records for a requested attribute.
type ErrNoData struct {
	Key       model.EntryKey
	Attribute model.Attribute
}

func (e *ErrNoData) Error() string {
	return fmt.Sprintf("no %s data recorded for %s", e.Attribute, e.Key.DisplayName())
}

// Extremes returns the minimum and maximum recorded value (with RPM) for
// one attribute of one entry.
//
// When multiple records tie for the minimum or maximum, the first record in
// catalog load order wins. Values are returned as recorded, with no
// rounding; formatting is a presentation concern.
//
// It fails with *catalog.ErrUnknownEntry for entries outside the catalog
// and with *ErrNoData when the entry has no records for the attribute.
func Extremes(cat *catalog.Catalog, key model.EntryKey, attr model.Attribute) (model.ExtremePair, error) {
	if !attr.Valid() {
		return model.ExtremePair{}, &model.ErrInvalidAttribute{Name: attr.String()}
	}
	if !cat.Contains(key) {
		return model.ExtremePair{}, &catalog.ErrUnknownEntry{Key: key}
	}

	var (
		pair  model.ExtremePair
		found bool
	)
	for _, rec := range cat.Records(key) {
		if rec.Attribute != attr {
			continue
		}
		s := model.Sample{Value: rec.Value, RPM: rec.RPM}
		if !found {
			pair = model.ExtremePair{Min: s, Max: s}
			found = true
			continue
		}
		// Strict comparisons keep the first record on ties.
		if s.Value < pair.Min.Value {
			pair.Min = s
		}
		if s.Value > pair.Max.Value {
			pair.Max = s
		}
	}

	if !found {
		return model.ExtremePair{}, &ErrNoData{Key: key, Attribute: attr}
	}
	return pair, nil
}
