package catalog

import (
	"github.com/hupe1980/dynoq/model"
)

// Ref identifies an entry, either canonically by key or positionally
// within a grouping. Refs are resolved through Index.Resolve.
//
// The variant set is closed; construct refs with Key, YearPos or MakePos.
type Ref interface {
	resolve(ix *Index) (model.EntryKey, error)
}

// Key references an entry by its canonical (year, make, model) key.
func Key(key model.EntryKey) Ref {
	return keyRef{key: key}
}

// YearPos references the entry at the given position in the year grouping.
func YearPos(pos int) Ref {
	return posRef{grouping: GroupingYear, pos: pos}
}

// MakePos references the entry at the given position in the make grouping.
func MakePos(pos int) Ref {
	return posRef{grouping: GroupingMake, pos: pos}
}

type keyRef struct {
	key model.EntryKey
}

func (r keyRef) resolve(ix *Index) (model.EntryKey, error) {
	if !ix.cat.Contains(r.key) {
		return model.EntryKey{}, &ErrUnknownEntry{Key: r.key}
	}
	return r.key, nil
}

type posRef struct {
	grouping Grouping
	pos      int
}

func (r posRef) resolve(ix *Index) (model.EntryKey, error) {
	group := ix.grouping(r.grouping)
	if r.pos < 0 || r.pos >= len(group) {
		return model.EntryKey{}, &ErrPositionOutOfRange{
			Grouping: r.grouping,
			Position: r.pos,
			Count:    len(group),
		}
	}
	return group[r.pos], nil
}
