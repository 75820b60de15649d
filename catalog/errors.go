package catalog

import (
	"fmt"

	"github.com/hupe1980/dynoq/model"
)

// ErrUnknownEntry indicates an identifier with no match in the catalog.
type ErrUnknownEntry struct {
	Key model.EntryKey
}

func (e *ErrUnknownEntry) Error() string {
	return fmt.Sprintf("unknown entry: %s", e.Key.DisplayName())
}

// ErrPositionOutOfRange indicates a positional index outside [0, count)
// for its grouping.
type ErrPositionOutOfRange struct {
	Grouping Grouping
	Position int
	Count    int
}

func (e *ErrPositionOutOfRange) Error() string {
	return fmt.Sprintf("position %d out of range [0, %d) for %s grouping", e.Position, e.Count, e.Grouping)
}

// ErrOrphanRecord indicates a record whose entry is not declared in the
// catalog. Orphans are a load-time data error; Build fails rather than
// deferring the problem to query time.
type ErrOrphanRecord struct {
	Record model.Record
}

func (e *ErrOrphanRecord) Error() string {
	return fmt.Sprintf("orphan record: %s sample for undeclared entry %s",
		e.Record.Attribute, e.Record.Entry.DisplayName())
}
