package dynoq

import (
	"errors"
	"fmt"

	"github.com/hupe1980/dynoq/catalog"
	"github.com/hupe1980/dynoq/model"
	"github.com/hupe1980/dynoq/stats"
)

var (
	// ErrNilCatalog is returned when a handle is constructed without a catalog.
	ErrNilCatalog = errors.New("catalog must not be nil")

	// ErrEmptyAttributeSet is returned when a comparison names no attributes.
	ErrEmptyAttributeSet = errors.New("attribute set must not be empty")
)

// ErrUnknownEntry indicates an identifier with no match in the catalog.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrUnknownEntry struct {
	Key   model.EntryKey
	cause error
}

func (e *ErrUnknownEntry) Error() string {
	return fmt.Sprintf("unknown entry: %s", e.Key.DisplayName())
}

func (e *ErrUnknownEntry) Unwrap() error { return e.cause }

// ErrPositionOutOfRange indicates a positional index outside [0, count)
// for its grouping.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrPositionOutOfRange struct {
	Grouping catalog.Grouping
	Position int
	Count    int
	cause    error
}

func (e *ErrPositionOutOfRange) Error() string {
	return fmt.Sprintf("position %d out of range [0, %d) for %s grouping", e.Position, e.Count, e.Grouping)
}

func (e *ErrPositionOutOfRange) Unwrap() error { return e.cause }

// ErrNoData indicates an entry with zero records for a requested attribute.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrNoData struct {
	Key       model.EntryKey
	Attribute model.Attribute
	cause     error
}

func (e *ErrNoData) Error() string {
	return fmt.Sprintf("no %s data recorded for %s", e.Attribute, e.Key.DisplayName())
}

func (e *ErrNoData) Unwrap() error { return e.cause }

// ErrInvalidAttribute indicates an attribute outside the fixed catalog set.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrInvalidAttribute struct {
	Name  string
	cause error
}

func (e *ErrInvalidAttribute) Error() string {
	return fmt.Sprintf("invalid attribute: %q", e.Name)
}

func (e *ErrInvalidAttribute) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var ue *catalog.ErrUnknownEntry
	if errors.As(err, &ue) {
		return &ErrUnknownEntry{Key: ue.Key, cause: err}
	}
	var pr *catalog.ErrPositionOutOfRange
	if errors.As(err, &pr) {
		return &ErrPositionOutOfRange{Grouping: pr.Grouping, Position: pr.Position, Count: pr.Count, cause: err}
	}
	var nd *stats.ErrNoData
	if errors.As(err, &nd) {
		return &ErrNoData{Key: nd.Key, Attribute: nd.Attribute, cause: err}
	}
	var ia *model.ErrInvalidAttribute
	if errors.As(err, &ia) {
		return &ErrInvalidAttribute{Name: ia.Name, cause: err}
	}

	return err
}
