package model

import (
	"fmt"
)

// EntryKey is the composite identity of a dyno-test subject.
//
// An entry is unique per (year, make, model). Keys are comparable and can
// be used directly as map keys.
type EntryKey struct {
	Year  int    `json:"year"`
	Make  string `json:"make"`
	Model string `json:"model"`
}

// DisplayName returns the human-readable "year make model" form,
// e.g. "2010 Nissan GT-R". It is a pure formatting function.
func (k EntryKey) DisplayName() string {
	return fmt.Sprintf("%d %s %s", k.Year, k.Make, k.Model)
}

// String returns the display name.
func (k EntryKey) String() string {
	return k.DisplayName()
}

// Record is one (attribute, value, RPM) sample belonging to an entry.
// Records are immutable once loaded into a catalog.
type Record struct {
	Entry     EntryKey  `json:"entry"`
	Attribute Attribute `json:"attribute"`
	Value     float64   `json:"value"`
	RPM       float64   `json:"rpm"`
}

// Sample is a recorded attribute value together with the RPM it was
// recorded at.
type Sample struct {
	Value float64 `json:"value"`
	RPM   float64 `json:"rpm"`
}

// ExtremePair holds the minimum and maximum recorded Sample for one
// attribute of one entry. It is derived state; values carry full float
// precision with no rounding applied.
type ExtremePair struct {
	Min Sample `json:"min"`
	Max Sample `json:"max"`
}
