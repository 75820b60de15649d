// Package catalog provides the immutable dyno-record catalog and its entry
// index.
//
// A Catalog is built once via Builder and treated as read-only afterwards.
// Reloading data means building a new Catalog and Index, never mutating an
// existing one; positional indices are only stable for the lifetime of one
// loaded catalog.
//
// The Index maps user-facing identifiers to entries. Identifiers are either
// a canonical (year, make, model) key or an integer position within one of
// the two groupings (by year, by make):
//
//	ix := catalog.NewIndex(cat)
//	key, err := ix.Resolve(catalog.YearPos(40))
//	key, err = ix.Resolve(catalog.Key(model.EntryKey{Year: 2010, Make: "Nissan", Model: "GT-R"}))
package catalog
