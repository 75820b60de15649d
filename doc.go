// Package dynoq provides an embedded query engine for dyno-test catalogs.
//
// A catalog is a fixed set of entries (year, make, model) with recorded
// samples for HP, Torque, AFR and Boost, each paired with the engine RPM at
// which the value was observed. Dynoq answers per-entry range queries and
// head-to-head comparisons over that catalog.
//
// # Quick Start
//
// Build a catalog and query it:
//
//	b := catalog.NewBuilder()
//	b.AddEntry(model.EntryKey{Year: 2010, Make: "Nissan", Model: "GT-R"})
//	b.AddRecord(model.Record{
//	    Entry:     model.EntryKey{Year: 2010, Make: "Nissan", Model: "GT-R"},
//	    Attribute: model.AttributeHP,
//	    Value:     485,
//	    RPM:       6400,
//	})
//	cat, _ := b.Build()
//
//	dq, _ := dynoq.New(cat)
//	q, _ := dq.DataRange(catalog.Key(model.EntryKey{Year: 2010, Make: "Nissan", Model: "GT-R"}))
//	items, _ := q.Search()
//	for _, it := range items {
//	    fmt.Println(it) // MinHP, MaxHP, MinTorque, ...
//	}
//
// Entries can also be referenced positionally within the year or make
// grouping:
//
//	q, _ := dq.MaxData(catalog.YearPos(0)) // oldest entry
//
// Compare two entries attribute by attribute:
//
//	cmp, _ := dq.Comparison(catalog.YearPos(0), catalog.MakePos(3), model.Attributes()...)
//	lines, _ := cmp.Search()
//	for _, line := range lines {
//	    fmt.Println(line) // "HP: 2010 Nissan GT-R"
//	}
//
// # Persistence
//
// Catalogs persist as self-describing snapshots on any blobstore.BlobStore
// (memory, local disk, MinIO, S3 with optional DynamoDB commits):
//
//	store, _ := blobstore.NewLocalStore("./data")
//	_ = dq.Publish(ctx, store, "catalog-2026-08.snap")
//
//	dq2, _ := dynoq.OpenCurrent(ctx, store)
//
// # Concurrency
//
// A Dynoq handle is read-only after construction and safe for concurrent
// use. Catalog reloads are full replacements: open a new handle and swap it
// in; in-flight holders of the old handle keep the old catalog and its
// positional orderings.
package dynoq
