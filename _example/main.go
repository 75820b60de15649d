package main

import (
	"context"
	"fmt"
	"log"

	"github.com/hupe1980/dynoq"
	"github.com/hupe1980/dynoq/blobstore"
	"github.com/hupe1980/dynoq/catalog"
	"github.com/hupe1980/dynoq/model"
)

func main() {
	ctx := context.Background()

	gtr := model.EntryKey{Year: 2010, Make: "Nissan", Model: "GT-R"}
	sti := model.EntryKey{Year: 2008, Make: "Subaru", Model: "WRX STI"}

	b := catalog.NewBuilder()
	b.AddEntry(gtr)
	b.AddEntry(sti)
	b.AddRecords([]model.Record{
		{Entry: gtr, Attribute: model.AttributeHP, Value: 312.4, RPM: 3200},
		{Entry: gtr, Attribute: model.AttributeHP, Value: 485.1, RPM: 6400},
		{Entry: gtr, Attribute: model.AttributeTorque, Value: 298.7, RPM: 2800},
		{Entry: gtr, Attribute: model.AttributeTorque, Value: 434.2, RPM: 4200},
		{Entry: gtr, Attribute: model.AttributeAFR, Value: 11.2, RPM: 6200},
		{Entry: gtr, Attribute: model.AttributeAFR, Value: 14.7, RPM: 2400},
		{Entry: gtr, Attribute: model.AttributeBoost, Value: 5.3, RPM: 2600},
		{Entry: gtr, Attribute: model.AttributeBoost, Value: 14.8, RPM: 5600},

		{Entry: sti, Attribute: model.AttributeHP, Value: 188.9, RPM: 3000},
		{Entry: sti, Attribute: model.AttributeHP, Value: 289.6, RPM: 5800},
		{Entry: sti, Attribute: model.AttributeTorque, Value: 221.5, RPM: 2600},
		{Entry: sti, Attribute: model.AttributeTorque, Value: 302.8, RPM: 4000},
		{Entry: sti, Attribute: model.AttributeAFR, Value: 10.8, RPM: 5600},
		{Entry: sti, Attribute: model.AttributeAFR, Value: 14.5, RPM: 2200},
		{Entry: sti, Attribute: model.AttributeBoost, Value: 6.1, RPM: 2800},
		{Entry: sti, Attribute: model.AttributeBoost, Value: 17.2, RPM: 5200},
	})

	cat, err := b.Build()
	if err != nil {
		log.Fatal(err)
	}

	dq, err := dynoq.New(cat)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("--- Entries by year ---")
	for pos, key := range dq.EntriesByYear() {
		fmt.Printf("%d: %s\n", pos, key.DisplayName())
	}

	fmt.Println("\n--- Data range ---")
	q, err := dq.DataRange(catalog.Key(gtr))
	if err != nil {
		log.Fatal(err)
	}
	items, err := q.Search()
	if err != nil {
		log.Fatal(err)
	}
	for _, it := range items {
		fmt.Println(it)
	}

	fmt.Println("\n--- Comparison ---")
	cmp, err := dq.Comparison(catalog.YearPos(0), catalog.Key(gtr), model.Attributes()...)
	if err != nil {
		log.Fatal(err)
	}
	lines, err := cmp.Search()
	if err != nil {
		log.Fatal(err)
	}
	for _, line := range lines {
		fmt.Println(line)
	}

	fmt.Println("\n--- Snapshot round trip ---")
	store := blobstore.NewMemoryStore()
	if err := dq.Publish(ctx, store, "catalog-v1.snap"); err != nil {
		log.Fatal(err)
	}

	dq2, err := dynoq.OpenCurrent(ctx, store)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("reloaded %d entries\n", dq2.Len())
}
