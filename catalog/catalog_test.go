package catalog

import (
	"testing"

	"github.com/hupe1980/dynoq/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	gtr = model.EntryKey{Year: 2010, Make: "Nissan", Model: "GT-R"}
	sti = model.EntryKey{Year: 2008, Make: "Subaru", Model: "WRX STI"}
	evo = model.EntryKey{Year: 2008, Make: "Mitsubishi", Model: "Evo X"}
)

func buildTestCatalog(t *testing.T) *Catalog {
	t.Helper()

	b := NewBuilder()
	b.AddEntry(gtr).AddEntry(sti).AddEntry(evo)
	b.AddRecords([]model.Record{
		{Entry: gtr, Attribute: model.AttributeHP, Value: 485, RPM: 6400},
		{Entry: gtr, Attribute: model.AttributeHP, Value: 312, RPM: 3200},
		{Entry: gtr, Attribute: model.AttributeBoost, Value: 14.8, RPM: 5600},
		{Entry: sti, Attribute: model.AttributeHP, Value: 289, RPM: 5800},
		{Entry: evo, Attribute: model.AttributeTorque, Value: 300, RPM: 4000},
	})

	cat, err := b.Build()
	require.NoError(t, err)
	return cat
}

func TestBuilder(t *testing.T) {
	t.Run("preserves load order", func(t *testing.T) {
		cat := buildTestCatalog(t)
		assert.Equal(t, []model.EntryKey{gtr, sti, evo}, cat.Entries())
		assert.Equal(t, 3, cat.Len())
		assert.Equal(t, 5, cat.RecordCount())
	})

	t.Run("duplicate entry collapses to first", func(t *testing.T) {
		b := NewBuilder()
		b.AddEntry(gtr).AddEntry(sti).AddEntry(gtr)
		cat, err := b.Build()
		require.NoError(t, err)
		assert.Equal(t, []model.EntryKey{gtr, sti}, cat.Entries())
	})

	t.Run("orphan record fails build", func(t *testing.T) {
		b := NewBuilder()
		b.AddEntry(gtr)
		b.AddRecord(model.Record{Entry: sti, Attribute: model.AttributeHP, Value: 289, RPM: 5800})

		_, err := b.Build()
		var orphan *ErrOrphanRecord
		require.ErrorAs(t, err, &orphan)
		assert.Equal(t, sti, orphan.Record.Entry)
	})

	t.Run("invalid attribute fails build", func(t *testing.T) {
		b := NewBuilder()
		b.AddEntry(gtr)
		b.AddRecord(model.Record{Entry: gtr, Attribute: model.Attribute(99), Value: 1, RPM: 1})

		_, err := b.Build()
		var ia *model.ErrInvalidAttribute
		assert.ErrorAs(t, err, &ia)
	})

	t.Run("empty catalog builds", func(t *testing.T) {
		cat, err := NewBuilder().Build()
		require.NoError(t, err)
		assert.Equal(t, 0, cat.Len())
		assert.Empty(t, cat.Entries())
	})
}

func TestCatalogRecords(t *testing.T) {
	cat := buildTestCatalog(t)

	t.Run("per entry in load order", func(t *testing.T) {
		recs := cat.Records(gtr)
		require.Len(t, recs, 3)
		assert.Equal(t, 485.0, recs[0].Value)
		assert.Equal(t, 312.0, recs[1].Value)
		assert.Equal(t, model.AttributeBoost, recs[2].Attribute)
	})

	t.Run("unknown entry yields nothing", func(t *testing.T) {
		assert.Empty(t, cat.Records(model.EntryKey{Year: 1999, Make: "None", Model: "None"}))
	})

	t.Run("all records keep global load order", func(t *testing.T) {
		all := cat.AllRecords()
		require.Len(t, all, 5)
		assert.Equal(t, gtr, all[0].Entry)
		assert.Equal(t, evo, all[4].Entry)
	})
}

func TestCatalogPresence(t *testing.T) {
	cat := buildTestCatalog(t)

	t.Run("has data", func(t *testing.T) {
		assert.True(t, cat.HasData(gtr, model.AttributeHP))
		assert.True(t, cat.HasData(gtr, model.AttributeBoost))
		assert.False(t, cat.HasData(gtr, model.AttributeTorque))
		assert.False(t, cat.HasData(sti, model.AttributeBoost))
	})

	t.Run("entries with data in load order", func(t *testing.T) {
		assert.Equal(t, []model.EntryKey{gtr, sti}, cat.EntriesWithData(model.AttributeHP))
		assert.Equal(t, []model.EntryKey{evo}, cat.EntriesWithData(model.AttributeTorque))
		assert.Empty(t, cat.EntriesWithData(model.AttributeAFR))
	})
}

func TestCatalogEntriesCopy(t *testing.T) {
	cat := buildTestCatalog(t)

	entries := cat.Entries()
	entries[0] = model.EntryKey{Year: 1, Make: "x", Model: "y"}
	assert.Equal(t, gtr, cat.Entries()[0])
}
