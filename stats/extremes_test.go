package stats

import (
	"testing"

	"github.com/hupe1980/dynoq/catalog"
	"github.com/hupe1980/dynoq/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var gtr = model.EntryKey{Year: 2010, Make: "Nissan", Model: "GT-R"}

func buildTestCatalog(t *testing.T, records []model.Record) *catalog.Catalog {
	t.Helper()

	b := catalog.NewBuilder()
	b.AddEntry(gtr)
	b.AddRecords(records)

	cat, err := b.Build()
	require.NoError(t, err)
	return cat
}

func TestExtremes(t *testing.T) {
	t.Run("min and max with RPM", func(t *testing.T) {
		cat := buildTestCatalog(t, []model.Record{
			{Entry: gtr, Attribute: model.AttributeHP, Value: 312.4, RPM: 3200},
			{Entry: gtr, Attribute: model.AttributeHP, Value: 485.1, RPM: 6400},
			{Entry: gtr, Attribute: model.AttributeHP, Value: 401.0, RPM: 5000},
		})

		pair, err := Extremes(cat, gtr, model.AttributeHP)
		require.NoError(t, err)
		assert.Equal(t, model.Sample{Value: 312.4, RPM: 3200}, pair.Min)
		assert.Equal(t, model.Sample{Value: 485.1, RPM: 6400}, pair.Max)
	})

	t.Run("single record is both extremes", func(t *testing.T) {
		cat := buildTestCatalog(t, []model.Record{
			{Entry: gtr, Attribute: model.AttributeBoost, Value: 14.8, RPM: 5600},
		})

		pair, err := Extremes(cat, gtr, model.AttributeBoost)
		require.NoError(t, err)
		assert.Equal(t, pair.Min, pair.Max)
	})

	t.Run("ties keep first record in load order", func(t *testing.T) {
		cat := buildTestCatalog(t, []model.Record{
			{Entry: gtr, Attribute: model.AttributeAFR, Value: 11.2, RPM: 6200},
			{Entry: gtr, Attribute: model.AttributeAFR, Value: 11.2, RPM: 4000},
			{Entry: gtr, Attribute: model.AttributeAFR, Value: 14.7, RPM: 2400},
			{Entry: gtr, Attribute: model.AttributeAFR, Value: 14.7, RPM: 2000},
		})

		pair, err := Extremes(cat, gtr, model.AttributeAFR)
		require.NoError(t, err)
		assert.Equal(t, 6200.0, pair.Min.RPM)
		assert.Equal(t, 2400.0, pair.Max.RPM)
	})

	t.Run("values are not rounded", func(t *testing.T) {
		cat := buildTestCatalog(t, []model.Record{
			{Entry: gtr, Attribute: model.AttributeHP, Value: 312.4567, RPM: 3200},
		})

		pair, err := Extremes(cat, gtr, model.AttributeHP)
		require.NoError(t, err)
		assert.Equal(t, 312.4567, pair.Max.Value)
	})

	t.Run("other attributes are ignored", func(t *testing.T) {
		cat := buildTestCatalog(t, []model.Record{
			{Entry: gtr, Attribute: model.AttributeHP, Value: 485, RPM: 6400},
			{Entry: gtr, Attribute: model.AttributeTorque, Value: 9999, RPM: 100},
		})

		pair, err := Extremes(cat, gtr, model.AttributeHP)
		require.NoError(t, err)
		assert.Equal(t, 485.0, pair.Max.Value)
	})

	t.Run("no data for attribute", func(t *testing.T) {
		cat := buildTestCatalog(t, []model.Record{
			{Entry: gtr, Attribute: model.AttributeHP, Value: 485, RPM: 6400},
		})

		_, err := Extremes(cat, gtr, model.AttributeBoost)
		var nd *ErrNoData
		require.ErrorAs(t, err, &nd)
		assert.Equal(t, gtr, nd.Key)
		assert.Equal(t, model.AttributeBoost, nd.Attribute)
		assert.Contains(t, err.Error(), "no Boost data recorded for 2010 Nissan GT-R")
	})

	t.Run("unknown entry", func(t *testing.T) {
		cat := buildTestCatalog(t, nil)

		missing := model.EntryKey{Year: 1999, Make: "None", Model: "None"}
		_, err := Extremes(cat, missing, model.AttributeHP)
		var ue *catalog.ErrUnknownEntry
		assert.ErrorAs(t, err, &ue)
	})

	t.Run("invalid attribute checked before entry", func(t *testing.T) {
		cat := buildTestCatalog(t, nil)

		missing := model.EntryKey{Year: 1999, Make: "None", Model: "None"}
		_, err := Extremes(cat, missing, model.Attribute(42))
		var ia *model.ErrInvalidAttribute
		assert.ErrorAs(t, err, &ia)
	})
}

func TestCache(t *testing.T) {
	cat := buildTestCatalog(t, []model.Record{
		{Entry: gtr, Attribute: model.AttributeHP, Value: 312.4, RPM: 3200},
		{Entry: gtr, Attribute: model.AttributeHP, Value: 485.1, RPM: 6400},
	})
	cache := NewCache(cat)

	t.Run("matches direct computation", func(t *testing.T) {
		want, err := Extremes(cat, gtr, model.AttributeHP)
		require.NoError(t, err)

		got, err := cache.Extremes(gtr, model.AttributeHP)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("repeated lookups are stable", func(t *testing.T) {
		first, err := cache.Extremes(gtr, model.AttributeHP)
		require.NoError(t, err)
		second, err := cache.Extremes(gtr, model.AttributeHP)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("errors are propagated", func(t *testing.T) {
		_, err := cache.Extremes(gtr, model.AttributeBoost)
		var nd *ErrNoData
		assert.ErrorAs(t, err, &nd)
	})

	t.Run("concurrent access", func(t *testing.T) {
		done := make(chan struct{})
		for i := 0; i < 8; i++ {
			go func() {
				defer func() { done <- struct{}{} }()
				for j := 0; j < 100; j++ {
					_, _ = cache.Extremes(gtr, model.AttributeHP)
				}
			}()
		}
		for i := 0; i < 8; i++ {
			<-done
		}
	})
}
