package dynoq

import (
	"testing"

	"github.com/hupe1980/dynoq/catalog"
	"github.com/hupe1980/dynoq/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComparison(t *testing.T) {
	// gtr has the higher maxima everywhere except AFR, which ties.
	dq := newTestDynoq(t)

	t.Run("winner per attribute", func(t *testing.T) {
		cmp, err := dq.Comparison(catalog.Key(gtr), catalog.Key(sti), model.AttributeHP, model.AttributeTorque)
		require.NoError(t, err)

		lines, err := cmp.Search()
		require.NoError(t, err)
		assert.Equal(t, []string{
			"HP: 2010 Nissan GT-R",
			"Torque: 2010 Nissan GT-R",
		}, lines)
	})

	t.Run("loser on the left still names the winner", func(t *testing.T) {
		cmp, err := dq.Comparison(catalog.Key(sti), catalog.Key(gtr), model.AttributeHP)
		require.NoError(t, err)

		lines, err := cmp.Search()
		require.NoError(t, err)
		assert.Equal(t, []string{"HP: 2010 Nissan GT-R"}, lines)
	})

	t.Run("ties prefer the first entry", func(t *testing.T) {
		cmp, err := dq.Comparison(catalog.Key(sti), catalog.Key(gtr), model.AttributeAFR)
		require.NoError(t, err)

		lines, err := cmp.Search()
		require.NoError(t, err)
		assert.Equal(t, []string{"AFR: 2008 Subaru WRX STI"}, lines)

		cmp, err = dq.Comparison(catalog.Key(gtr), catalog.Key(sti), model.AttributeAFR)
		require.NoError(t, err)

		lines, err = cmp.Search()
		require.NoError(t, err)
		assert.Equal(t, []string{"AFR: 2010 Nissan GT-R"}, lines)
	})

	t.Run("split winners across attributes", func(t *testing.T) {
		b := catalog.NewBuilder()
		b.AddEntry(gtr).AddEntry(sti)
		b.AddRecord(model.Record{Entry: gtr, Attribute: model.AttributeHP, Value: 500, RPM: 6400})
		b.AddRecord(model.Record{Entry: sti, Attribute: model.AttributeHP, Value: 400, RPM: 6000})
		b.AddRecord(model.Record{Entry: gtr, Attribute: model.AttributeTorque, Value: 300, RPM: 4200})
		b.AddRecord(model.Record{Entry: sti, Attribute: model.AttributeTorque, Value: 350, RPM: 3800})
		cat, err := b.Build()
		require.NoError(t, err)

		split, err := New(cat)
		require.NoError(t, err)

		cmp, err := split.Comparison(catalog.Key(gtr), catalog.Key(sti), model.AttributeHP, model.AttributeTorque)
		require.NoError(t, err)

		lines, err := cmp.Search()
		require.NoError(t, err)
		assert.Equal(t, []string{
			"HP: 2010 Nissan GT-R",
			"Torque: 2008 Subaru WRX STI",
		}, lines)
	})

	t.Run("attribute order follows construction", func(t *testing.T) {
		cmp, err := dq.Comparison(catalog.Key(gtr), catalog.Key(sti), model.AttributeBoost, model.AttributeHP)
		require.NoError(t, err)

		lines, err := cmp.Search()
		require.NoError(t, err)
		require.Len(t, lines, 2)
		assert.Contains(t, lines[0], "Boost: ")
		assert.Contains(t, lines[1], "HP: ")
	})

	t.Run("positional references resolve eagerly", func(t *testing.T) {
		cmp, err := dq.Comparison(catalog.YearPos(0), catalog.MakePos(0), model.AttributeHP)
		require.NoError(t, err)

		a, b := cmp.Entries()
		assert.Equal(t, sti, a)
		assert.Equal(t, gtr, b)
	})

	t.Run("search is idempotent", func(t *testing.T) {
		cmp, err := dq.Comparison(catalog.Key(gtr), catalog.Key(sti), model.Attributes()...)
		require.NoError(t, err)

		first, err := cmp.Search()
		require.NoError(t, err)
		second, err := cmp.Search()
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})
}

func TestComparisonValidation(t *testing.T) {
	dq := newTestDynoq(t)
	missing := model.EntryKey{Year: 1999, Make: "None", Model: "None"}

	t.Run("empty attribute set", func(t *testing.T) {
		_, err := dq.Comparison(catalog.Key(gtr), catalog.Key(sti))
		assert.ErrorIs(t, err, ErrEmptyAttributeSet)
	})

	t.Run("empty set checked before entry resolution", func(t *testing.T) {
		_, err := dq.Comparison(catalog.Key(missing), catalog.Key(missing))
		assert.ErrorIs(t, err, ErrEmptyAttributeSet)
	})

	t.Run("invalid attribute checked before entry resolution", func(t *testing.T) {
		_, err := dq.Comparison(catalog.Key(missing), catalog.Key(sti), model.Attribute(42))
		var ia *ErrInvalidAttribute
		assert.ErrorAs(t, err, &ia)
	})

	t.Run("first reference resolves before second", func(t *testing.T) {
		_, err := dq.Comparison(catalog.YearPos(7), catalog.Key(missing), model.AttributeHP)
		var pr *ErrPositionOutOfRange
		require.ErrorAs(t, err, &pr)
		assert.Equal(t, 7, pr.Position)
	})

	t.Run("missing data fails search with no partial results", func(t *testing.T) {
		b := catalog.NewBuilder()
		b.AddEntry(gtr).AddEntry(sti)
		b.AddRecord(model.Record{Entry: gtr, Attribute: model.AttributeHP, Value: 485, RPM: 6400})
		b.AddRecord(model.Record{Entry: sti, Attribute: model.AttributeHP, Value: 289, RPM: 5800})
		b.AddRecord(model.Record{Entry: gtr, Attribute: model.AttributeBoost, Value: 14.8, RPM: 5600})
		cat, err := b.Build()
		require.NoError(t, err)

		sparse, err := New(cat)
		require.NoError(t, err)

		cmp, err := sparse.Comparison(catalog.Key(gtr), catalog.Key(sti), model.AttributeHP, model.AttributeBoost)
		require.NoError(t, err)

		lines, err := cmp.Search()
		var nd *ErrNoData
		require.ErrorAs(t, err, &nd)
		assert.Equal(t, sti, nd.Key)
		assert.Equal(t, model.AttributeBoost, nd.Attribute)
		assert.Nil(t, lines)
	})
}
