package dynoq

import (
	"context"
	"testing"

	"github.com/hupe1980/dynoq/blobstore"
	"github.com/hupe1980/dynoq/catalog"
	"github.com/hupe1980/dynoq/codec"
	"github.com/hupe1980/dynoq/model"
	"github.com/hupe1980/dynoq/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("nil catalog", func(t *testing.T) {
		_, err := New(nil)
		assert.ErrorIs(t, err, ErrNilCatalog)
	})

	t.Run("listings", func(t *testing.T) {
		dq := newTestDynoq(t)
		assert.Equal(t, 2, dq.Len())
		assert.Equal(t, []model.EntryKey{sti, gtr}, dq.EntriesByYear())
		assert.Equal(t, []model.EntryKey{gtr, sti}, dq.EntriesByMake())
	})
}

func TestResolve(t *testing.T) {
	dq := newTestDynoq(t)

	key, err := dq.Resolve(catalog.YearPos(0))
	require.NoError(t, err)
	assert.Equal(t, sti, key)

	_, err = dq.Resolve(catalog.YearPos(5))
	var pr *ErrPositionOutOfRange
	assert.ErrorAs(t, err, &pr)
}

func TestExtremes(t *testing.T) {
	dq := newTestDynoq(t)

	pair, err := dq.Extremes(catalog.Key(gtr), model.AttributeHP)
	require.NoError(t, err)
	assert.Equal(t, 300.0, pair.Min.Value)
	assert.Equal(t, 500.0, pair.Max.Value)

	_, err = dq.Extremes(catalog.Key(gtr), model.Attribute(42))
	var ia *ErrInvalidAttribute
	assert.ErrorAs(t, err, &ia)
}

func TestSnapshotRoundTrip(t *testing.T) {
	ctx := context.Background()
	dq := newTestDynoq(t)

	t.Run("save and open", func(t *testing.T) {
		store := blobstore.NewMemoryStore()
		require.NoError(t, dq.SaveSnapshot(ctx, store, "catalog-v1.snap"))

		dq2, err := Open(ctx, store, "catalog-v1.snap")
		require.NoError(t, err)

		assert.Equal(t, dq.EntriesByYear(), dq2.EntriesByYear())
		assert.Equal(t, dq.EntriesByMake(), dq2.EntriesByMake())

		q1, err := dq.DataRange(catalog.Key(gtr))
		require.NoError(t, err)
		q2, err := dq2.DataRange(catalog.Key(gtr))
		require.NoError(t, err)

		items1, err := q1.Search()
		require.NoError(t, err)
		items2, err := q2.Search()
		require.NoError(t, err)
		assert.Equal(t, items1, items2)
	})

	t.Run("publish advances current pointer", func(t *testing.T) {
		store := blobstore.NewMemoryStore()
		require.NoError(t, dq.Publish(ctx, store, "catalog-v1.snap"))
		require.NoError(t, dq.Publish(ctx, store, "catalog-v2.snap"))

		data, err := blobstore.ReadAll(ctx, store, blobstore.CurrentPointer)
		require.NoError(t, err)
		assert.Equal(t, "catalog-v2.snap", string(data))

		dq2, err := OpenCurrent(ctx, store)
		require.NoError(t, err)
		assert.Equal(t, dq.Len(), dq2.Len())
	})

	t.Run("open missing snapshot", func(t *testing.T) {
		store := blobstore.NewMemoryStore()
		_, err := Open(ctx, store, "nope.snap")
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})

	t.Run("custom codec and compression", func(t *testing.T) {
		store := blobstore.NewMemoryStore()

		src := newTestDynoq(t, WithCodec(codec.JSON{}), WithCompression(snapshot.CompressionLZ4))
		require.NoError(t, src.SaveSnapshot(ctx, store, "catalog.snap"))

		dq2, err := Open(ctx, store, "catalog.snap")
		require.NoError(t, err)
		assert.Equal(t, src.EntriesByYear(), dq2.EntriesByYear())
	})
}
