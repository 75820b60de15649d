package dynoq

import (
	"context"
	"strings"
	"time"

	"github.com/hupe1980/dynoq/blobstore"
	"github.com/hupe1980/dynoq/catalog"
	"github.com/hupe1980/dynoq/codec"
	"github.com/hupe1980/dynoq/model"
	"github.com/hupe1980/dynoq/snapshot"
	"github.com/hupe1980/dynoq/stats"
)

// Dynoq is a query handle over one loaded catalog.
//
// The handle owns the catalog, its positional index and an extrema cache.
// All of them are read-only after construction, so a Dynoq is safe for
// concurrent use. Replacing the data means opening a new handle.
type Dynoq struct {
	cat     *catalog.Catalog
	index   *catalog.Index
	stats   *stats.Cache
	logger  *Logger
	metrics MetricsCollector

	codec       codec.Codec
	compression snapshot.Compression
}

// New creates a query handle over the given catalog.
func New(cat *catalog.Catalog, optFns ...Option) (*Dynoq, error) {
	if cat == nil {
		return nil, ErrNilCatalog
	}

	o := applyOptions(optFns)

	return &Dynoq{
		cat:         cat,
		index:       catalog.NewIndex(cat),
		stats:       stats.NewCache(cat),
		logger:      o.logger,
		metrics:     o.metricsCollector,
		codec:       o.codec,
		compression: o.compression,
	}, nil
}

// Open loads the named snapshot from the store and returns a query handle
// over the restored catalog.
func Open(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (*Dynoq, error) {
	o := applyOptions(optFns)

	start := time.Now()
	cat, err := snapshot.Load(ctx, store, name)
	o.metricsCollector.RecordSnapshotLoad(time.Since(start), err)
	if err != nil {
		o.logger.LogSnapshotLoad(ctx, name, 0, err)
		return nil, err
	}
	o.logger.LogSnapshotLoad(ctx, name, cat.Len(), nil)

	return New(cat, optFns...)
}

// OpenCurrent resolves the CURRENT pointer blob to a snapshot name and
// opens that snapshot. With s3.CommitStore the pointer read is backed by a
// DynamoDB commit record; plain stores serve the pointer blob as written.
func OpenCurrent(ctx context.Context, store blobstore.BlobStore, optFns ...Option) (*Dynoq, error) {
	data, err := blobstore.ReadAll(ctx, store, blobstore.CurrentPointer)
	if err != nil {
		return nil, err
	}
	return Open(ctx, store, strings.TrimSpace(string(data)), optFns...)
}

// SaveSnapshot writes the catalog to the named blob using the handle's
// codec and compression settings.
func (dq *Dynoq) SaveSnapshot(ctx context.Context, store blobstore.BlobStore, name string) error {
	err := snapshot.Save(ctx, store, name, dq.cat, func(o *snapshot.Options) {
		o.Codec = dq.codec
		o.Compression = dq.compression
	})
	dq.logger.LogSnapshotSave(ctx, name, dq.cat.Len(), err)
	return err
}

// Publish saves the catalog to the named blob and advances the CURRENT
// pointer to it. On an s3.CommitStore the pointer update is an atomic
// conditional commit; concurrent publishers get ErrConcurrentModification.
func (dq *Dynoq) Publish(ctx context.Context, store blobstore.BlobStore, name string) error {
	if err := dq.SaveSnapshot(ctx, store, name); err != nil {
		return err
	}
	return store.Put(ctx, blobstore.CurrentPointer, []byte(name))
}

// Catalog returns the underlying catalog.
func (dq *Dynoq) Catalog() *catalog.Catalog {
	return dq.cat
}

// Index returns the positional index over the catalog.
func (dq *Dynoq) Index() *catalog.Index {
	return dq.index
}

// Len returns the number of entries in the catalog.
func (dq *Dynoq) Len() int {
	return dq.cat.Len()
}

// EntriesByYear returns all entries ordered by year. Entries with equal
// years keep catalog load order.
func (dq *Dynoq) EntriesByYear() []model.EntryKey {
	return dq.index.ByYear()
}

// EntriesByMake returns all entries ordered by make. Entries with equal
// makes keep catalog load order.
func (dq *Dynoq) EntriesByMake() []model.EntryKey {
	return dq.index.ByMake()
}

// Resolve maps an identifier (canonical key or grouping position) to its
// entry key.
//
// It fails with *ErrUnknownEntry or *ErrPositionOutOfRange.
func (dq *Dynoq) Resolve(ref catalog.Ref) (model.EntryKey, error) {
	start := time.Now()
	key, err := dq.index.Resolve(ref)
	err = translateError(err)
	dq.metrics.RecordResolve(time.Since(start), err)
	dq.logger.LogResolve(key, err)
	if err != nil {
		return model.EntryKey{}, err
	}
	return key, nil
}

// Extremes returns the minimum and maximum recorded sample for one
// attribute of the referenced entry.
func (dq *Dynoq) Extremes(ref catalog.Ref, attr model.Attribute) (model.ExtremePair, error) {
	key, err := dq.Resolve(ref)
	if err != nil {
		return model.ExtremePair{}, err
	}
	pair, err := dq.stats.Extremes(key, attr)
	if err != nil {
		return model.ExtremePair{}, translateError(err)
	}
	return pair, nil
}
