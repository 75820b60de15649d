// Package blobstore provides storage abstraction for dynoq's catalog
// snapshots.
//
// BlobStore is the interface for reading and writing immutable blobs
// (snapshots and the CURRENT pointer). Implementations must be safe for
// concurrent use.
//
// # Built-in Implementations
//
//   - MemoryStore: In-memory store for tests
//   - LocalStore: Local filesystem with atomic writes (temp + rename)
//   - minio.Store: MinIO and other S3-compatible object storage
//   - s3.Store: Amazon S3 with streaming uploads
//   - s3.CommitStore: S3 + DynamoDB with an atomically committed CURRENT pointer
package blobstore

import (
	"context"
	"errors"
	"io"
)

// CurrentPointer is the reserved blob name whose content is the name of
// the latest published catalog snapshot. Stores with stronger primitives
// (e.g. s3.CommitStore) give writes to it atomic commit semantics.
const CurrentPointer = "CURRENT"

// ErrNotFound is returned when a blob does not exist.
//
// Implementations must return an error that satisfies
// errors.Is(err, ErrNotFound).
var ErrNotFound = errors.New("blob not found")

// BlobStore is an abstraction for accessing immutable data blobs.
type BlobStore interface {
	// Open opens an existing blob for reading.
	Open(ctx context.Context, name string) (Blob, error)

	// Create creates a new blob for streaming writes. The blob becomes
	// visible once Close returns nil.
	Create(ctx context.Context, name string) (WritableBlob, error)

	// Put writes a blob atomically.
	Put(ctx context.Context, name string, data []byte) error

	// Delete removes a blob. Deleting a missing blob is not an error.
	Delete(ctx context.Context, name string) error

	// List returns all blob names with the given prefix, sorted.
	List(ctx context.Context, prefix string) ([]string, error)
}

// Blob is a read-only handle to a data blob. Snapshots are decoded as a
// whole, so blobs expose a sequential stream rather than random access.
type Blob interface {
	// Reader returns a stream over the blob's content from the start.
	// The caller owns the returned ReadCloser.
	Reader(ctx context.Context) (io.ReadCloser, error)

	// Size returns the size of the blob in bytes.
	Size() int64

	// Close releases the handle.
	Close() error
}

// WritableBlob is a streaming write handle.
type WritableBlob interface {
	io.Writer

	// Close finalizes the write and makes the blob visible.
	Close() error

	// Sync flushes buffered data to stable storage where the backend
	// supports it.
	Sync() error
}

// ReadAll opens the named blob and reads it fully.
func ReadAll(ctx context.Context, store BlobStore, name string) ([]byte, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	r, err := blob.Reader(ctx)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return io.ReadAll(r)
}
