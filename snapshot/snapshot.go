package snapshot

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/hupe1980/dynoq/blobstore"
	"github.com/hupe1980/dynoq/catalog"
	"github.com/hupe1980/dynoq/codec"
	"github.com/hupe1980/dynoq/model"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Options configures snapshot writing.
type Options struct {
	// Codec encodes the payload. Defaults to codec.Default.
	Codec codec.Codec

	// Compression selects the payload compression scheme.
	// Defaults to CompressionZstd.
	Compression Compression
}

// payload is the codec-encoded snapshot body. Entries and records keep
// catalog load order.
type payload struct {
	Entries []model.EntryKey `json:"entries"`
	Records []model.Record   `json:"records"`
}

// Write writes a snapshot of the catalog to w.
//
// Format:
//  1. header (magic, format version, compression scheme, codec name length)
//  2. codec name
//  3. payload length (8 bytes)
//  4. payload (codec-encoded, then compressed)
//  5. CRC32 checksum of the payload bytes as written
func Write(w io.Writer, cat *catalog.Catalog, optFns ...func(*Options)) error {
	if w == nil {
		return fmt.Errorf("snapshot: writer is nil")
	}
	if cat == nil {
		return fmt.Errorf("snapshot: catalog is nil")
	}

	opts := Options{
		Codec:       codec.Default,
		Compression: CompressionZstd,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Codec == nil {
		opts.Codec = codec.Default
	}
	if !opts.Compression.valid() {
		return &ErrUnknownCompression{Scheme: uint8(opts.Compression)}
	}

	codecName := opts.Codec.Name()
	if len(codecName) > 0xFFFF {
		return fmt.Errorf("snapshot: codec name too long: %d", len(codecName))
	}

	raw, err := opts.Codec.Marshal(payload{
		Entries: cat.Entries(),
		Records: cat.AllRecords(),
	})
	if err != nil {
		return fmt.Errorf("snapshot: failed to encode payload: %w", err)
	}

	body, err := compress(raw, opts.Compression)
	if err != nil {
		return err
	}
	if uint64(len(body)) > maxPayloadLen {
		return fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, len(body))
	}

	// Header
	// [0:4]  magic
	// [4:6]  format version
	// [6]    compression scheme
	// [7]    reserved
	// [8:10] codec name len
	// [10:16] reserved
	var hdr [16]byte
	copy(hdr[0:4], snapshotMagic[:])
	binary.LittleEndian.PutUint16(hdr[4:6], snapshotFormatVersion)
	hdr[6] = uint8(opts.Compression)
	binary.LittleEndian.PutUint16(hdr[8:10], uint16(len(codecName)))
	if _, err := w.Write(hdr[:]); err != nil {
		return err
	}
	if _, err := w.Write([]byte(codecName)); err != nil {
		return err
	}

	var lenBuf [8]byte
	binary.LittleEndian.PutUint64(lenBuf[:], uint64(len(body)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}

	cw := NewChecksumWriter(w)
	if _, err := cw.Write(body); err != nil {
		return err
	}

	var sumBuf [4]byte
	binary.LittleEndian.PutUint32(sumBuf[:], cw.Sum())
	_, err = w.Write(sumBuf[:])
	return err
}

// Read reads a snapshot from r and rebuilds the catalog.
//
// It fails with ErrInvalidMagic / ErrUnsupportedVersion for foreign or
// too-new files, *ErrUnknownCodec / *ErrUnknownCompression for headers
// naming schemes this build does not know, and *ChecksumMismatchError for
// corrupted payloads.
func Read(r io.Reader) (*catalog.Catalog, error) {
	var hdr [16]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		return nil, fmt.Errorf("snapshot: failed to read header: %w", err)
	}
	if [4]byte(hdr[0:4]) != snapshotMagic {
		return nil, ErrInvalidMagic
	}
	if version := binary.LittleEndian.Uint16(hdr[4:6]); version > snapshotFormatVersion {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, version)
	}
	compression := Compression(hdr[6])
	if !compression.valid() {
		return nil, &ErrUnknownCompression{Scheme: hdr[6]}
	}

	nameLen := binary.LittleEndian.Uint16(hdr[8:10])
	nameBuf := make([]byte, nameLen)
	if _, err := io.ReadFull(r, nameBuf); err != nil {
		return nil, fmt.Errorf("snapshot: failed to read codec name: %w", err)
	}
	c, ok := codec.ByName(string(nameBuf))
	if !ok {
		return nil, &ErrUnknownCodec{Name: string(nameBuf)}
	}

	var lenBuf [8]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, fmt.Errorf("snapshot: failed to read payload length: %w", err)
	}

	payloadLen := binary.LittleEndian.Uint64(lenBuf[:])
	if payloadLen > maxPayloadLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrPayloadTooLarge, payloadLen)
	}

	cr := NewChecksumReader(r)
	body := make([]byte, payloadLen)
	if _, err := io.ReadFull(cr, body); err != nil {
		return nil, fmt.Errorf("snapshot: failed to read payload: %w", err)
	}

	var sumBuf [4]byte
	if _, err := io.ReadFull(r, sumBuf[:]); err != nil {
		return nil, fmt.Errorf("snapshot: failed to read checksum: %w", err)
	}
	if err := cr.Verify(binary.LittleEndian.Uint32(sumBuf[:])); err != nil {
		return nil, err
	}

	raw, err := decompress(body, compression)
	if err != nil {
		return nil, err
	}

	var p payload
	if err := c.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("snapshot: failed to decode payload: %w", err)
	}

	b := catalog.NewBuilder()
	for _, key := range p.Entries {
		b.AddEntry(key)
	}
	b.AddRecords(p.Records)
	return b.Build()
}

// Save writes a catalog snapshot to the named blob.
func Save(ctx context.Context, store blobstore.BlobStore, name string, cat *catalog.Catalog, optFns ...func(*Options)) error {
	w, err := store.Create(ctx, name)
	if err != nil {
		return err
	}
	if err := Write(w, cat, optFns...); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

// Load reads a catalog snapshot from the named blob.
func Load(ctx context.Context, store blobstore.BlobStore, name string) (*catalog.Catalog, error) {
	data, err := blobstore.ReadAll(ctx, store, name)
	if err != nil {
		return nil, err
	}
	return Read(bytes.NewReader(data))
}

func compress(data []byte, scheme Compression) ([]byte, error) {
	switch scheme {
	case CompressionNone:
		return data, nil
	case CompressionZstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, err
		}
		defer enc.Close()
		return enc.EncodeAll(data, nil), nil
	case CompressionLZ4:
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		if _, err := zw.Write(data); err != nil {
			return nil, err
		}
		if err := zw.Close(); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	default:
		return nil, &ErrUnknownCompression{Scheme: uint8(scheme)}
	}
}

func decompress(data []byte, scheme Compression) ([]byte, error) {
	switch scheme {
	case CompressionNone:
		return data, nil
	case CompressionZstd:
		dec, err := zstd.NewReader(nil)
		if err != nil {
			return nil, err
		}
		defer dec.Close()
		return dec.DecodeAll(data, nil)
	case CompressionLZ4:
		return io.ReadAll(lz4.NewReader(bytes.NewReader(data)))
	default:
		return nil, &ErrUnknownCompression{Scheme: uint8(scheme)}
	}
}
