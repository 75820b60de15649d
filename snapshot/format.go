package snapshot

import (
	"errors"
	"fmt"
)

var (
	snapshotMagic         = [4]byte{'D', 'Q', 'S', '1'}
	snapshotFormatVersion = uint16(1)
)

// maxPayloadLen bounds the payload length accepted from a header. The
// length field is read before the checksum can be verified, so it must
// not drive an unbounded allocation.
const maxPayloadLen = 1 << 30

// Compression identifies the payload compression scheme.
type Compression uint8

const (
	// CompressionNone stores the payload uncompressed.
	CompressionNone Compression = iota
	// CompressionZstd compresses the payload with zstandard.
	CompressionZstd
	// CompressionLZ4 compresses the payload with LZ4.
	CompressionLZ4
)

// String returns the scheme name.
func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionZstd:
		return "zstd"
	case CompressionLZ4:
		return "lz4"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

func (c Compression) valid() bool {
	return c <= CompressionLZ4
}

var (
	// ErrInvalidMagic is returned for files that are not dynoq snapshots.
	ErrInvalidMagic = errors.New("invalid snapshot magic")

	// ErrUnsupportedVersion is returned for snapshots written by a newer
	// format version.
	ErrUnsupportedVersion = errors.New("unsupported snapshot format version")

	// ErrPayloadTooLarge is returned when the header declares a payload
	// length beyond the accepted bound.
	ErrPayloadTooLarge = errors.New("snapshot payload length exceeds limit")
)

// ErrUnknownCodec indicates a snapshot whose codec is not built in.
type ErrUnknownCodec struct {
	Name string
}

func (e *ErrUnknownCodec) Error() string {
	return fmt.Sprintf("unknown snapshot codec: %q", e.Name)
}

// ErrUnknownCompression indicates an unrecognized compression scheme byte.
type ErrUnknownCompression struct {
	Scheme uint8
}

func (e *ErrUnknownCompression) Error() string {
	return fmt.Sprintf("unknown snapshot compression scheme: %d", e.Scheme)
}
