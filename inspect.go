package zipkit

import (
	"fmt"

	"github.com/opencontainers/go-digest"

	"github.com/meigma/zipkit/internal/format"
)

// Summary describes an archive's layout without extracting any content.
type Summary struct {
	// Entries lists central directory metadata in directory order.
	Entries []EntryInfo

	// EntryCount is the count recorded in the trailer.
	EntryCount int

	// DirectorySize is the central directory's size in bytes.
	DirectorySize uint32

	// DirectoryOffset is the central directory's byte offset.
	DirectoryOffset uint32

	// Comment is the archive-level comment from the trailer.
	Comment string

	// Size is the total archive size in bytes.
	Size int

	// Digest is the sha256 digest of the archive bytes.
	Digest digest.Digest
}

// EntryInfo is per-entry metadata from the central directory.
type EntryInfo struct {
	// Name is the entry's path within the archive.
	Name string

	// Method is the compression method (0 = store, 8 = deflate).
	Method uint16

	// CRC32 is the stored checksum of the uncompressed content.
	CRC32 uint32

	// CompressedSize is the entry's size as stored in the archive.
	CompressedSize uint32

	// UncompressedSize is the entry's original size.
	UncompressedSize uint32

	// Offset is the byte position of the entry's local file record.
	Offset uint32
}

// Inspect reads archive metadata from the central directory.
//
// Unlike Unpack, Inspect walks the raw container records itself and
// exposes layout details such as each entry's local record offset.
// Malformed input wraps ErrFormat.
func Inspect(data []byte) (*Summary, error) {
	eocd, err := format.FindEndOfCentral(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	records, err := format.ReadDirectory(data, eocd)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}

	entries := make([]EntryInfo, 0, len(records))
	for _, rec := range records {
		entries = append(entries, EntryInfo{
			Name:             rec.Name,
			Method:           rec.Method,
			CRC32:            rec.CRC32,
			CompressedSize:   rec.CompressedSize,
			UncompressedSize: rec.UncompressedSize,
			Offset:           rec.HeaderOffset,
		})
	}

	return &Summary{
		Entries:         entries,
		EntryCount:      int(eocd.EntryCount),
		DirectorySize:   eocd.DirectorySize,
		DirectoryOffset: eocd.DirectoryOffset,
		Comment:         eocd.Comment,
		Size:            len(data),
		Digest:          digest.FromBytes(data),
	}, nil
}
