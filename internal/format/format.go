// Package format implements the on-disk ZIP container records used by zipkit.
//
// Only the subset of the format zipkit produces is covered: local file
// headers, central directory headers, and the end of central directory
// record, all little-endian, with the store compression method. ZIP64
// extensions, data descriptors, and multi-disk archives are out of scope.
package format

import "errors"

// Record signatures, little-endian on the wire.
const (
	LocalHeaderSignature   uint32 = 0x04034b50
	CentralHeaderSignature uint32 = 0x02014b50
	EndOfCentralSignature  uint32 = 0x06054b50
)

// Fixed record sizes, excluding variable-length name/extra/comment fields.
const (
	LocalHeaderLen   = 30
	CentralHeaderLen = 46
	EndOfCentralLen  = 22
)

// MethodStore is the only compression method zipkit writes.
const MethodStore uint16 = 0

// Version fields written into headers. 2.0 is the minimum reader version
// that understands the records zipkit emits.
const (
	versionMadeBy uint16 = 20
	versionNeeded uint16 = 20
)

// Format limits imposed by the fixed-width header fields.
const (
	MaxNameLen    = 0xFFFF     // 2-byte name length field
	MaxCommentLen = 0xFFFF     // 2-byte comment length field
	MaxEntries    = 0xFFFF     // 2-byte entry count in the trailer
	MaxFieldSize  = 0xFFFFFFFF // 4-byte size and offset fields
)

// Sentinel parse errors.
var (
	ErrNoEndOfCentral = errors.New("format: end of central directory signature not found")
	ErrTruncated      = errors.New("format: record extends past end of data")
	ErrBadSignature   = errors.New("format: unexpected record signature")
)

// Header carries the per-entry fields shared by local and central records.
type Header struct {
	Name             string
	CRC32            uint32
	CompressedSize   uint32
	UncompressedSize uint32
	ModTime          uint16 // MS-DOS time
	ModDate          uint16 // MS-DOS date
}

// EndOfCentral is the parsed trailer record.
type EndOfCentral struct {
	EntryCount      uint16
	DirectorySize   uint32
	DirectoryOffset uint32
	Comment         string
}

// DirectoryEntry is one parsed central directory record.
type DirectoryEntry struct {
	Header
	Method       uint16
	HeaderOffset uint32
}
