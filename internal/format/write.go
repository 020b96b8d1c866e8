package format

import (
	"encoding/binary"
	"time"
)

// AppendLocalHeader appends a local file header to b and returns the
// extended slice. The entry's content bytes follow the header directly;
// with the store method the header's sizes already describe them.
func AppendLocalHeader(b []byte, h Header) []byte {
	b = binary.LittleEndian.AppendUint32(b, LocalHeaderSignature)
	b = binary.LittleEndian.AppendUint16(b, versionNeeded)
	b = binary.LittleEndian.AppendUint16(b, 0) // general purpose flags
	b = binary.LittleEndian.AppendUint16(b, MethodStore)
	b = binary.LittleEndian.AppendUint16(b, h.ModTime)
	b = binary.LittleEndian.AppendUint16(b, h.ModDate)
	b = binary.LittleEndian.AppendUint32(b, h.CRC32)
	b = binary.LittleEndian.AppendUint32(b, h.CompressedSize)
	b = binary.LittleEndian.AppendUint32(b, h.UncompressedSize)
	b = binary.LittleEndian.AppendUint16(b, uint16(len(h.Name)))
	b = binary.LittleEndian.AppendUint16(b, 0) // extra field length
	return append(b, h.Name...)
}

// AppendCentralHeader appends a central directory header referencing the
// local record at headerOffset.
func AppendCentralHeader(b []byte, h Header, headerOffset uint32) []byte {
	b = binary.LittleEndian.AppendUint32(b, CentralHeaderSignature)
	b = binary.LittleEndian.AppendUint16(b, versionMadeBy)
	b = binary.LittleEndian.AppendUint16(b, versionNeeded)
	b = binary.LittleEndian.AppendUint16(b, 0) // general purpose flags
	b = binary.LittleEndian.AppendUint16(b, MethodStore)
	b = binary.LittleEndian.AppendUint16(b, h.ModTime)
	b = binary.LittleEndian.AppendUint16(b, h.ModDate)
	b = binary.LittleEndian.AppendUint32(b, h.CRC32)
	b = binary.LittleEndian.AppendUint32(b, h.CompressedSize)
	b = binary.LittleEndian.AppendUint32(b, h.UncompressedSize)
	b = binary.LittleEndian.AppendUint16(b, uint16(len(h.Name)))
	b = binary.LittleEndian.AppendUint16(b, 0) // extra field length
	b = binary.LittleEndian.AppendUint16(b, 0) // comment length
	b = binary.LittleEndian.AppendUint16(b, 0) // disk number start
	b = binary.LittleEndian.AppendUint16(b, 0) // internal attributes
	b = binary.LittleEndian.AppendUint32(b, 0) // external attributes
	b = binary.LittleEndian.AppendUint32(b, headerOffset)
	return append(b, h.Name...)
}

// AppendEndOfCentral appends the trailer record. The comment must not
// exceed MaxCommentLen bytes; callers validate before reaching here.
func AppendEndOfCentral(b []byte, eocd EndOfCentral) []byte {
	b = binary.LittleEndian.AppendUint32(b, EndOfCentralSignature)
	b = binary.LittleEndian.AppendUint16(b, 0) // disk number
	b = binary.LittleEndian.AppendUint16(b, 0) // disk with central directory
	b = binary.LittleEndian.AppendUint16(b, eocd.EntryCount)
	b = binary.LittleEndian.AppendUint16(b, eocd.EntryCount)
	b = binary.LittleEndian.AppendUint32(b, eocd.DirectorySize)
	b = binary.LittleEndian.AppendUint32(b, eocd.DirectoryOffset)
	b = binary.LittleEndian.AppendUint16(b, uint16(len(eocd.Comment)))
	return append(b, eocd.Comment...)
}

// DOSTime converts t to the MS-DOS time and date fields used by ZIP
// headers. The zero time maps to zeroed fields, which readers treat as
// "no timestamp". DOS time has two-second resolution and no zone; t is
// encoded in its own location.
func DOSTime(t time.Time) (timeField, dateField uint16) {
	if t.IsZero() {
		return 0, 0
	}
	// DOS dates cannot express years before 1980.
	if t.Year() < 1980 {
		return 0, 0x21 // 1980-01-01
	}
	timeField = uint16(t.Second()/2) | uint16(t.Minute())<<5 | uint16(t.Hour())<<11
	dateField = uint16(t.Day()) | uint16(t.Month())<<5 | uint16(t.Year()-1980)<<9
	return timeField, dateField
}
