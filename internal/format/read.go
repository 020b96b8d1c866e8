package format

import (
	"encoding/binary"
	"fmt"
)

// FindEndOfCentral scans data backwards for the trailer record.
//
// The trailer is located by searching for its signature from the end of
// the archive, skipping over a possible trailing comment of up to
// MaxCommentLen bytes. Returns ErrNoEndOfCentral if no valid trailer is
// present.
func FindEndOfCentral(data []byte) (EndOfCentral, error) {
	if len(data) < EndOfCentralLen {
		return EndOfCentral{}, ErrNoEndOfCentral
	}

	// The earliest position the trailer can start, given the maximum
	// comment length.
	floor := 0
	if len(data) > EndOfCentralLen+MaxCommentLen {
		floor = len(data) - EndOfCentralLen - MaxCommentLen
	}

	for i := len(data) - EndOfCentralLen; i >= floor; i-- {
		if binary.LittleEndian.Uint32(data[i:]) != EndOfCentralSignature {
			continue
		}
		eocd, ok := parseEndOfCentral(data[i:])
		if ok {
			return eocd, nil
		}
	}
	return EndOfCentral{}, ErrNoEndOfCentral
}

// parseEndOfCentral decodes a trailer starting at b[0]. Returns ok=false
// when the comment length disagrees with the remaining bytes, which means
// the signature match was a false positive inside entry data.
func parseEndOfCentral(b []byte) (EndOfCentral, bool) {
	commentLen := int(binary.LittleEndian.Uint16(b[20:]))
	if EndOfCentralLen+commentLen != len(b) {
		return EndOfCentral{}, false
	}
	return EndOfCentral{
		EntryCount:      binary.LittleEndian.Uint16(b[10:]),
		DirectorySize:   binary.LittleEndian.Uint32(b[12:]),
		DirectoryOffset: binary.LittleEndian.Uint32(b[16:]),
		Comment:         string(b[22 : 22+commentLen]),
	}, true
}

// ReadDirectory parses the central directory described by eocd out of the
// full archive bytes.
func ReadDirectory(data []byte, eocd EndOfCentral) ([]DirectoryEntry, error) {
	start := uint64(eocd.DirectoryOffset)
	end := start + uint64(eocd.DirectorySize)
	if end > uint64(len(data)) {
		return nil, fmt.Errorf("%w: central directory [%d, %d) in %d bytes", ErrTruncated, start, end, len(data))
	}

	entries := make([]DirectoryEntry, 0, eocd.EntryCount)
	b := data[start:end]
	for i := 0; i < int(eocd.EntryCount); i++ {
		entry, rest, err := readDirectoryEntry(b)
		if err != nil {
			return nil, fmt.Errorf("central directory entry %d: %w", i, err)
		}
		entries = append(entries, entry)
		b = rest
	}
	return entries, nil
}

// readDirectoryEntry decodes one central directory record from the front
// of b and returns the remainder.
func readDirectoryEntry(b []byte) (DirectoryEntry, []byte, error) {
	if len(b) < CentralHeaderLen {
		return DirectoryEntry{}, nil, ErrTruncated
	}
	if sig := binary.LittleEndian.Uint32(b); sig != CentralHeaderSignature {
		return DirectoryEntry{}, nil, fmt.Errorf("%w: 0x%08x", ErrBadSignature, sig)
	}

	nameLen := int(binary.LittleEndian.Uint16(b[28:]))
	extraLen := int(binary.LittleEndian.Uint16(b[30:]))
	commentLen := int(binary.LittleEndian.Uint16(b[32:]))
	total := CentralHeaderLen + nameLen + extraLen + commentLen
	if len(b) < total {
		return DirectoryEntry{}, nil, ErrTruncated
	}

	entry := DirectoryEntry{
		Header: Header{
			Name:             string(b[CentralHeaderLen : CentralHeaderLen+nameLen]),
			CRC32:            binary.LittleEndian.Uint32(b[16:]),
			CompressedSize:   binary.LittleEndian.Uint32(b[20:]),
			UncompressedSize: binary.LittleEndian.Uint32(b[24:]),
			ModTime:          binary.LittleEndian.Uint16(b[12:]),
			ModDate:          binary.LittleEndian.Uint16(b[14:]),
		},
		Method:       binary.LittleEndian.Uint16(b[10:]),
		HeaderOffset: binary.LittleEndian.Uint32(b[42:]),
	}
	return entry, b[total:], nil
}
