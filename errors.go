package zipkit

import "errors"

// Sentinel errors.
var (
	// ErrNameTooLong is returned when an entry name exceeds the header's
	// 2-byte length field.
	ErrNameTooLong = errors.New("zipkit: entry name exceeds 65535 bytes")

	// ErrCommentTooLong is returned when an archive comment exceeds the
	// trailer's 2-byte length field.
	ErrCommentTooLong = errors.New("zipkit: archive comment exceeds 65535 bytes")

	// ErrArchiveTooLarge is returned when an entry size or record offset
	// exceeds the 32-bit container limits.
	ErrArchiveTooLarge = errors.New("zipkit: archive exceeds 4GiB format limits")

	// ErrTooManyEntries is returned when the entry count exceeds the
	// trailer's 2-byte field or a configured limit.
	ErrTooManyEntries = errors.New("zipkit: too many entries")

	// ErrEntryTooLarge is returned when an entry exceeds the configured
	// per-entry size limit during unpacking.
	ErrEntryTooLarge = errors.New("zipkit: entry too large")

	// ErrRead is returned when the archive source cannot be read.
	ErrRead = errors.New("zipkit: read source")

	// ErrFormat is returned when input is not a well-formed ZIP archive.
	ErrFormat = errors.New("zipkit: malformed archive")

	// ErrInsecurePath is returned when an entry name would escape the
	// extraction directory.
	ErrInsecurePath = errors.New("zipkit: insecure entry path")
)
