// Package zipkit builds and reads minimal ZIP archives entirely in memory.
//
// Archives are written with the store method only (no compression), so the
// packer needs nothing beyond the fixed container records:
//   - Local file records: per-entry header followed by raw content
//   - Central directory: per-entry index referencing each local record offset
//   - End of central directory: trailer with entry count and directory location
//
// # Quick Start
//
// Pack named payloads into an archive:
//
//	data, err := zipkit.Pack(ctx, []zipkit.Entry{
//	    zipkit.NewTextEntry("notes/a.txt", "hello"),
//	    zipkit.NewTextEntry("notes/b.txt", "world"),
//	})
//
// Read an archive back:
//
//	entries, err := zipkit.Unpack(ctx, f)
//
// Unpack accepts arbitrary ZIP input, including deflated entries produced
// by other writers; parsing is delegated to github.com/klauspost/compress/zip.
//
// # Limits
//
// The writer targets the classic 32-bit container: at most 65535 entries,
// names up to 65535 bytes, and a total archive size below 4GiB. Exceeding
// a limit fails with a sentinel error rather than producing a corrupt
// archive. ZIP64 is not supported.
package zipkit
