package zipkit

import (
	"context"
	"fmt"
	"hash/crc32"
	"log/slog"

	"github.com/meigma/zipkit/internal/format"
)

// Pack assembles entries into a store-only ZIP archive.
//
// Entries are written in order: all local file records first, then the
// central directory, then the trailer. The returned slice is the complete
// archive; nothing is written to disk. Use PackFile to also persist it.
//
// Duplicate names are passed through unchanged. Entry names longer than
// 65535 bytes, more than 65535 entries, or a layout whose offsets exceed
// 4GiB fail with a sentinel error; no partial archive is returned.
//
// CRC-32 checksums are computed for every entry unless disabled with
// PackWithoutChecksums. The context is checked between entries.
func Pack(ctx context.Context, entries []Entry, opts ...PackOption) ([]byte, error) {
	cfg := packConfig{checksums: true}
	for _, opt := range opts {
		opt(&cfg)
	}

	if len(entries) > format.MaxEntries {
		return nil, fmt.Errorf("%w: %d entries, limit %d", ErrTooManyEntries, len(entries), format.MaxEntries)
	}
	if len(cfg.comment) > format.MaxCommentLen {
		return nil, fmt.Errorf("%w: %d bytes", ErrCommentTooLong, len(cfg.comment))
	}

	p := &packer{cfg: cfg}
	p.log().Debug("packing archive", "entry_count", len(entries))

	modTime, modDate := format.DOSTime(cfg.modTime)

	headers := make([]format.Header, 0, len(entries))
	offsets := make([]uint32, 0, len(entries))

	// Pre-size the output: fixed records plus names and content.
	total := uint64(format.EndOfCentralLen + len(cfg.comment))
	for _, e := range entries {
		total += uint64(format.LocalHeaderLen+format.CentralHeaderLen+2*len(e.Name)) + uint64(len(e.Data))
	}
	if total > format.MaxFieldSize {
		return nil, fmt.Errorf("%w: %d bytes", ErrArchiveTooLarge, total)
	}
	out := make([]byte, 0, total)

	for i, e := range entries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if len(e.Name) > format.MaxNameLen {
			return nil, fmt.Errorf("%w: entry %d (%d bytes)", ErrNameTooLong, i, len(e.Name))
		}
		if uint64(len(e.Data)) > format.MaxFieldSize {
			return nil, fmt.Errorf("%w: entry %q is %d bytes", ErrArchiveTooLarge, e.Name, len(e.Data))
		}

		var sum uint32
		if cfg.checksums {
			sum = crc32.ChecksumIEEE(e.Data)
		}
		h := format.Header{
			Name:             e.Name,
			CRC32:            sum,
			CompressedSize:   uint32(len(e.Data)),
			UncompressedSize: uint32(len(e.Data)),
			ModTime:          modTime,
			ModDate:          modDate,
		}

		// The running output length is this entry's local record offset.
		offsets = append(offsets, uint32(len(out)))
		headers = append(headers, h)

		out = format.AppendLocalHeader(out, h)
		out = append(out, e.Data...)
	}

	directoryOffset := uint64(len(out))
	for i, h := range headers {
		out = format.AppendCentralHeader(out, h, offsets[i])
	}
	directorySize := uint64(len(out)) - directoryOffset

	out = format.AppendEndOfCentral(out, format.EndOfCentral{
		EntryCount:      uint16(len(entries)),
		DirectorySize:   uint32(directorySize),
		DirectoryOffset: uint32(directoryOffset),
		Comment:         cfg.comment,
	})

	p.log().Info("archive packed", "entry_count", len(entries), "size", len(out))
	return out, nil
}

// packer holds state for archive assembly.
type packer struct {
	cfg packConfig
}

// log returns the logger, falling back to a discard logger if nil.
func (p *packer) log() *slog.Logger {
	if p.cfg.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return p.cfg.logger
}
