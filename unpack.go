package zipkit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/klauspost/compress/zip"
)

// Unpack reads a ZIP archive from r and returns its entries in archive
// order.
//
// The source is read fully into memory before parsing. Parsing is handled
// by a general-purpose ZIP reader, so input from other writers — including
// deflated entries — is accepted, not just the store-only archives Pack
// produces. Directory entries (names ending in "/") carry no content and
// are skipped.
//
// Failures are distinguishable with errors.Is: a source that cannot be
// read wraps ErrRead, a malformed archive wraps ErrFormat, and configured
// limits wrap ErrTooManyEntries or ErrEntryTooLarge.
func Unpack(ctx context.Context, r io.Reader, opts ...UnpackOption) ([]Entry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRead, err)
	}
	return UnpackBytes(ctx, data, opts...)
}

// UnpackBytes parses an in-memory ZIP archive. See Unpack.
func UnpackBytes(ctx context.Context, data []byte, opts ...UnpackOption) ([]Entry, error) {
	cfg := unpackConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	u := &unpacker{cfg: cfg}
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil && !errors.Is(err, zip.ErrInsecurePath) {
		return nil, fmt.Errorf("%w: %w", ErrFormat, err)
	}
	// Insecure names are surfaced as-is; Extract enforces path safety.

	entries := make([]Entry, 0, len(zr.File))
	for _, f := range zr.File {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if strings.HasSuffix(f.Name, "/") {
			u.log().Debug("skipped directory entry", "name", f.Name)
			continue
		}
		if cfg.maxEntries > 0 && len(entries) >= cfg.maxEntries {
			return nil, fmt.Errorf("%w: limit %d", ErrTooManyEntries, cfg.maxEntries)
		}
		if cfg.maxEntrySize > 0 && f.UncompressedSize64 > cfg.maxEntrySize {
			return nil, fmt.Errorf("%w: %q is %d bytes, limit %d", ErrEntryTooLarge, f.Name, f.UncompressedSize64, cfg.maxEntrySize)
		}

		content, err := u.readEntry(f)
		if err != nil {
			return nil, err
		}
		entries = append(entries, Entry{Name: f.Name, Data: content})
	}

	u.log().Info("archive unpacked", "entry_count", len(entries), "size", len(data))
	return entries, nil
}

// unpacker holds state for archive parsing.
type unpacker struct {
	cfg unpackConfig
}

// readEntry decompresses a single entry's content.
func (u *unpacker) readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: open %q: %w", ErrFormat, f.Name, err)
	}
	defer rc.Close()

	// limit+1 so a lying header is caught rather than truncated.
	var r io.Reader = rc
	if u.cfg.maxEntrySize > 0 {
		r = io.LimitReader(rc, int64(u.cfg.maxEntrySize)+1)
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: read %q: %w", ErrFormat, f.Name, err)
	}
	if u.cfg.maxEntrySize > 0 && uint64(len(content)) > u.cfg.maxEntrySize {
		return nil, fmt.Errorf("%w: %q exceeds %d bytes", ErrEntryTooLarge, f.Name, u.cfg.maxEntrySize)
	}
	return content, nil
}

// log returns the logger, falling back to a discard logger if nil.
func (u *unpacker) log() *slog.Logger {
	if u.cfg.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return u.cfg.logger
}
