package zipkit

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

// PackFile assembles entries into an archive and writes it to path.
//
// The write is atomic (temp file + rename) to prevent partial archives on
// failure. Parent directories are created as needed. The archive bytes are
// returned so callers can reuse them without re-packing.
func PackFile(ctx context.Context, path string, entries []Entry, opts ...PackOption) ([]byte, error) {
	data, err := Pack(ctx, entries, opts...)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create archive directory: %w", err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return nil, fmt.Errorf("write archive: %w", err)
	}
	return data, nil
}

// writeFileAtomic writes data to a temp file then renames to target,
// ensuring atomic replacement of the target file.
func writeFileAtomic(target string, data []byte) error {
	dir := filepath.Dir(target)
	tmp, err := os.CreateTemp(dir, ".zipkit-*")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, target); err != nil {
		os.Remove(tmpPath)
		return err
	}
	return nil
}
