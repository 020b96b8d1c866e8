package zipkit

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// ExtractStats contains statistics about an extract operation.
type ExtractStats struct {
	// FileCount is the number of files written.
	FileCount int

	// TotalBytes is the total content bytes written.
	TotalBytes uint64

	// Skipped is the number of existing files left in place.
	Skipped int
}

// Extract unpacks an archive onto the filesystem under destDir.
//
// Entry names must be valid slash-separated relative paths; names that
// would escape destDir (absolute paths, "..", backslashes) fail with
// ErrInsecurePath before anything is written. Parent directories are
// created as needed.
//
// By default existing files are skipped and entries are written with a
// configurable number of concurrent workers.
func Extract(ctx context.Context, data []byte, destDir string, opts ...ExtractOption) (ExtractStats, error) {
	cfg := extractConfig{workers: defaultExtractWorkers}
	for _, opt := range opts {
		opt(&cfg)
	}

	entries, err := UnpackBytes(ctx, data, cfg.unpackOpts...)
	if err != nil {
		return ExtractStats{}, err
	}
	for _, e := range entries {
		if !fs.ValidPath(e.Name) || containsBackslash(e.Name) {
			return ExtractStats{}, fmt.Errorf("%w: %q", ErrInsecurePath, e.Name)
		}
	}

	var written, skipped, totalBytes atomic.Uint64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.workers)
	for _, e := range entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			target := filepath.Join(destDir, filepath.FromSlash(e.Name))
			if !cfg.overwrite {
				if _, err := os.Lstat(target); err == nil {
					skipped.Add(1)
					return nil
				}
			}
			if err := os.MkdirAll(filepath.Dir(target), 0o750); err != nil {
				return fmt.Errorf("create directory for %s: %w", e.Name, err)
			}
			if err := writeFileAtomic(target, e.Data); err != nil {
				return fmt.Errorf("write %s: %w", e.Name, err)
			}
			written.Add(1)
			totalBytes.Add(uint64(len(e.Data)))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return ExtractStats{}, err
	}

	return ExtractStats{
		FileCount:  int(written.Load()),
		TotalBytes: totalBytes.Load(),
		Skipped:    int(skipped.Load()),
	}, nil
}

func containsBackslash(name string) bool {
	for i := 0; i < len(name); i++ {
		if name[i] == '\\' {
			return true
		}
	}
	return false
}
