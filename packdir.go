package zipkit

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// PackDir assembles an archive from the regular files under dir.
//
// Files are added in lexical walk order with slash-separated names
// relative to dir. Directories themselves produce no entries, and
// symbolic links are skipped rather than followed.
func PackDir(ctx context.Context, dir string, opts ...PackOption) ([]byte, error) {
	root, err := os.OpenRoot(dir)
	if err != nil {
		return nil, err
	}
	defer root.Close()

	var entries []Entry
	err = fs.WalkDir(root.FS(), ".", func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !d.Type().IsRegular() {
			return nil
		}
		data, err := fs.ReadFile(root.FS(), path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		entries = append(entries, Entry{Name: filepath.ToSlash(path), Data: data})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return Pack(ctx, entries, opts...)
}
