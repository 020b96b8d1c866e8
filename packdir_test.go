package zipkit

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackDir_RoundTrip(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "sub", "inner"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "root.txt"), []byte("root"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "mid.txt"), []byte("mid"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "sub", "inner", "leaf.txt"), []byte("leaf"), 0o644))

	data, err := PackDir(t.Context(), dir)
	require.NoError(t, err)

	entries, err := UnpackBytes(t.Context(), data)
	require.NoError(t, err)

	got := make(map[string]string, len(entries))
	for _, e := range entries {
		got[e.Name] = e.Text()
	}
	assert.Equal(t, map[string]string{
		"root.txt":           "root",
		"sub/mid.txt":        "mid",
		"sub/inner/leaf.txt": "leaf",
	}, got)
}

func TestPackDir_SkipsSymlinks(t *testing.T) {
	t.Parallel()
	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires privileges on windows")
	}

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "real.txt"), []byte("real"), 0o644))
	require.NoError(t, os.Symlink("real.txt", filepath.Join(dir, "link.txt")))

	data, err := PackDir(t.Context(), dir)
	require.NoError(t, err)

	entries, err := UnpackBytes(t.Context(), data)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "real.txt", entries[0].Name)
}

func TestPackDir_MissingDirectory(t *testing.T) {
	t.Parallel()

	_, err := PackDir(t.Context(), filepath.Join(t.TempDir(), "does-not-exist"))
	require.Error(t, err)
}

func TestPackDir_EmptyDirectory(t *testing.T) {
	t.Parallel()

	data, err := PackDir(t.Context(), t.TempDir())
	require.NoError(t, err)

	entries, err := UnpackBytes(t.Context(), data)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
