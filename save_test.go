package zipkit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackFile_WritesArchive(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "archive.zip")
	data, err := PackFile(t.Context(), path, []Entry{NewTextEntry("a.txt", "hello")})
	require.NoError(t, err)

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, onDisk)

	entries, err := UnpackBytes(t.Context(), onDisk)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "hello", entries[0].Text())
}

func TestPackFile_ReplacesExisting(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "archive.zip")
	require.NoError(t, os.WriteFile(path, []byte("stale"), 0o644))

	data, err := PackFile(t.Context(), path, []Entry{NewTextEntry("a.txt", "fresh")})
	require.NoError(t, err)

	onDisk, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, data, onDisk)
}

func TestPackFile_NoPartialFileOnError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "archive.zip")
	_, err := PackFile(t.Context(), path, make([]Entry, 70000))
	require.ErrorIs(t, err, ErrTooManyEntries)

	_, statErr := os.Stat(path)
	require.Error(t, statErr)
}
