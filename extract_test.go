package zipkit

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_RoundTrip(t *testing.T) {
	t.Parallel()

	data, err := Pack(t.Context(), []Entry{
		NewTextEntry("top.txt", "top"),
		NewTextEntry("nested/deep/file.txt", "deep"),
	})
	require.NoError(t, err)

	destDir := t.TempDir()
	stats, err := Extract(t.Context(), data, destDir)
	require.NoError(t, err)

	assert.Equal(t, 2, stats.FileCount)
	assert.Equal(t, uint64(7), stats.TotalBytes)
	assert.Equal(t, 0, stats.Skipped)

	got, err := os.ReadFile(filepath.Join(destDir, "top.txt"))
	require.NoError(t, err)
	assert.Equal(t, "top", string(got))

	got, err = os.ReadFile(filepath.Join(destDir, "nested", "deep", "file.txt"))
	require.NoError(t, err)
	assert.Equal(t, "deep", string(got))
}

func TestExtract_SkipsExisting(t *testing.T) {
	t.Parallel()

	data, err := Pack(t.Context(), []Entry{
		NewTextEntry("a.txt", "new"),
		NewTextEntry("b.txt", "bee"),
	})
	require.NoError(t, err)

	destDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(destDir, "a.txt"), []byte("existing"), 0o644))

	stats, err := Extract(t.Context(), data, destDir)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FileCount)
	assert.Equal(t, 1, stats.Skipped)

	got, err := os.ReadFile(filepath.Join(destDir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "existing", string(got))
}

func TestExtract_Overwrite(t *testing.T) {
	t.Parallel()

	data, err := Pack(t.Context(), []Entry{NewTextEntry("a.txt", "new")})
	require.NoError(t, err)

	destDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(destDir, "a.txt"), []byte("existing"), 0o644))

	stats, err := Extract(t.Context(), data, destDir, ExtractWithOverwrite(true))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.FileCount)
	assert.Equal(t, 0, stats.Skipped)

	got, err := os.ReadFile(filepath.Join(destDir, "a.txt"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(got))
}

func TestExtract_RejectsTraversalPaths(t *testing.T) {
	t.Parallel()

	// The packer is name-permissive, so a hostile archive is easy to build.
	data, err := Pack(t.Context(), []Entry{NewTextEntry("../escape.txt", "pwned")})
	require.NoError(t, err)

	destDir := t.TempDir()
	_, err = Extract(t.Context(), data, destDir)
	require.ErrorIs(t, err, ErrInsecurePath)

	_, statErr := os.Stat(filepath.Join(destDir, "..", "escape.txt"))
	require.Error(t, statErr)
}

func TestExtract_RejectsAbsolutePaths(t *testing.T) {
	t.Parallel()

	data, err := Pack(t.Context(), []Entry{NewTextEntry("/etc/escape.txt", "pwned")})
	require.NoError(t, err)

	_, err = Extract(t.Context(), data, t.TempDir())
	require.ErrorIs(t, err, ErrInsecurePath)
}

func TestExtract_Workers(t *testing.T) {
	t.Parallel()

	entries := make([]Entry, 50)
	for i := range entries {
		entries[i] = NewTextEntry("w/"+string(rune('a'+i%26))+".txt", "x")
	}
	// Duplicate names collapse to one file on disk; dedupe the expectation.
	data, err := Pack(t.Context(), entries)
	require.NoError(t, err)

	destDir := t.TempDir()
	_, err = Extract(t.Context(), data, destDir, ExtractWithWorkers(8), ExtractWithOverwrite(true))
	require.NoError(t, err)

	names, err := os.ReadDir(filepath.Join(destDir, "w"))
	require.NoError(t, err)
	assert.Len(t, names, 26)
}

func TestExtract_ForwardsUnpackLimits(t *testing.T) {
	t.Parallel()

	data, err := Pack(t.Context(), []Entry{
		NewTextEntry("1.txt", "a"),
		NewTextEntry("2.txt", "b"),
	})
	require.NoError(t, err)

	_, err = Extract(t.Context(), data, t.TempDir(), ExtractWithUnpackOptions(UnpackWithMaxEntries(1)))
	require.ErrorIs(t, err, ErrTooManyEntries)
}
