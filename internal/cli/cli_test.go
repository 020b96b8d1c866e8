package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the CLI with args and returns captured stdout.
func run(t *testing.T, args ...string) string {
	t.Helper()

	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	require.NoError(t, cmd.Execute(), "output: %s", out.String())
	return out.String()
}

func TestPackUnpackInspect(t *testing.T) {
	srcDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(srcDir, "sub"), 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "a.txt"), []byte("alpha"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "sub", "b.txt"), []byte("beta"), 0o644))

	archive := filepath.Join(t.TempDir(), "out.zip")
	out := run(t, "pack", srcDir, "-o", archive, "--comment", "cli test")
	assert.Contains(t, out, "packed 2 entries")

	out = run(t, "inspect", archive)
	assert.Contains(t, out, "entries: 2")
	assert.Contains(t, out, "comment: cli test")
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "sub/b.txt")

	destDir := t.TempDir()
	out = run(t, "unpack", archive, "-d", destDir)
	assert.Contains(t, out, "extracted 2 files")

	got, err := os.ReadFile(filepath.Join(destDir, "sub", "b.txt"))
	require.NoError(t, err)
	assert.Equal(t, "beta", string(got))
}

func TestUnpackMissingArchive(t *testing.T) {
	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"unpack", filepath.Join(t.TempDir(), "missing.zip")})
	require.Error(t, cmd.Execute())
}

func TestPackDefaultOutputName(t *testing.T) {
	srcDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(srcDir, "x.txt"), []byte("x"), 0o644))

	workDir := t.TempDir()
	t.Chdir(workDir)

	out := run(t, "pack", srcDir)
	assert.Contains(t, out, "packed 1 entries")

	matches, err := filepath.Glob(filepath.Join(workDir, "archive-*.zip"))
	require.NoError(t, err)
	assert.Len(t, matches, 1)
}
