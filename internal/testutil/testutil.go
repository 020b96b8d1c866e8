// Package testutil provides shared helpers for zipkit tests.
package testutil

import (
	"archive/zip"
	"bytes"
	"errors"
	"testing"
)

// ErrBrokenReader is returned by BrokenReader after its prefix is consumed.
var ErrBrokenReader = errors.New("testutil: broken reader")

// BrokenReader yields its prefix bytes and then fails, for exercising
// source read errors.
type BrokenReader struct {
	prefix []byte
	off    int
}

// NewBrokenReader returns a reader that serves prefix and then errors.
func NewBrokenReader(prefix []byte) *BrokenReader {
	return &BrokenReader{prefix: prefix}
}

// Read implements io.Reader.
func (r *BrokenReader) Read(p []byte) (int, error) {
	if r.off >= len(r.prefix) {
		return 0, ErrBrokenReader
	}
	n := copy(p, r.prefix[r.off:])
	r.off += n
	return n, nil
}

// DeflateArchive builds a ZIP archive with deflate-compressed entries
// using the standard library writer, for testing input zipkit's packer
// never produces itself.
func DeflateArchive(t *testing.T, files map[string]string) []byte {
	t.Helper()

	var buf bytes.Buffer
	w := zip.NewWriter(&buf)
	for name, content := range files {
		fw, err := w.CreateHeader(&zip.FileHeader{Name: name, Method: zip.Deflate})
		if err != nil {
			t.Fatalf("create deflate entry %s: %v", name, err)
		}
		if _, err := fw.Write([]byte(content)); err != nil {
			t.Fatalf("write deflate entry %s: %v", name, err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close deflate archive: %v", err)
	}
	return buf.Bytes()
}

// StdlibNames opens data with the standard library reader and returns the
// entry names it reports, verifying interoperability of zipkit output.
func StdlibNames(t *testing.T, data []byte) []string {
	t.Helper()

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		t.Fatalf("stdlib open: %v", err)
	}
	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	return names
}
