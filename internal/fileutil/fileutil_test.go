package fileutil

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestWriteFileVerifiedCreatesAndTruncates(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")
	if err := os.WriteFile(path, bytes.Repeat([]byte("x"), 4096), 0o644); err != nil {
		t.Fatal(err)
	}

	data := []byte("PK\x03\x04 short")
	if err := WriteFileVerified(path, data, 0o644); err != nil {
		t.Fatalf("WriteFileVerified: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Fatalf("file content mismatch: %q", got)
	}
}

func TestWriteFileVerifiedMissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "deck.pptx")
	err := WriteFileVerified(path, []byte("x"), 0o644)
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
}

func TestWriteFileVerifiedDirectoryTarget(t *testing.T) {
	dir := t.TempDir()
	if err := WriteFileVerified(dir, []byte("x"), 0o644); err == nil {
		t.Fatal("expected error writing over a directory")
	}
}
