package state

import (
	"path/filepath"
	"testing"
)

func TestFileStoreMissingFile(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "last_hash.txt"))
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "" {
		t.Fatalf("expected empty fingerprint, got %q", got)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "last_hash.txt"))
	if err := s.Save("abc123"); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "abc123" {
		t.Fatalf("got %q", got)
	}
	if err := s.Save("def456"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err = s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "def456" {
		t.Fatalf("got %q", got)
	}
}

func TestFileStoreTrimsWhitespace(t *testing.T) {
	path := filepath.Join(t.TempDir(), "last_hash.txt")
	s := NewFileStore(path)
	if err := s.Save("abc123\n"); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got != "abc123" {
		t.Fatalf("got %q", got)
	}
}
