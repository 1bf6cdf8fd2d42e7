package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewLocalStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads", "nested")
	s, err := NewLocalStore(dir, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Dir() != dir {
		t.Errorf("Dir() = %q, want %q", s.Dir(), dir)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("upload dir not created: %v", err)
	}
}

func TestNewLocalStoreRequiresDir(t *testing.T) {
	if _, err := NewLocalStore("", nil); err == nil {
		t.Fatal("expected error for empty dir")
	}
}

func TestSave(t *testing.T) {
	s, err := NewLocalStore(t.TempDir(), nil)
	if err != nil {
		t.Fatal(err)
	}
	path, err := s.Save("abc_report.pdf", []byte("%PDF-1.4"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Dir(path) != s.Dir() {
		t.Errorf("saved outside upload dir: %q", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "%PDF-1.4" {
		t.Errorf("round trip mismatch: %q", data)
	}
}
