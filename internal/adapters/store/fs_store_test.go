package store

import (
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"
)

// TestFSStoreSave verifies the write path and the never-overwrite contract.
func TestFSStoreSave(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFSStore(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}

	path, saved, err := s.Save("42_resume.pdf", []byte("first"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !saved {
		t.Error("first Save reported saved=false")
	}
	if path != filepath.Join(dir, "42_resume.pdf") {
		t.Errorf("path = %q", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != "first" {
		t.Errorf("stored content = %q, want %q", data, "first")
	}

	// Re-saving the same derived name is a silent no-op.
	path2, saved, err := s.Save("42_resume.pdf", []byte("second"))
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if saved {
		t.Error("second Save reported saved=true")
	}
	if path2 != path {
		t.Errorf("second path = %q, want %q", path2, path)
	}

	data, _ = os.ReadFile(path)
	if string(data) != "first" {
		t.Errorf("content after re-save = %q, existing files must not be overwritten", data)
	}
}

// TestNewFSStoreCreatesDirectory verifies nested directory creation.
func TestNewFSStoreCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "resumes")
	if _, err := NewFSStore(dir, zap.NewNop()); err != nil {
		t.Fatalf("NewFSStore: %v", err)
	}
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		t.Fatalf("store directory not created: %v", err)
	}
}
