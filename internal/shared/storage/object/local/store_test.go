package local

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveAndDelete(t *testing.T) {
	store := New(t.TempDir()).(*Store)

	key, err := store.Save(context.Background(), "notes.pdf", []byte("%PDF-fake"))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if key == "" {
		t.Fatal("expected non-empty storage key")
	}

	path := filepath.Join(store.baseDir, key)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected file on disk: %v", err)
	}

	if err := store.Delete(context.Background(), key); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, got %v", err)
	}
}

func TestDeleteRejectsTraversalKey(t *testing.T) {
	store := New(t.TempDir())

	if err := store.Delete(context.Background(), "../secrets"); err == nil {
		t.Fatal("expected error for traversal key")
	}
}

func TestSaveRejectsBadName(t *testing.T) {
	store := New(t.TempDir())

	if _, err := store.Save(context.Background(), "../evil.pdf", []byte("x")); err == nil {
		t.Fatal("expected error for traversal name")
	}
}
