package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

type testDoc struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestStore_WriteAndRead(t *testing.T) {
	s := New(t.TempDir())

	if err := s.Write(NamespaceUI, testDoc{Name: "sidebar", Count: 1}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc testDoc
	if err := s.Read(NamespaceUI, &doc); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.Name != "sidebar" || doc.Count != 1 {
		t.Errorf("unexpected document: %+v", doc)
	}
}

func TestStore_ReadMissing(t *testing.T) {
	s := New(t.TempDir())

	var doc testDoc
	err := s.Read(NamespaceSession, &doc)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_ReadCorrupt(t *testing.T) {
	dir := t.TempDir()
	s := New(dir)

	if err := os.WriteFile(filepath.Join(dir, "theme.json"), []byte("{not json"), 0600); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc testDoc
	err := s.Read(NamespaceTheme, &doc)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound for corrupt file, got %v", err)
	}
}

func TestStore_NamespacesAreIndependent(t *testing.T) {
	s := New(t.TempDir())

	if err := s.Write(NamespaceSession, testDoc{Name: "token"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Write(NamespaceTheme, testDoc{Name: "dark"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := s.Clear(NamespaceSession); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc testDoc
	if err := s.Read(NamespaceTheme, &doc); err != nil {
		t.Fatalf("clearing session should not touch theme: %v", err)
	}
	if doc.Name != "dark" {
		t.Errorf("expected theme to survive, got %+v", doc)
	}
}

func TestStore_ClearMissing(t *testing.T) {
	s := New(t.TempDir())

	if err := s.Clear(NamespaceUI); err != nil {
		t.Errorf("clearing a missing namespace should not error, got %v", err)
	}
}
