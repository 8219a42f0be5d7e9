package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestManager_SaveLoadClear(t *testing.T) {
	m := NewManager(NewMemStore())

	if _, err := m.ID(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession before save, got %v", err)
	}

	if err := m.SaveID("0d4cbd7a-9f5e-4c73-9a3e-000000000001"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	id, err := m.ID()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if id != "0d4cbd7a-9f5e-4c73-9a3e-000000000001" {
		t.Errorf("unexpected id %q", id)
	}

	if err := m.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, err := m.ID(); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession after clear, got %v", err)
	}
}

func TestManager_SaveOverwrites(t *testing.T) {
	m := NewManager(NewMemStore())

	if err := m.SaveID("first"); err != nil {
		t.Fatal(err)
	}
	if err := m.SaveID("second"); err != nil {
		t.Fatal(err)
	}

	id, err := m.ID()
	if err != nil {
		t.Fatal(err)
	}
	if id != "second" {
		t.Errorf("expected overwritten id, got %q", id)
	}
}

func TestFileStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewFileStore(path)

	if _, err := s.Load(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("expected ErrNoSession for missing file, got %v", err)
	}

	if err := s.Save("abc-123"); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	id, err := s.Load()
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if id != "abc-123" {
		t.Errorf("unexpected id %q", id)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0600 {
		t.Errorf("expected 0600 permissions, got %v", info.Mode().Perm())
	}
}

func TestFileStore_ClearRemovesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	s := NewFileStore(path)

	if err := s.Save("abc-123"); err != nil {
		t.Fatal(err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("clear failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Errorf("expected file removed, got %v", err)
	}

	// Clearing an already-empty store is not an error.
	if err := s.Clear(); err != nil {
		t.Errorf("second clear failed: %v", err)
	}
}

func TestFileStore_EmptyIDIsNoSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	if err := os.WriteFile(path, []byte(`{"installation_id": ""}`), 0600); err != nil {
		t.Fatal(err)
	}

	s := NewFileStore(path)
	if _, err := s.Load(); !errors.Is(err, ErrNoSession) {
		t.Errorf("expected ErrNoSession for empty id, got %v", err)
	}
}
