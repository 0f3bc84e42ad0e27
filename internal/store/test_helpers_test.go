package store

import (
	"context"
	"path/filepath"
	"testing"
)

// createTestStore creates a new file-backed store in a temp directory.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bluRays.sqlite")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// mustInsert inserts a row and fails the test on error.
func mustInsert(t *testing.T, s *Store, name string, location int) int64 {
	t.Helper()
	id, err := s.Insert(context.Background(), name, location)
	if err != nil {
		t.Fatalf("Insert(%q, %d) failed: %v", name, location, err)
	}
	return id
}
