package builder

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHashPathFileIsContentSensitive(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.txt")
	if err := os.WriteFile(path, []byte("hello"), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}

	h1, err := hashPath(path)
	if err != nil {
		t.Fatalf("hashPath failed: %v", err)
	}

	if err := os.WriteFile(path, []byte("world"), 0o644); err != nil {
		t.Fatalf("rewrite file: %v", err)
	}
	h2, err := hashPath(path)
	if err != nil {
		t.Fatalf("hashPath failed: %v", err)
	}

	if h1 == h2 {
		t.Fatal("expected different content to produce different hashes")
	}
}

func TestHashPathDirectoryIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "b.txt"), []byte("b"), 0o644); err != nil {
		t.Fatalf("write b.txt: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a"), 0o644); err != nil {
		t.Fatalf("write a.txt: %v", err)
	}

	h1, err := hashPath(dir)
	if err != nil {
		t.Fatalf("hashPath failed: %v", err)
	}
	h2, err := hashPath(dir)
	if err != nil {
		t.Fatalf("hashPath failed: %v", err)
	}
	if h1 != h2 {
		t.Fatal("expected directory hash to be deterministic across repeated calls")
	}
}

func TestHashPathDirectoryOrderIndependentOfCreationOrder(t *testing.T) {
	dirA := t.TempDir()
	dirB := t.TempDir()

	// Same final contents, different creation order.
	os.WriteFile(filepath.Join(dirA, "a.txt"), []byte("a"), 0o644)
	os.WriteFile(filepath.Join(dirA, "b.txt"), []byte("b"), 0o644)
	os.WriteFile(filepath.Join(dirB, "b.txt"), []byte("b"), 0o644)
	os.WriteFile(filepath.Join(dirB, "a.txt"), []byte("a"), 0o644)

	h1, err := hashPath(dirA)
	if err != nil {
		t.Fatalf("hashPath failed: %v", err)
	}
	h2, err := hashPath(dirB)
	if err != nil {
		t.Fatalf("hashPath failed: %v", err)
	}
	if h1 != h2 {
		t.Fatal("expected identical directory contents to hash identically regardless of write order")
	}
}
