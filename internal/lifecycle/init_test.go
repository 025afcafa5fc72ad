package lifecycle

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveExecutableAbsolutePath(t *testing.T) {
	path, err := resolveExecutable("/bin/true")
	if err != nil {
		t.Fatalf("resolveExecutable failed: %v", err)
	}
	if path != "/bin/true" {
		t.Fatalf("expected /bin/true unchanged, got %q", path)
	}
}

func TestResolveExecutableSearchesPath(t *testing.T) {
	dir := t.TempDir()
	binPath := filepath.Join(dir, "mytool")
	if err := os.WriteFile(binPath, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write binary: %v", err)
	}

	oldPath := os.Getenv("PATH")
	os.Setenv("PATH", dir)
	defer os.Setenv("PATH", oldPath)

	resolved, err := resolveExecutable("mytool")
	if err != nil {
		t.Fatalf("resolveExecutable failed: %v", err)
	}
	if resolved != binPath {
		t.Fatalf("expected %q, got %q", binPath, resolved)
	}
}

func TestResolveExecutableNotFound(t *testing.T) {
	oldPath := os.Getenv("PATH")
	os.Setenv("PATH", t.TempDir())
	defer os.Setenv("PATH", oldPath)

	if _, err := resolveExecutable("definitely-not-a-real-tool"); err == nil {
		t.Fatal("expected error for unresolvable executable")
	}
}

func TestHandoffRoundtrip(t *testing.T) {
	identity := ContainerIdentity{Name: "t", RootfsPath: "/tmp/x", CgroupName: "img-t"}
	cfg := Config{Entrypoint: []string{"/bin/cat", "/greeting"}, Env: []string{"FOO=bar"}, WorkingDir: "/app"}

	path, err := writeHandoff(identity, cfg)
	if err != nil {
		t.Fatalf("writeHandoff failed: %v", err)
	}
	defer os.Remove(path)

	h, err := readHandoff(path)
	if err != nil {
		t.Fatalf("readHandoff failed: %v", err)
	}
	if h.RootfsPath != identity.RootfsPath || h.CgroupName != identity.CgroupName {
		t.Fatalf("unexpected identity fields: %+v", h)
	}
	if len(h.Config.Entrypoint) != 2 || h.Config.WorkingDir != "/app" {
		t.Fatalf("unexpected config: %+v", h.Config)
	}
}
