package builder

import (
	"context"
	"testing"

	"github.com/xxdavis97/forge-container/internal/forgefile"
	"github.com/xxdavis97/forge-container/internal/store"
)

func TestBuildMetadataOnlyProducesZeroLayers(t *testing.T) {
	s, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open store failed: %v", err)
	}

	bf, err := forgefile.Parse([]byte("WORKDIR /app\nENV FOO=bar\nENTRYPOINT [\"/bin/sh\"]\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if err := Build(context.Background(), s, bf, "app", "latest"); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	manifest, err := s.LoadManifest("app", "latest")
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if len(manifest.Layers) != 0 {
		t.Fatalf("expected zero layers for a metadata-only build, got %d", len(manifest.Layers))
	}

	cfg, err := s.LoadConfig("app", "latest")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.WorkingDir != "/app" {
		t.Fatalf("expected working dir /app, got %q", cfg.WorkingDir)
	}
	if len(cfg.Env) != 2 || cfg.Env[1] != "FOO=bar" {
		t.Fatalf("unexpected env: %v", cfg.Env)
	}
	if len(cfg.Entrypoint) != 1 || cfg.Entrypoint[0] != "/bin/sh" {
		t.Fatalf("unexpected entrypoint: %v", cfg.Entrypoint)
	}
}

func TestBuildEmptyFileYieldsEmptyManifestAndDefaultConfig(t *testing.T) {
	s, err := store.Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open store failed: %v", err)
	}

	bf, err := forgefile.Parse([]byte(""))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if err := Build(context.Background(), s, bf, "app", "latest"); err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	manifest, err := s.LoadManifest("app", "latest")
	if err != nil {
		t.Fatalf("LoadManifest failed: %v", err)
	}
	if len(manifest.Layers) != 0 {
		t.Fatalf("expected zero layers for an empty build file, got %d", len(manifest.Layers))
	}

	cfg, err := s.LoadConfig("app", "latest")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.WorkingDir != "/" || len(cfg.Entrypoint) != 0 {
		t.Fatalf("unexpected default config: %+v", cfg)
	}
	if len(cfg.Env) != 1 || cfg.Env[0] != "PATH=/usr/local/bin:/usr/bin:/bin" {
		t.Fatalf("unexpected default env: %v", cfg.Env)
	}
}
