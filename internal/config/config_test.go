package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultInterface != "eth0" {
		t.Fatalf("expected default interface eth0, got %q", cfg.DefaultInterface)
	}
}

func TestLoadParsesYAML(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ConfigDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	content := "defaultInterface: wlan0\nlimits:\n  memoryBytes: 268435456\n  pidsMax: 50\n"
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(home)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DefaultInterface != "wlan0" {
		t.Fatalf("expected wlan0, got %q", cfg.DefaultInterface)
	}
	if cfg.Limits.MemoryBytes != 268435456 || cfg.Limits.PidsMax != 50 {
		t.Fatalf("unexpected limits: %+v", cfg.Limits)
	}
}

func TestLoadMalformedFileIsError(t *testing.T) {
	home := t.TempDir()
	dir := filepath.Join(home, ConfigDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("not: [valid yaml"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if _, err := Load(home); err == nil {
		t.Fatal("expected error for malformed config file")
	}
}
