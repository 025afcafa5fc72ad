package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// ImageManifest is the ordered list of layer digests that, extracted
// in order, produce an image's rootfs.
type ImageManifest struct {
	Name   string   `json:"name"`
	Tag    string   `json:"tag"`
	Layers []string `json:"layers"`
}

// ImageConfig is the runtime configuration stored alongside a manifest.
type ImageConfig struct {
	Entrypoint []string `json:"entrypoint"`
	Env        []string `json:"env"`
	WorkingDir string   `json:"working_dir"`
}

// SaveManifest persists m as JSON. Per §3's invariant, it refuses to
// save a manifest that references a layer absent from the store.
func (s *ImageStore) SaveManifest(m ImageManifest) error {
	for _, digest := range m.Layers {
		if !s.LayerExists(digest) {
			return fmt.Errorf("save manifest %s:%s: layer %s does not exist in store", m.Name, m.Tag, digest)
		}
	}

	dir := s.manifestDir(m.Name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create manifest dir: %w", err)
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	return os.WriteFile(filepath.Join(dir, m.Tag), data, 0o644)
}

// LoadManifest loads the manifest for name:tag.
func (s *ImageStore) LoadManifest(name, tag string) (ImageManifest, error) {
	var m ImageManifest
	data, err := os.ReadFile(filepath.Join(s.manifestDir(name), tag))
	if err != nil {
		return m, fmt.Errorf("read manifest: %w", err)
	}
	if err := json.Unmarshal(data, &m); err != nil {
		return m, fmt.Errorf("unmarshal manifest: %w", err)
	}
	return m, nil
}

// SaveConfig persists the ImageConfig alongside name:tag's manifest.
func (s *ImageStore) SaveConfig(name, tag string, cfg ImageConfig) error {
	dir := s.manifestDir(name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create manifest dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	return os.WriteFile(filepath.Join(dir, tag+".config"), data, 0o644)
}

// LoadConfig loads the ImageConfig for name:tag.
func (s *ImageStore) LoadConfig(name, tag string) (ImageConfig, error) {
	var cfg ImageConfig
	data, err := os.ReadFile(filepath.Join(s.manifestDir(name), tag+".config"))
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}
