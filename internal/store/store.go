package store

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	layersDir    = "layers"
	manifestsDir = "manifests"
	cacheIndex   = "cache_index.json"
)

// ImageStore is a directory holding layers/, manifests/<name>/<tag>(.config)
// and cache_index.json, per §3's ImageStore data model.
type ImageStore struct {
	Root string
}

// Open returns an ImageStore rooted at root, creating the layers/ and
// manifests/ directories if they don't exist.
func Open(root string) (*ImageStore, error) {
	if err := os.MkdirAll(filepath.Join(root, layersDir), 0o755); err != nil {
		return nil, fmt.Errorf("create layers dir: %w", err)
	}
	if err := os.MkdirAll(filepath.Join(root, manifestsDir), 0o755); err != nil {
		return nil, fmt.Errorf("create manifests dir: %w", err)
	}
	return &ImageStore{Root: root}, nil
}

func (s *ImageStore) layersPath() string {
	return filepath.Join(s.Root, layersDir)
}

func (s *ImageStore) manifestDir(name string) string {
	return filepath.Join(s.Root, manifestsDir, name)
}

func (s *ImageStore) cacheIndexPath() string {
	return filepath.Join(s.Root, cacheIndex)
}

// AlpineTarballPath returns the path where a downloaded Alpine
// minirootfs for the given architecture is cached, per §4.7's FROM
// alpine effect and §6's persisted layout.
func (s *ImageStore) AlpineTarballPath(arch string) string {
	return filepath.Join(s.Root, fmt.Sprintf("alpine-%s.tar.gz", arch))
}
