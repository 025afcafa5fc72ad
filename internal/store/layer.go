package store

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LayerDigest is a content address of the form "sha256:<hex>".
type LayerDigest = string

// SaveLayer copies the tarball at tarballPath into the store, keyed by
// the SHA-256 of its bytes, and returns that digest. Re-saving
// identical bytes overwrites the existing file with the same content —
// an idempotent no-op in effect, per §4.5.
func (s *ImageStore) SaveLayer(tarballPath string) (LayerDigest, error) {
	f, err := os.Open(tarballPath)
	if err != nil {
		return "", fmt.Errorf("open tarball: %w", err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hash tarball: %w", err)
	}
	digest := "sha256:" + hex.EncodeToString(h.Sum(nil))

	dest := s.GetLayerPath(digest)
	if err := copyFile(tarballPath, dest); err != nil {
		return "", fmt.Errorf("store layer %s: %w", digest, err)
	}

	return digest, nil
}

// LayerExists reports whether digest's backing file is present in the
// store.
func (s *ImageStore) LayerExists(digest LayerDigest) bool {
	_, err := os.Stat(s.GetLayerPath(digest))
	return err == nil
}

// GetLayerPath returns the on-disk path for a layer digest.
func (s *ImageStore) GetLayerPath(digest LayerDigest) string {
	return filepath.Join(s.layersPath(), digest)
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
