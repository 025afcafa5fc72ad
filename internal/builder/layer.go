package builder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/xxdavis97/forge-container/internal/store"
	"github.com/xxdavis97/forge-container/internal/toolexec"
)

// createLayer tars rootfs into a scratch gzip tarball, saves it into
// the store, and removes the scratch file.
func createLayer(ctx context.Context, s *store.ImageStore, rootfs string) (store.LayerDigest, error) {
	tarballPath := filepath.Join(os.TempDir(), fmt.Sprintf("layer-%s.tar.gz", uuid.NewString()))
	defer os.Remove(tarballPath)

	if _, err := toolexec.Run(ctx, "tar", "-czf", tarballPath, "-C", rootfs, "."); err != nil {
		return "", fmt.Errorf("tar rootfs: %w", err)
	}

	digest, err := s.SaveLayer(tarballPath)
	if err != nil {
		return "", fmt.Errorf("save layer: %w", err)
	}
	return digest, nil
}

// extractLayer untars digest's tarball into rootfs.
func extractLayer(ctx context.Context, s *store.ImageStore, digest store.LayerDigest, rootfs string) error {
	layerPath := s.GetLayerPath(digest)
	if _, err := toolexec.Run(ctx, "tar", "-xzf", layerPath, "-C", rootfs); err != nil {
		return fmt.Errorf("extract layer %s: %w", digest, err)
	}
	return nil
}
