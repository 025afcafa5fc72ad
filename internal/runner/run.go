package runner

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"

	"github.com/xxdavis97/forge-container/internal/lifecycle"
	"github.com/xxdavis97/forge-container/internal/store"
	"github.com/xxdavis97/forge-container/internal/toolexec"
)

// Run resolves ref against s, materialises a fresh rootfs from its
// layers, and hands off to the lifecycle engine. It returns the
// container's exit code.
func Run(ctx context.Context, s *store.ImageStore, ref, defaultIfaceFallback string) (int, error) {
	name, tag := ParseRef(ref)

	slog.Debug("loading image", "name", name, "tag", tag)
	manifest, err := s.LoadManifest(name, tag)
	if err != nil {
		return 1, fmt.Errorf("load manifest %s:%s: %w", name, tag, err)
	}
	imgCfg, err := s.LoadConfig(name, tag)
	if err != nil {
		return 1, fmt.Errorf("load config %s:%s: %w", name, tag, err)
	}

	containerID := uuid.NewString()
	rootfs := filepath.Join(os.TempDir(), fmt.Sprintf("container-%s", containerID))
	if err := os.MkdirAll(rootfs, 0o755); err != nil {
		return 1, fmt.Errorf("create rootfs dir: %w", err)
	}

	if err := extractLayers(ctx, s, manifest, rootfs); err != nil {
		_ = os.RemoveAll(rootfs)
		return 1, err
	}

	slog.Debug("rootfs ready", "rootfs", rootfs, "working_dir", imgCfg.WorkingDir, "entrypoint", imgCfg.Entrypoint)

	cgroupName := fmt.Sprintf("img-%s", containerID)
	cfg := lifecycle.Config{Entrypoint: imgCfg.Entrypoint, Env: imgCfg.Env, WorkingDir: imgCfg.WorkingDir}
	return lifecycle.Run(ctx, rootfs, cgroupName, cfg, defaultIfaceFallback)
}

func extractLayers(ctx context.Context, s *store.ImageStore, manifest store.ImageManifest, rootfs string) error {
	slog.Info("extracting layers", "count", len(manifest.Layers))

	var bar *progressbar.ProgressBar
	if term.IsTerminal(int(os.Stdout.Fd())) {
		bar = progressbar.Default(int64(len(manifest.Layers)), "extracting layers")
	}

	for i, digest := range manifest.Layers {
		slog.Debug("extracting layer", "index", i+1, "total", len(manifest.Layers), "digest", digest)

		layerPath := s.GetLayerPath(digest)
		if _, err := toolexec.Run(ctx, "tar", "-xzf", layerPath, "-C", rootfs); err != nil {
			return fmt.Errorf("extract layer %s: %w", digest, err)
		}

		if bar != nil {
			_ = bar.Add(1)
		}
	}
	return nil
}
