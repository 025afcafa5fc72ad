package isolation

import (
	"log/slog"
	"os"
	"path/filepath"
)

// SkeletonDirs is the directory structure created under a container's
// rootfs before anything is seeded into it.
var SkeletonDirs = []string{
	"bin", "sbin", "lib", "lib64",
	"usr/bin", "usr/sbin", "usr/lib",
	"etc", "root", "home",
	"proc", "sys", "dev", "tmp",
	"var", "run",
	"old_root",
}

// CreateContainerDirs creates newRoot and its skeleton subdirectories.
// Individual subdirectory failures are logged and skipped rather than
// aborting the whole setup — a missing /var or /home shouldn't prevent
// a container from starting if everything else succeeds.
func CreateContainerDirs(newRoot string) error {
	slog.Debug("creating container directory structure", "root", newRoot)
	if err := os.MkdirAll(newRoot, 0o755); err != nil {
		return err
	}

	for _, dir := range SkeletonDirs {
		path := filepath.Join(newRoot, dir)
		if err := os.MkdirAll(path, 0o755); err != nil {
			slog.Warn("failed to create directory", "path", path, "error", err)
		}
	}

	slog.Debug("container directories created")
	return nil
}
