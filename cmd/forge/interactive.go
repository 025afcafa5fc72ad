package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xxdavis97/forge-container/internal/config"
	"github.com/xxdavis97/forge-container/internal/lifecycle"
	"github.com/xxdavis97/forge-container/internal/seed"
)

const interactiveCgroupName = "my_container"

// runInteractive implements §6's no-argument mode: seed a throwaway
// rootfs under /tmp/container-root and drop into a shell, with no
// image store involved at all.
func runInteractive(ctx context.Context) error {
	root := filepath.Join(os.TempDir(), "container-root")
	if err := os.RemoveAll(root); err != nil {
		return exitErrorf(1, "clear %s: %v", root, err)
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return exitErrorf(1, "create %s: %v", root, err)
	}

	slog.Info("seeding interactive rootfs", "root", root)
	if err := (seed.LddSeeder{}).Seed(ctx, root); err != nil {
		return exitErrorf(1, "seed rootfs: %v", err)
	}

	cfg, err := config.Load(os.Getenv("HOME"))
	if err != nil {
		return exitErrorf(1, "load config: %v", err)
	}

	code, err := lifecycle.Run(ctx, root, interactiveCgroupName, lifecycle.Config{}, cfg.DefaultInterface)
	if err != nil {
		return exitErrorf(1, "interactive session failed: %v", err)
	}
	if code != 0 {
		return &ExitError{Code: code, Err: fmt.Errorf("container exited with code %d", code)}
	}
	return nil
}
