package seed

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// StaticSeeder copies a single statically-linked /bin/sh into root, if
// one is present on the host, and nothing else. It avoids the ldd/cp
// shell-outs LddSeeder relies on, at the cost of a much sparser shell
// environment — the alternative spec.md's design notes suggest for a
// reimplementation that wants to shed the ldd approach's
// architecture/distro fragility.
type StaticSeeder struct {
	// ShPath overrides the host path searched for a static shell.
	// Empty means the default search list is used.
	ShPath string
}

var staticShCandidates = []string{
	"/bin/busybox",
	"/bin/sh.static",
	"/bin/sh",
}

func (s StaticSeeder) Seed(ctx context.Context, root string) error {
	candidates := staticShCandidates
	if s.ShPath != "" {
		candidates = []string{s.ShPath}
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		dst := filepath.Join(root, "bin", "sh")
		if err := copyFile(candidate, dst); err != nil {
			continue
		}
		slog.Debug("seeded rootfs with static shell", "root", root, "source", candidate)
		return nil
	}

	return fmt.Errorf("static seeder: no usable shell found among %v", candidates)
}
