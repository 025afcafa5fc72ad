package isolation

import (
	"fmt"
	"log/slog"
	"os"

	"golang.org/x/sys/unix"
)

// PivotToNewRoot makes newRoot a bind-mounted mount point, then
// pivots into it, falling back to chroot if pivot_root fails (e.g.
// inside environments where the mount namespace doesn't allow it).
func PivotToNewRoot(newRoot string) error {
	if err := makeMountPoint(newRoot); err != nil {
		return err
	}

	if err := pivotToNewRoot(newRoot); err != nil {
		slog.Debug("pivot_root failed, trying chroot fallback", "error", err)
		return chrootFallback(newRoot)
	}
	return nil
}

func makeMountPoint(newRoot string) error {
	slog.Debug("making new root a mount point", "root", newRoot)
	if err := unix.Mount(newRoot, newRoot, "", unix.MS_BIND|unix.MS_REC, ""); err != nil {
		return fmt.Errorf("bind mount new root: %w", err)
	}
	return nil
}

func pivotToNewRoot(newRoot string) error {
	if err := unix.Chdir(newRoot); err != nil {
		return fmt.Errorf("chdir to new root: %w", err)
	}

	oldRoot := "./old_root"
	if err := os.MkdirAll(oldRoot, 0o755); err != nil {
		slog.Warn("failed to create old_root", "error", err)
	}

	if err := unix.PivotRoot(".", oldRoot); err != nil {
		return fmt.Errorf("pivot_root: %w", err)
	}

	if err := unix.Chdir("/"); err != nil {
		return fmt.Errorf("chdir to /: %w", err)
	}

	if err := unix.Unmount("/old_root", unix.MNT_DETACH); err != nil {
		slog.Debug("failed to unmount old root", "error", err)
	}
	if err := os.Remove("/old_root"); err != nil {
		slog.Debug("failed to remove /old_root", "error", err)
	}

	slog.Debug("pivoted to new root")
	return nil
}

func chrootFallback(newRoot string) error {
	slog.Debug("using chroot as fallback")
	if err := unix.Chroot(newRoot); err != nil {
		return fmt.Errorf("chroot: %w", err)
	}
	if err := unix.Chdir("/"); err != nil {
		return fmt.Errorf("chdir after chroot: %w", err)
	}
	slog.Debug("chrooted to new root")
	return nil
}
