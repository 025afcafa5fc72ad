package isolation

import (
	"fmt"
	"log/slog"

	"golang.org/x/sys/unix"
)

// MountEssentialFilesystems mounts /proc, /sys, /dev, and /tmp inside
// the (already pivoted/chrooted) container root. /proc and /tmp
// failures are fatal — a container without them is barely usable;
// /sys and /dev degrade gracefully, matching the tolerance levels in
// the original setup_root_filesystem.
func MountEssentialFilesystems() error {
	if err := mountProc(); err != nil {
		return err
	}
	mountSys()
	mountDev()
	if err := mountTmp(); err != nil {
		return err
	}
	slog.Debug("essential filesystems mounted")
	return nil
}

func mountProc() error {
	if err := unix.Mount("proc", "/proc", "proc", 0, ""); err != nil {
		return fmt.Errorf("mount /proc: %w", err)
	}
	return nil
}

func mountSys() {
	if err := unix.Mount("sysfs", "/sys", "sysfs", 0, ""); err != nil {
		slog.Warn("failed to mount /sys", "error", err)
	}
}

func mountDev() {
	err := unix.Mount("devtmpfs", "/dev", "devtmpfs", unix.MS_NOSUID|unix.MS_STRICTATIME, "")
	if err == nil {
		return
	}
	slog.Debug("devtmpfs failed, trying tmpfs fallback", "error", err)
	if err := unix.Mount("tmpfs", "/dev", "tmpfs", unix.MS_NOSUID, "mode=755"); err != nil {
		slog.Warn("failed to mount /dev", "error", err)
	}
}

func mountTmp() error {
	if err := unix.Mount("tmpfs", "/tmp", "tmpfs", 0, ""); err != nil {
		return fmt.Errorf("mount /tmp: %w", err)
	}
	return nil
}
