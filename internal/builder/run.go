package builder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/xxdavis97/forge-container/internal/toolexec"
)

// runInChroot implements the RUN instruction's effect: host
// /etc/resolv.conf is copied in for build-time DNS, then command runs
// via chroot <rootfs> /bin/sh -c <command>, always at the chroot
// root — WORKDIR never changes where RUN executes, only the final
// ImageConfig.
func runInChroot(ctx context.Context, rootfs, command string) error {
	resolvConf := filepath.Join(rootfs, "etc", "resolv.conf")
	if err := os.MkdirAll(filepath.Dir(resolvConf), 0o755); err != nil {
		return fmt.Errorf("create /etc for resolv.conf: %w", err)
	}
	if err := copyFile("/etc/resolv.conf", resolvConf); err != nil {
		return fmt.Errorf("copy resolv.conf: %w", err)
	}

	if _, err := toolexec.Chroot(ctx, rootfs, command); err != nil {
		return fmt.Errorf("RUN command failed: %s: %w", command, err)
	}
	return nil
}
