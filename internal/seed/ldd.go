package seed

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/xxdavis97/forge-container/internal/toolexec"
)

// LddSeeder copies a fixed list of common shell utilities into root's
// /bin, then resolves and copies every shared library those binaries
// need via ldd, deduplicated across the whole set. It also copies
// terminfo data if present on the host. Grounded directly on the
// original forge-container's copy_bash_and_dependencies: same binary
// list, same ldd-output parsing, same terminfo copy.
type LddSeeder struct{}

var lddBinaries = []string{
	"/bin/bash", "/bin/sh", "/bin/ls", "/bin/cat", "/bin/touch",
	"/bin/cp", "/bin/mv", "/bin/rm", "/bin/mkdir", "/bin/rmdir",
	"/bin/nano", "/usr/bin/vi", "/bin/ps", "/bin/pwd", "/usr/bin/top",
	"/bin/kill", "/usr/bin/dd", "/bin/grep", "/usr/bin/find",
	"/usr/bin/wc", "/usr/bin/head", "/usr/bin/tail", "/bin/ip",
	"/sbin/ip", "/sbin/iptables", "/bin/ping", "/usr/bin/curl",
}

func (LddSeeder) Seed(ctx context.Context, root string) error {
	slog.Debug("seeding rootfs via ldd closure", "root", root)

	libs := make(map[string]struct{})
	for _, bin := range lddBinaries {
		collectSharedLibraries(ctx, bin, libs)
	}

	binCount := 0
	for _, bin := range lddBinaries {
		dst := filepath.Join(root, "bin", filepath.Base(bin))
		if copyFile(bin, dst) == nil {
			binCount++
		}
	}

	libCount := 0
	for lib := range libs {
		dst := filepath.Join(root, lib)
		if copyFile(lib, dst) == nil {
			libCount++
		}
	}

	copyTerminfo(ctx, root)

	slog.Debug("ldd seeding complete", "binaries", binCount, "libraries", libCount)
	return nil
}

func collectSharedLibraries(ctx context.Context, binary string, libs map[string]struct{}) {
	res, err := toolexec.Run(ctx, "ldd", binary)
	if err != nil {
		return
	}
	for _, lib := range parseLddOutput(res.Stdout) {
		libs[lib] = struct{}{}
	}
}

// parseLddOutput extracts absolute library paths from ldd's output,
// e.g. "libc.so.6 => /lib/x86_64-linux-gnu/libc.so.6 (0x...)" and the
// direct-path form some dynamic linkers emit, "/lib64/ld-linux.so.2".
func parseLddOutput(output string) []string {
	var libs []string
	for _, line := range strings.Split(output, "\n") {
		if strings.Contains(line, "=>") {
			parts := strings.Fields(line)
			if len(parts) >= 3 && strings.HasPrefix(parts[2], "/") {
				libs = append(libs, parts[2])
			}
		} else if trimmed := strings.TrimSpace(line); strings.HasPrefix(trimmed, "/") {
			if fields := strings.Fields(trimmed); len(fields) > 0 {
				libs = append(libs, fields[0])
			}
		}
	}
	return libs
}

func copyTerminfo(ctx context.Context, root string) {
	shareDir := filepath.Join(root, "usr", "share")
	if err := os.MkdirAll(shareDir, 0o755); err != nil {
		return
	}
	copyDirectoryRecursive(ctx, "/usr/share/terminfo", filepath.Join(shareDir, "terminfo"))

	if _, err := os.Stat("/lib/terminfo"); err == nil {
		libDir := filepath.Join(root, "lib")
		if err := os.MkdirAll(libDir, 0o755); err == nil {
			copyDirectoryRecursive(ctx, "/lib/terminfo", filepath.Join(libDir, "terminfo"))
		}
	}
}

func copyDirectoryRecursive(ctx context.Context, src, dst string) {
	_, _ = toolexec.Run(ctx, "cp", "-r", src, dst)
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	info, err := os.Stat(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, info.Mode().Perm())
}
