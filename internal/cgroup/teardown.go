package cgroup

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sys/unix"
)

// Cleanup kills every process in name's cgroup and removes its
// directories. Errors are non-fatal: a container shutdown that can't
// fully tear down its cgroup shouldn't block the caller, matching the
// original's tolerant cleanup_cgroup.
func Cleanup(name string) {
	slog.Debug("cleaning up cgroup", "name", name)
	time.Sleep(100 * time.Millisecond)

	if IsV2() {
		cleanupV2(name)
		return
	}
	cleanupV1(name)
}

func cleanupV2(name string) {
	path := filepath.Join(cgroupRoot, name)
	killAll(filepath.Join(path, "cgroup.procs"))
	time.Sleep(50 * time.Millisecond)
	removeDir(path, name)
}

func cleanupV1(name string) {
	for _, controller := range v1Controllers {
		path := filepath.Join(cgroupRoot, controller, name)
		killAll(filepath.Join(path, "cgroup.procs"))
	}

	time.Sleep(50 * time.Millisecond)

	for _, controller := range v1Controllers {
		path := filepath.Join(cgroupRoot, controller, name)
		removeDir(path, name)
	}
}

func killAll(procsFile string) {
	data, err := os.ReadFile(procsFile)
	if err != nil {
		return
	}
	for _, line := range strings.Split(string(data), "\n") {
		pid, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || pid <= 0 {
			continue
		}
		_ = unix.Kill(pid, unix.SIGKILL)
	}
}

func removeDir(path, name string) {
	err := os.Remove(path)
	switch {
	case err == nil:
		slog.Debug("cgroup removed", "name", name)
	case os.IsNotExist(err):
	default:
		slog.Debug("failed to remove cgroup", "path", path, "error", err)
	}
}
