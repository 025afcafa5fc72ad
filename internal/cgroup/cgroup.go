package cgroup

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// cgroupRoot is a var, not a const, so tests can point it at a
// temporary directory standing in for /sys/fs/cgroup.
var cgroupRoot = "/sys/fs/cgroup"

// v1Controllers are the controllers this runtime limits under a v1
// hierarchy, mirroring the set enabled under v2.
var v1Controllers = []string{"cpu", "memory", "pids"}

// Limits are the resource caps applied to every container, per §4.2.
// These are fixed defaults; internal/config.Limits can override them.
type Limits struct {
	CPUQuotaMicros  int64
	CPUPeriodMicros int64
	MemoryBytes     int64
	PidsMax         int64
}

// DefaultLimits are the spec's hardcoded values: 50% of one CPU core,
// 512MiB of memory, 100 pids.
var DefaultLimits = Limits{
	CPUQuotaMicros:  50000,
	CPUPeriodMicros: 100000,
	MemoryBytes:     536870912,
	PidsMax:         100,
}

// IsV2 reports whether the host's cgroup filesystem is unified (v2),
// detected by the presence of cgroup.controllers at the mount root.
func IsV2() bool {
	_, err := os.Stat(filepath.Join(cgroupRoot, "cgroup.controllers"))
	return err == nil
}

// Setup creates name's cgroup hierarchy, applies limits, and adds the
// calling process to it.
func Setup(name string, limits Limits) {
	slog.Debug("setting up cgroup", "name", name)
	createHierarchy(name)
	setLimits(name, limits)
	AddProcess(name, os.Getpid())
	slog.Debug("cgroup configured", "name", name)
}

func createHierarchy(name string) {
	if IsV2() {
		path := filepath.Join(cgroupRoot, name)
		if err := os.MkdirAll(path, 0o755); err != nil {
			slog.Warn("failed to create cgroup", "path", path, "error", err)
		}
		enableControllersV2()
		return
	}

	for _, controller := range v1Controllers {
		path := filepath.Join(cgroupRoot, controller, name)
		if err := os.MkdirAll(path, 0o755); err != nil {
			slog.Warn("failed to create cgroup", "path", path, "error", err)
		}
	}
}

// enableControllersV2 reads the ROOT cgroup's controllers file —
// cgroup.controllers, not the typo'd "cgroups.controllers" some
// implementations carry — and enables only the controllers it
// actually lists in cgroup.subtree_control, instead of unconditionally
// writing "+cpu +memory +pids" regardless of what the kernel offers.
func enableControllersV2() {
	data, err := os.ReadFile(filepath.Join(cgroupRoot, "cgroup.controllers"))
	if err != nil {
		slog.Debug("failed to read cgroup.controllers", "error", err)
		return
	}

	enable := subtreeControlArg(string(data), v1Controllers)
	if enable == "" {
		return
	}

	subtreeFile := filepath.Join(cgroupRoot, "cgroup.subtree_control")
	if err := os.WriteFile(subtreeFile, []byte(enable), 0o644); err != nil {
		slog.Debug("failed to enable controllers", "error", err)
	}
}

// subtreeControlArg returns the "+ctrl +ctrl" string to write to
// cgroup.subtree_control, restricted to the controllers actually
// listed in controllersFile (the contents of cgroup.controllers).
// Requesting a controller the kernel doesn't offer would make the
// whole write fail, so unavailable controllers are dropped rather
// than requested.
func subtreeControlArg(controllersFile string, wanted []string) string {
	available := make(map[string]bool)
	for _, c := range strings.Fields(controllersFile) {
		available[c] = true
	}

	var enable []string
	for _, w := range wanted {
		if available[w] {
			enable = append(enable, "+"+w)
		}
	}
	return strings.Join(enable, " ")
}

func setLimits(name string, limits Limits) {
	if IsV2() {
		setLimitsV2(name, limits)
		return
	}
	setLimitsV1(name, limits)
}

func setLimitsV1(name string, limits Limits) {
	writeCgroupFile(filepath.Join("cpu", name, "cpu.cfs_quota_us"), strconv.FormatInt(limits.CPUQuotaMicros, 10))
	writeCgroupFile(filepath.Join("cpu", name, "cpu.cfs_period_us"), strconv.FormatInt(limits.CPUPeriodMicros, 10))
	writeCgroupFile(filepath.Join("memory", name, "memory.limit_in_bytes"), strconv.FormatInt(limits.MemoryBytes, 10))
	writeCgroupFile(filepath.Join("pids", name, "pids.max"), strconv.FormatInt(limits.PidsMax, 10))
	slog.Debug("resource limits set (v1)", "name", name)
}

func setLimitsV2(name string, limits Limits) {
	quota := strconv.FormatInt(limits.CPUQuotaMicros, 10) + " " + strconv.FormatInt(limits.CPUPeriodMicros, 10)
	writeCgroupFile(filepath.Join(name, "cpu.max"), quota)
	writeCgroupFile(filepath.Join(name, "memory.max"), strconv.FormatInt(limits.MemoryBytes, 10))
	writeCgroupFile(filepath.Join(name, "pids.max"), strconv.FormatInt(limits.PidsMax, 10))
	slog.Debug("resource limits set (v2)", "name", name)
}

// AddProcess writes pid into name's cgroup.procs.
func AddProcess(name string, pid int) {
	pidStr := strconv.Itoa(pid)

	if IsV2() {
		writeCgroupFile(filepath.Join(name, "cgroup.procs"), pidStr)
		return
	}

	for _, controller := range v1Controllers {
		writeCgroupFile(filepath.Join(controller, name, "cgroup.procs"), pidStr)
	}
}

func writeCgroupFile(relPath, content string) {
	full := filepath.Join(cgroupRoot, relPath)
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		slog.Debug("failed to write cgroup file", "path", full, "error", err)
	}
}
