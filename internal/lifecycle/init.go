package lifecycle

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/sys/unix"

	"github.com/xxdavis97/forge-container/internal/cgroup"
	"github.com/xxdavis97/forge-container/internal/isolation"
)

// Init runs the container side of §4.4 and never returns on success —
// it ends by execing the entrypoint or a fallback shell. It must only
// be called from a process that IsInit() reported true for, i.e. the
// freshly reexec'd child whose SysProcAttr already placed it in new
// PID/mount/UTS namespaces.
func Init() {
	if len(os.Args) < 3 {
		fmt.Fprintln(os.Stderr, "forge-container-init: missing handoff file argument")
		os.Exit(1)
	}

	h, err := readHandoff(os.Args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "forge-container-init: %v\n", err)
		os.Exit(1)
	}

	slog.Debug("setting up container", "pid", os.Getpid())

	if err := isolation.UnshareNetworkNamespace(); err != nil {
		fatal("unshare network namespace", err)
	}

	cgroup.AddProcess(h.CgroupName, os.Getpid())

	if err := setupRootfs(h.RootfsPath); err != nil {
		fatal("set up root filesystem", err)
	}

	applyConfig(h.Config)

	if len(h.Config.Entrypoint) > 0 {
		startEntrypoint(h.Config.Entrypoint)
	} else {
		startShell()
	}
}

func readHandoff(path string) (handoff, error) {
	var h handoff
	data, err := os.ReadFile(path)
	if err != nil {
		return h, fmt.Errorf("read handoff file: %w", err)
	}
	if err := json.Unmarshal(data, &h); err != nil {
		return h, fmt.Errorf("parse handoff file: %w", err)
	}
	return h, nil
}

func setupRootfs(rootfsPath string) error {
	if err := isolation.CreateContainerDirs(rootfsPath); err != nil {
		return err
	}
	if err := isolation.PivotToNewRoot(rootfsPath); err != nil {
		return err
	}
	return isolation.MountEssentialFilesystems()
}

func applyConfig(cfg Config) {
	for _, kv := range cfg.Env {
		if pos := strings.IndexByte(kv, '='); pos >= 0 {
			_ = os.Setenv(kv[:pos], kv[pos+1:])
		}
	}

	workdir := cfg.WorkingDir
	if workdir == "" {
		workdir = "/"
	}
	if err := os.Chdir(workdir); err != nil {
		slog.Warn("failed to change directory", "dir", workdir, "error", err)
	}
}

func startEntrypoint(entrypoint []string) {
	slog.Debug("starting entrypoint", "entrypoint", entrypoint)
	path, err := resolveExecutable(entrypoint[0])
	if err != nil {
		fatal("resolve entrypoint", err)
	}
	if err := unix.Exec(path, entrypoint, os.Environ()); err != nil {
		fatal("exec entrypoint", err)
	}
}

func startShell() {
	slog.Debug("starting shell")
	shell := "/bin/bash"
	if _, err := os.Stat(shell); err != nil {
		shell = "/bin/sh"
	}
	if err := unix.Exec(shell, []string{shell}, os.Environ()); err != nil {
		fatal("exec shell", err)
	}
}

// resolveExecutable finds argv0 on PATH if it isn't already an
// absolute or relative path that exists.
func resolveExecutable(argv0 string) (string, error) {
	if strings.Contains(argv0, "/") {
		return argv0, nil
	}
	for _, dir := range strings.Split(os.Getenv("PATH"), ":") {
		candidate := dir + "/" + argv0
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%s: not found in PATH", argv0)
}

func fatal(step string, err error) {
	slog.Error("container init failed", "step", step, "error", err)
	os.Exit(1)
}
