package toolexec

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
)

// Result carries the captured output of a completed external command.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// Run executes name with args, with no working directory override, and
// returns its captured output. A non-zero exit is reported as an error
// wrapping *exec.ExitError.
func Run(ctx context.Context, name string, args ...string) (Result, error) {
	return RunDir(ctx, "", name, args...)
}

// RunDir is Run with an explicit working directory; an empty dir
// inherits the caller's.
func RunDir(ctx context.Context, dir string, name string, args ...string) (Result, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}

	argv := append([]string{name}, args...)
	if err != nil {
		slog.Error("external command failed",
			"argv", strings.Join(argv, " "),
			"exit_code", res.ExitCode,
			"stderr", strings.TrimSpace(res.Stderr),
		)
		return res, fmt.Errorf("run %s: %w", name, err)
	}

	slog.Debug("external command succeeded",
		"argv", strings.Join(argv, " "),
		"exit_code", res.ExitCode,
		"stdout", strings.TrimSpace(res.Stdout),
		"stderr", strings.TrimSpace(res.Stderr),
	)
	return res, nil
}

// Chroot runs command via /bin/sh -c inside a chroot at rootfs, the
// build-time RUN contract of §4.7: always executed at the chroot root,
// never the in-progress WORKDIR.
func Chroot(ctx context.Context, rootfs, command string) (Result, error) {
	return Run(ctx, "chroot", rootfs, "/bin/sh", "-c", command)
}
