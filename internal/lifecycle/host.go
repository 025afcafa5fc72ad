package lifecycle

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"syscall"

	"github.com/xxdavis97/forge-container/internal/cgroup"
	"github.com/xxdavis97/forge-container/internal/netplumb"
)

// Run drives the host side of §4.4's sequence for a given rootfs and
// config: cgroup setup, ip_forward, interface detection, reexec into
// new PID/mount/UTS namespaces, veth wiring, and wait. It returns the
// same exit code the container process exited with, or 1 on any
// setup-fatal failure.
func Run(ctx context.Context, rootfsPath, cgroupName string, cfg Config, defaultIfaceFallback string) (int, error) {
	identity := ContainerIdentity{Name: cgroupName, RootfsPath: rootfsPath, CgroupName: cgroupName}

	cgroup.Setup(identity.CgroupName, cgroup.DefaultLimits)
	defer cgroup.Cleanup(identity.CgroupName)

	if err := netplumb.EnableIPForward(); err != nil {
		slog.Warn("failed to enable ip_forward", "error", err)
	}
	defaultIface := netplumb.DefaultInterface(ctx, defaultIfaceFallback)

	handoffPath, err := writeHandoff(identity, cfg)
	if err != nil {
		return 1, fmt.Errorf("write handoff file: %w", err)
	}
	defer os.Remove(handoffPath)

	cmd := exec.Command(Self(), initArg, handoffPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Cloneflags: syscall.CLONE_NEWPID | syscall.CLONE_NEWNS | syscall.CLONE_NEWUTS,
	}

	slog.Debug("forking to become PID 1", "rootfs", rootfsPath)
	if err := cmd.Start(); err != nil {
		return 1, fmt.Errorf("fork container init: %w", err)
	}

	identity.NetnsPID = cmd.Process.Pid
	slog.Debug("spawned container init", "pid", identity.NetnsPID)

	if err := netplumb.SetupVethPair(ctx, identity.NetnsPID, defaultIface); err != nil {
		slog.Error("veth setup failed", "error", err)
	}

	waitErr := cmd.Wait()
	_ = os.RemoveAll(rootfsPath)

	if waitErr != nil {
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return 1, fmt.Errorf("wait for container init: %w", waitErr)
	}

	slog.Info("container exited")
	return 0, nil
}

func writeHandoff(identity ContainerIdentity, cfg Config) (string, error) {
	f, err := os.CreateTemp("", "forge-handoff-*.json")
	if err != nil {
		return "", err
	}
	defer f.Close()

	data, err := json.Marshal(handoff{
		RootfsPath: identity.RootfsPath,
		CgroupName: identity.CgroupName,
		Config:     cfg,
	})
	if err != nil {
		return "", err
	}

	if _, err := f.Write(data); err != nil {
		return "", err
	}
	return f.Name(), nil
}
