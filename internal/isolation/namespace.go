package isolation

import (
	"fmt"
	"log/slog"

	"golang.org/x/sys/unix"
)

// UnshareHostNamespaces creates new PID, mount, and UTS namespaces for
// the calling process, before it forks the container's init. Network
// is deliberately left for UnshareNetworkNamespace, run inside the
// child, so the host can finish wiring the container's veth end via
// /proc/<pid>/ns/net before the child brings its own netns up.
func UnshareHostNamespaces() error {
	slog.Debug("creating namespaces (PID, mount, UTS)")
	if err := unix.Unshare(unix.CLONE_NEWPID | unix.CLONE_NEWNS | unix.CLONE_NEWUTS); err != nil {
		return fmt.Errorf("unshare host namespaces: %w", err)
	}
	slog.Debug("namespaces created")
	return nil
}

// UnshareNetworkNamespace creates a new network namespace for the
// calling process.
func UnshareNetworkNamespace() error {
	slog.Debug("creating network namespace")
	if err := unix.Unshare(unix.CLONE_NEWNET); err != nil {
		return fmt.Errorf("unshare network namespace: %w", err)
	}
	slog.Debug("network namespace created")
	return nil
}
