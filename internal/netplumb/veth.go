package netplumb

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xxdavis97/forge-container/internal/toolexec"
)

const (
	hostAddr      = "10.0.0.1/24"
	containerAddr = "10.0.0.2/24"
	subnet        = "10.0.0.0/24"
	netnsDir      = "/var/run/netns"
)

// SetupVethPair wires containerPID's network namespace to the host:
// creates a veth pair, migrates the container end into the
// container's netns, assigns static addresses to both ends, and
// enables NAT through defaultIface.
func SetupVethPair(ctx context.Context, containerPID int, defaultIface string) error {
	slog.Info("setting up network", "pid", containerPID, "default_iface", defaultIface)

	vethHost := fmt.Sprintf("veth-%d", containerPID)
	vethContainer := fmt.Sprintf("veth-c-%d", containerPID)

	if err := createVethPair(ctx, vethHost, vethContainer); err != nil {
		return err
	}
	if err := moveToNetns(ctx, vethContainer, containerPID); err != nil {
		return err
	}
	if err := configureHostVeth(ctx, vethHost); err != nil {
		return err
	}
	if err := configureContainerVeth(ctx, vethContainer, containerPID); err != nil {
		return err
	}
	if err := enableNAT(ctx, vethHost, defaultIface); err != nil {
		return err
	}

	slog.Info("network setup complete")
	return nil
}

func createVethPair(ctx context.Context, vethHost, vethContainer string) error {
	_, err := toolexec.Run(ctx, "ip", "link", "add", vethHost, "type", "veth", "peer", "name", vethContainer)
	return err
}

func netnsName(containerPID int) string {
	return fmt.Sprintf("cnt-%d", containerPID)
}

// withNetnsSymlink creates the /var/run/netns/<name> symlink the ip
// command's "netns exec"/"link set ... netns" forms require, runs fn,
// then removes the symlink — the container's actual netns membership
// persists via /proc/<pid>/ns/net regardless of the symlink's lifetime.
func withNetnsSymlink(containerPID int, fn func(name string) error) error {
	netnsPath := fmt.Sprintf("/proc/%d/ns/net", containerPID)
	if _, err := os.Stat(netnsPath); err != nil {
		return fmt.Errorf("netns path %s does not exist: %w", netnsPath, err)
	}

	if err := os.MkdirAll(netnsDir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", netnsDir, err)
	}

	name := netnsName(containerPID)
	link := filepath.Join(netnsDir, name)
	_ = os.Remove(link)

	if err := os.Symlink(netnsPath, link); err != nil {
		return fmt.Errorf("symlink %s -> %s: %w", link, netnsPath, err)
	}
	defer os.Remove(link)

	return fn(name)
}

func moveToNetns(ctx context.Context, vethContainer string, containerPID int) error {
	return withNetnsSymlink(containerPID, func(name string) error {
		slog.Debug("moving veth into container netns", "veth", vethContainer, "netns", name)
		_, err := toolexec.Run(ctx, "ip", "link", "set", vethContainer, "netns", name)
		return err
	})
}

func configureHostVeth(ctx context.Context, vethHost string) error {
	if _, err := toolexec.Run(ctx, "ip", "addr", "add", hostAddr, "dev", vethHost); err != nil {
		return err
	}
	_, err := toolexec.Run(ctx, "ip", "link", "set", vethHost, "up")
	return err
}

func configureContainerVeth(ctx context.Context, vethContainer string, containerPID int) error {
	return withNetnsSymlink(containerPID, func(name string) error {
		steps := [][]string{
			{"netns", "exec", name, "ip", "addr", "add", containerAddr, "dev", vethContainer},
			{"netns", "exec", name, "ip", "link", "set", vethContainer, "up"},
			{"netns", "exec", name, "ip", "link", "set", "lo", "up"},
			{"netns", "exec", name, "ip", "route", "add", "default", "via", "10.0.0.1"},
		}
		for _, args := range steps {
			if _, err := toolexec.Run(ctx, "ip", args...); err != nil {
				return err
			}
		}
		return nil
	})
}

func enableNAT(ctx context.Context, vethHost, defaultIface string) error {
	slog.Info("enabling NAT", "via", defaultIface)

	rules := [][]string{
		{"-t", "nat", "-A", "POSTROUTING", "-s", subnet, "-o", defaultIface, "-j", "MASQUERADE"},
		{"-A", "FORWARD", "-i", vethHost, "-o", defaultIface, "-j", "ACCEPT"},
		{"-A", "FORWARD", "-i", defaultIface, "-o", vethHost, "-j", "ACCEPT"},
	}
	for _, args := range rules {
		if _, err := toolexec.Run(ctx, "iptables", args...); err != nil {
			return fmt.Errorf("iptables %v: %w", args, err)
		}
	}
	return nil
}
