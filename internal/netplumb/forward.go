package netplumb

import (
	"fmt"
	"os"
)

const ipForwardPath = "/proc/sys/net/ipv4/ip_forward"

// EnableIPForward turns on kernel IPv4 forwarding, required for the
// host to NAT container traffic out through the default interface.
func EnableIPForward() error {
	if err := os.WriteFile(ipForwardPath, []byte("1"), 0o644); err != nil {
		return fmt.Errorf("enable ip_forward: %w", err)
	}
	return nil
}
