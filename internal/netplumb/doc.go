// Package netplumb wires a container's network namespace to the host
// (§4.3): veth pair creation, netns migration, static addressing, NAT
// via iptables, and default-interface discovery.
package netplumb
