package netplumb

import (
	"context"
	"log/slog"
	"strings"

	"github.com/xxdavis97/forge-container/internal/toolexec"
)

// DefaultInterface discovers the host's default outbound interface by
// parsing "ip route show default". If no default route is found,
// fallback is used instead — a missing route shouldn't be fatal, a
// configured name lets the operator recover.
func DefaultInterface(ctx context.Context, fallback string) string {
	res, err := toolexec.Run(ctx, "ip", "route", "show", "default")
	if err != nil {
		slog.Warn("failed to query default route, falling back", "fallback", fallback, "error", err)
		return fallback
	}

	iface, ok := parseDefaultInterface(res.Stdout)
	if !ok {
		slog.Warn("could not parse default route, falling back", "fallback", fallback, "route_output", res.Stdout)
		return fallback
	}

	slog.Debug("detected default interface", "iface", iface)
	return iface
}

// parseDefaultInterface finds the interface name following the "dev"
// token in "ip route show default" output, e.g.
// "default via 192.168.1.1 dev eth0 proto dhcp".
func parseDefaultInterface(routeOutput string) (string, bool) {
	fields := strings.Fields(routeOutput)
	for i, f := range fields {
		if f == "dev" && i+1 < len(fields) {
			return fields[i+1], true
		}
	}
	return "", false
}
