package seed

import "context"

// Seeder populates root (an already-created rootfs directory) with
// whatever binaries and libraries the interactive shell needs to be
// usable. Implementations decide their own tradeoff between fidelity
// to a full shell environment and the fragility of shelling out to
// introspect the host (ldd, cp -r).
type Seeder interface {
	Seed(ctx context.Context, root string) error
}
