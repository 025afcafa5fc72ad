// Package isolation implements the container-side filesystem and
// namespace setup from §4.1: namespace unshare, the directory
// skeleton, pivot_root with a chroot fallback, and the essential
// mounts (proc, sysfs, dev, tmp).
package isolation
