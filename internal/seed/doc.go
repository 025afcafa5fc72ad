// Package seed provides pluggable strategies for populating the
// interactive mode's rootfs skeleton with a usable set of binaries,
// since spec.md treats rootfs seeding as a non-goal best left
// swappable rather than fixed to one implementation.
package seed
