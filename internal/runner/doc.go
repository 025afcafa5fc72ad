// Package runner materialises a rootfs from a stored image's layers
// and hands it to the lifecycle engine (§4.8).
package runner
