// Package store implements the content-addressed image store (§4.5):
// layer tarballs keyed by their SHA-256 digest, JSON manifests and
// configs per name:tag, and a chained-cache-key index that the builder
// consults to skip re-running instructions whose output hasn't
// changed.
package store
