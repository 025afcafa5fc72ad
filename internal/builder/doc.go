// Package builder executes a parsed ForgeFile (§4.7): it walks
// instructions in order, chains cache keys, reuses or produces layers,
// and persists the resulting manifest and config.
package builder
