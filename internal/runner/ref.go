package runner

import "strings"

const defaultTag = "latest"

// ParseRef splits an IMAGE[:TAG] reference, defaulting tag to
// "latest" when absent.
func ParseRef(ref string) (name, tag string) {
	if idx := strings.LastIndex(ref, ":"); idx >= 0 {
		return ref[:idx], ref[idx+1:]
	}
	return ref, defaultTag
}
