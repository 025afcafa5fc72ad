package forgefile

import (
	"fmt"
	"strings"
)

// Descriptor renders the stable textual form of an instruction that
// feeds the builder's chained cache key (§4.7). It does not include
// the COPY content-hash — callers needing cache-key derivation append
// that separately, since computing it requires filesystem access this
// package doesn't have.
func (i Instruction) Descriptor() string {
	switch i.Kind {
	case KindFrom:
		return fmt.Sprintf("FROM:%s", i.Image)
	case KindCopy:
		return fmt.Sprintf("COPY:%s:%s", i.Src, i.Dest)
	case KindRun:
		return fmt.Sprintf("RUN:%s", i.Command)
	case KindWorkdir:
		return fmt.Sprintf("WORKDIR:%s", i.Path)
	case KindEnv:
		return fmt.Sprintf("ENV:%s=%s", i.Key, i.Value)
	case KindEntrypoint:
		return fmt.Sprintf("ENTRYPOINT:%s", renderArgs(i.Args))
	default:
		return "UNKNOWN"
	}
}

// renderArgs mirrors Go's %v rendering of a []string ("[a b c]"), which
// is what the original forge-container's Rust {:?} debug-formatting
// produces for Vec<String> — the exact text doesn't matter, only that
// it's stable and distinguishes different argument lists.
func renderArgs(args []string) string {
	return "[" + strings.Join(args, " ") + "]"
}
