// Command forge is a minimal Linux container runtime and image
// builder: it builds images from a ForgeFile into a content-addressed
// local store, and runs them (or an unsandboxed-image interactive
// shell) inside fresh PID/mount/UTS/net namespaces.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/xxdavis97/forge-container/internal/lifecycle"
)

func main() {
	// A reexec'd container init never returns; it either execs the
	// entrypoint/shell or os.Exit(1)s on a setup failure.
	if lifecycle.IsInit() {
		lifecycle.Init()
		return
	}

	setupLogging()

	if err := run(context.Background(), os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				fmt.Fprintln(os.Stderr, exitErr.Err)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return runInteractive(ctx)
	}

	switch args[0] {
	case "build":
		return runBuild(ctx, args[1:])
	case "run":
		return runRun(ctx, args[1:])
	default:
		return exitErrorf(1, "unknown command %q (expected build, run, or no arguments)", args[0])
	}
}
