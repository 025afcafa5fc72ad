package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/xxdavis97/forge-container/internal/config"
	"github.com/xxdavis97/forge-container/internal/runner"
)

// runRun implements §6's "run IMAGE[:TAG]" — a missing image argument
// is a usage error, not a silent default, unlike build's tag.
func runRun(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return exitErrorf(1, "usage: forge run IMAGE[:TAG]")
	}
	ref := args[0]

	cfg, err := config.Load(os.Getenv("HOME"))
	if err != nil {
		return exitErrorf(1, "load config: %v", err)
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	slog.Info("running image", "ref", ref)
	code, err := runner.Run(ctx, s, ref, cfg.DefaultInterface)
	if err != nil {
		return exitErrorf(1, "run failed: %v", err)
	}
	if code != 0 {
		return &ExitError{Code: code, Err: nil}
	}
	return nil
}
