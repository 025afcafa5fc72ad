package main

import (
	"context"
	"log/slog"
	"strings"

	"github.com/xxdavis97/forge-container/internal/builder"
	"github.com/xxdavis97/forge-container/internal/forgefile"
)

// parseBuildArgs implements §6's "build [-f|--file PATH] [-t|--tag
// NAME[:TAG]]" with "unknown flags are skipped" — the stdlib flag
// package errors on unrecognized flags rather than skipping them, so
// this walks args by hand, mirroring the original build_image's
// manual while-loop over argv.
func parseBuildArgs(args []string) (file, name, tag string) {
	file = "ForgeFile"
	name = "app"
	tag = "latest"

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "-f", "--file":
			if i+1 < len(args) {
				file = args[i+1]
				i++
			}
		case "-t", "--tag":
			if i+1 < len(args) {
				name, tag = splitTag(args[i+1])
				i++
			}
		}
	}
	return file, name, tag
}

func splitTag(ref string) (name, tag string) {
	if idx := strings.LastIndex(ref, ":"); idx >= 0 {
		return ref[:idx], ref[idx+1:]
	}
	return ref, "latest"
}

func runBuild(ctx context.Context, args []string) error {
	file, name, tag := parseBuildArgs(args)

	bf, err := forgefile.ParseFile(file)
	if err != nil {
		return exitErrorf(1, "parse %s: %v", file, err)
	}

	s, err := openStore()
	if err != nil {
		return err
	}

	slog.Info("building image", "name", name, "tag", tag)
	if err := builder.Build(ctx, s, bf, name, tag); err != nil {
		return exitErrorf(1, "build failed: %v", err)
	}
	return nil
}
