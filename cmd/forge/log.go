package main

import (
	"log/slog"
	"os"
)

// setupLogging installs the process-wide slog default, level selected
// by FORGE_LOG_LEVEL (debug|info|warn|error, default info). AddSource
// is only worth the overhead at debug level.
func setupLogging() {
	level := slog.LevelInfo
	addSource := false

	switch os.Getenv("FORGE_LOG_LEVEL") {
	case "debug":
		level = slog.LevelDebug
		addSource = true
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
	})))
}
