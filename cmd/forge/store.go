package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xxdavis97/forge-container/internal/store"
)

// openStore opens the image store at $HOME/.container-runtime/images,
// per §6's persisted layout. A missing HOME is setup-fatal.
func openStore() (*store.ImageStore, error) {
	home := os.Getenv("HOME")
	if home == "" {
		return nil, exitErrorf(1, "HOME is not set")
	}

	root := filepath.Join(home, ".container-runtime", "images")
	s, err := store.Open(root)
	if err != nil {
		return nil, fmt.Errorf("open image store at %s: %w", root, err)
	}
	return s, nil
}
