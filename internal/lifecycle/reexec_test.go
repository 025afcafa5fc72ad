package lifecycle

import (
	"os"
	"testing"
)

func TestIsInitRequiresMarkerArg(t *testing.T) {
	old := os.Args
	defer func() { os.Args = old }()

	os.Args = []string{"forge"}
	if IsInit() {
		t.Fatal("expected false with no argv[1]")
	}

	os.Args = []string{"forge", "build"}
	if IsInit() {
		t.Fatal("expected false for a normal subcommand")
	}

	os.Args = []string{"forge", initArg, "/tmp/handoff.json"}
	if !IsInit() {
		t.Fatal("expected true when argv[1] is the init marker")
	}
}
