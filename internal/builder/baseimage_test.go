package builder

import (
	"strings"
	"testing"
)

func TestAlpineArchMapping(t *testing.T) {
	cases := map[string]string{"amd64": "x86_64", "arm64": "aarch64"}
	for goarch, want := range cases {
		got, err := alpineArch(goarch)
		if err != nil {
			t.Fatalf("alpineArch(%s) failed: %v", goarch, err)
		}
		if got != want {
			t.Fatalf("alpineArch(%s) = %s, want %s", goarch, got, want)
		}
	}
}

func TestAlpineArchUnsupported(t *testing.T) {
	if _, err := alpineArch("riscv64"); err == nil {
		t.Fatal("expected error for unsupported architecture")
	}
}

func TestAlpineDownloadURLShape(t *testing.T) {
	url := alpineDownloadURL("x86_64")
	if !strings.Contains(url, "alpine-minirootfs-3.19.1-x86_64.tar.gz") {
		t.Fatalf("unexpected url: %s", url)
	}
	if !strings.Contains(url, "dl-cdn.alpinelinux.org/alpine/v3.19/releases/x86_64/") {
		t.Fatalf("unexpected url: %s", url)
	}
}
