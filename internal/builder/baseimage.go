package builder

import (
	"context"
	"fmt"
	"runtime"

	"github.com/xxdavis97/forge-container/internal/store"
	"github.com/xxdavis97/forge-container/internal/toolexec"
)

const (
	alpineVersion    = "3.19.1"
	alpineReleaseDir = "v3.19"
)

// alpineArch maps Go's GOARCH to the architecture name Alpine's
// release URLs use.
func alpineArch(goarch string) (string, error) {
	switch goarch {
	case "amd64":
		return "x86_64", nil
	case "arm64":
		return "aarch64", nil
	default:
		return "", fmt.Errorf("unsupported architecture: %s", goarch)
	}
}

func alpineDownloadURL(arch string) string {
	return fmt.Sprintf(
		"https://dl-cdn.alpinelinux.org/alpine/%s/releases/%s/alpine-minirootfs-%s-%s.tar.gz",
		alpineReleaseDir, arch, alpineVersion, arch,
	)
}

// pullBaseImage implements the FROM instruction's effect. Only
// "alpine*" images are supported; anything else is a build-fatal
// error per §4.7.
func pullBaseImage(ctx context.Context, s *store.ImageStore, image, rootfs string) error {
	if len(image) < 6 || image[:6] != "alpine" {
		return fmt.Errorf("unsupported base image: %s (only 'alpine:*' is supported)", image)
	}

	arch, err := alpineArch(runtime.GOARCH)
	if err != nil {
		return err
	}

	tarballPath := s.AlpineTarballPath(arch)
	if !fileExists(tarballPath) {
		url := alpineDownloadURL(arch)
		if _, err := toolexec.Run(ctx, "curl", "-L", "-o", tarballPath, url); err != nil {
			return fmt.Errorf("download alpine base image: %w", err)
		}
	}

	if _, err := toolexec.Run(ctx, "tar", "-xzf", tarballPath, "-C", rootfs); err != nil {
		return fmt.Errorf("extract alpine base image: %w", err)
	}
	return nil
}
