package builder

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xxdavis97/forge-container/internal/forgefile"
	"github.com/xxdavis97/forge-container/internal/store"
)

const scratchBuildDir = "/tmp/container-build"

// state carries the §4.7 fields threaded through instruction
// execution.
type state struct {
	rootfs       string
	layers       []store.LayerDigest
	prevCacheKey store.CacheKey
	cacheValid   bool
	config       store.ImageConfig
}

// Build parses and executes bf against s, producing name:tag.
func Build(ctx context.Context, s *store.ImageStore, bf *forgefile.BuildFile, name, tag string) error {
	if err := os.RemoveAll(scratchBuildDir); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear scratch build dir: %w", err)
	}
	if err := os.MkdirAll(scratchBuildDir, 0o755); err != nil {
		return fmt.Errorf("create scratch build dir: %w", err)
	}
	defer os.RemoveAll(scratchBuildDir)

	rootfs := filepath.Join(scratchBuildDir, "rootfs")
	if err := os.MkdirAll(rootfs, 0o755); err != nil {
		return fmt.Errorf("create scratch rootfs: %w", err)
	}

	st := &state{
		rootfs:       rootfs,
		prevCacheKey: store.RootCacheKey,
		cacheValid:   true,
		config: store.ImageConfig{
			Entrypoint: []string{},
			Env:        []string{"PATH=/usr/local/bin:/usr/bin:/bin"},
			WorkingDir: "/",
		},
	}

	idx := s.LoadCacheIndex()

	for _, instr := range bf.Instructions {
		if err := applyInstruction(ctx, s, idx, bf.ContextDir, st, instr); err != nil {
			return fmt.Errorf("line %d: %w", instr.Line, err)
		}
	}

	if err := s.SaveCacheIndex(idx); err != nil {
		slog.Warn("failed to persist cache index", "error", err)
	}

	manifest := store.ImageManifest{Name: name, Tag: tag, Layers: st.layers}
	if err := s.SaveManifest(manifest); err != nil {
		return fmt.Errorf("save manifest: %w", err)
	}
	if err := s.SaveConfig(name, tag, st.config); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	slog.Info("build complete", "name", name, "tag", tag, "layers", len(st.layers))
	return nil
}

// applyInstruction implements the §4.7 execution policy: compute the
// chained key, try a cache hit, otherwise run the instruction's
// effect and record a fresh layer.
func applyInstruction(ctx context.Context, s *store.ImageStore, idx *store.CacheIndex, contextDir string, st *state, instr forgefile.Instruction) error {
	descriptor, err := descriptorFor(contextDir, instr)
	if err != nil {
		return err
	}
	key := store.DeriveKey(st.prevCacheKey, descriptor)

	if !instr.Kind.ProducesLayer() {
		applyConfigEffect(st, instr)
		st.prevCacheKey = key
		return nil
	}

	if st.cacheValid {
		if digest, ok := idx.GetCachedLayer(s, key); ok {
			slog.Info(fmt.Sprintf("%s (cached)", instr.Kind), "descriptor", descriptor)
			if err := extractLayer(ctx, s, digest, st.rootfs); err != nil {
				return err
			}
			st.layers = append(st.layers, digest)
			st.prevCacheKey = key
			return nil
		}
	}

	st.cacheValid = false
	slog.Info(instr.Kind.String(), "descriptor", descriptor)
	if err := applyContentEffect(ctx, s, contextDir, st.rootfs, instr); err != nil {
		return err
	}

	digest, err := createLayer(ctx, s, st.rootfs)
	if err != nil {
		return err
	}
	idx.CacheLayer(key, digest)
	st.layers = append(st.layers, digest)
	st.prevCacheKey = key
	return nil
}

// descriptorFor renders an instruction's stable descriptor text,
// appending COPY's content-hash (forgefile.Instruction.Descriptor
// alone can't compute that — it has no filesystem access).
func descriptorFor(contextDir string, instr forgefile.Instruction) (string, error) {
	if instr.Kind != forgefile.KindCopy {
		return instr.Descriptor(), nil
	}

	hash, err := hashPath(filepath.Join(contextDir, instr.Src))
	if err != nil {
		return "", fmt.Errorf("hash copy source %s: %w", instr.Src, err)
	}
	return fmt.Sprintf("COPY:%s:%s:%s", instr.Src, instr.Dest, hash), nil
}

func applyContentEffect(ctx context.Context, s *store.ImageStore, contextDir, rootfs string, instr forgefile.Instruction) error {
	switch instr.Kind {
	case forgefile.KindFrom:
		return pullBaseImage(ctx, s, instr.Image, rootfs)
	case forgefile.KindCopy:
		return copySrc(contextDir, rootfs, instr.Src, instr.Dest)
	case forgefile.KindRun:
		return runInChroot(ctx, rootfs, instr.Command)
	default:
		return fmt.Errorf("instruction %s does not produce a layer", instr.Kind)
	}
}

func applyConfigEffect(st *state, instr forgefile.Instruction) {
	switch instr.Kind {
	case forgefile.KindWorkdir:
		st.config.WorkingDir = instr.Path
	case forgefile.KindEnv:
		st.config.Env = append(st.config.Env, instr.Key+"="+instr.Value)
	case forgefile.KindEntrypoint:
		st.config.Entrypoint = instr.Args
	}
}
