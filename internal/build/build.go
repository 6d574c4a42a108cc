// Package build orchestrates one libgnark build: resolve the
// cross-compilation recipe for the target triple, produce the library via
// the prebuilt fast path or the Go toolchain, run the configured bindings
// generator, and report the link line for the final consumer.
package build

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/gnarkffi/gnb/internal/linkdeps"
	"github.com/gnarkffi/gnb/internal/recipe"
	"github.com/gnarkffi/gnb/internal/target"
	"github.com/gnarkffi/gnb/internal/toolchain"
)

// Options configures a Builder. All inputs are explicit; nothing is read
// from the process environment here (see buildenv for the adapter).
type Options struct {
	// Triple is the target platform identifier. Empty or unrecognized
	// triples build host-native.
	Triple string

	// SourceDir is the library's Go source tree (dev builds).
	SourceDir string
	// PrebuiltDir is the root of per-triple prebuilt artifacts. When
	// PrebuiltDir/<Triple>/ exists the toolchain is never invoked.
	PrebuiltDir string
	// OutDir receives the artifact, header, wrapper scripts and cache.
	OutDir string

	// Override is the raw environment override string; non-empty and
	// well-formed, it replaces auto-detection entirely.
	Override string
	// StrictOverride rejects malformed override entries instead of
	// silently dropping them.
	StrictOverride bool

	// Bindgen is the header-to-bindings generator command line; the
	// header path is appended as its final argument. Empty skips it.
	Bindgen string

	// Force rebuilds even when the cache says the artifact is current.
	Force bool

	Host toolchain.Host
	NDK  toolchain.NDK

	// Stdout/Stderr receive subprocess output; nil means the process
	// streams.
	Stdout io.Writer
	Stderr io.Writer
}

// Result describes a completed build.
type Result struct {
	Class    target.Classification
	Recipe   recipe.Recipe
	Artifact string // path to the built library
	Header   string // path to the generated header
	LinkArgs []string
	Prebuilt bool // artifact was copied from PrebuiltDir
	Cached   bool // artifact was current, compile skipped
}

// Builder runs builds for one fixed set of options. A single build is
// strictly sequential; concurrent variant builds must use distinct OutDirs
// or rely on per-SDK wrapper naming for the shared scratch namespace.
type Builder struct {
	opts Options
}

// New returns a Builder for opts.
func New(opts Options) *Builder {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	return &Builder{opts: opts}
}

// Build produces the library, header and link line for the configured
// target.
func (b *Builder) Build(ctx context.Context) (*Result, error) {
	cls := target.Classify(b.opts.Triple)
	res := &Result{
		Class:    cls,
		Artifact: filepath.Join(b.opts.OutDir, cls.Artifact()),
		Header:   filepath.Join(b.opts.OutDir, target.HeaderName),
	}

	if err := os.MkdirAll(b.opts.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	prebuiltDir := filepath.Join(b.opts.PrebuiltDir, b.opts.Triple)
	switch {
	case b.opts.Triple != "" && dirExists(prebuiltDir):
		if err := b.copyPrebuilt(prebuiltDir, cls); err != nil {
			return nil, err
		}
		res.Prebuilt = true
	case dirExists(b.opts.SourceDir):
		rcp, cached, err := b.compile(ctx)
		if err != nil {
			return nil, err
		}
		res.Recipe = rcp
		res.Cached = cached
	default:
		return nil, fmt.Errorf(
			"neither %s nor %s exists: bundle prebuilt libraries or provide the Go source tree",
			prebuiltDir, b.opts.SourceDir)
	}

	if err := b.generateBindings(ctx, res.Header); err != nil {
		return nil, err
	}

	res.LinkArgs = linkdeps.LinkLine(cls, b.opts.OutDir)
	return res, nil
}

// compile resolves the recipe and invokes the Go toolchain. It returns
// cached=true when the build cache proved the artifact current and no
// compile ran.
func (b *Builder) compile(ctx context.Context) (recipe.Recipe, bool, error) {
	var override []recipe.EnvVar
	var err error
	if b.opts.StrictOverride {
		override, err = recipe.ParseOverrideStrict(b.opts.Override)
		if err != nil {
			return recipe.Recipe{}, false, err
		}
	} else {
		override = recipe.ParseOverride(b.opts.Override)
	}

	tc := &toolchain.Resolver{
		ScratchDir: b.opts.OutDir,
		Host:       b.opts.Host,
		NDK:        b.opts.NDK,
	}
	rcp, err := recipe.Assemble(b.opts.Triple, override, tc)
	if err != nil {
		return recipe.Recipe{}, false, err
	}

	dest := filepath.Join(b.opts.OutDir, rcp.Artifact)
	if !b.opts.Force && b.isCurrent(dest) {
		return rcp, true, nil
	}

	if err := checkGoVersion(ctx); err != nil {
		return recipe.Recipe{}, false, err
	}

	args := []string{
		"build",
		"-buildmode=" + string(rcp.Mode),
		"-ldflags=-s -w",
		"-gcflags=all=-l -B",
		"-o", dest,
		".",
	}
	cmd := exec.CommandContext(ctx, "go", args...)
	cmd.Dir = b.opts.SourceDir
	cmd.Env = append(os.Environ(), "CGO_ENABLED=1")
	for _, e := range rcp.Env {
		cmd.Env = append(cmd.Env, e.String())
	}
	cmd.Stdout = b.opts.Stdout
	cmd.Stderr = b.opts.Stderr
	if err := cmd.Run(); err != nil {
		return recipe.Recipe{}, false, fmt.Errorf("go build -buildmode=%s failed: %w", rcp.Mode, err)
	}

	b.recordBuild(rcp.Artifact)
	return rcp, false, nil
}

// generateBindings runs the configured header-to-bindings collaborator.
// It is a black box command; a non-zero exit is fatal.
func (b *Builder) generateBindings(ctx context.Context, header string) error {
	if b.opts.Bindgen == "" {
		return nil
	}
	fields := strings.Fields(b.opts.Bindgen)
	args := append(fields[1:], header)
	cmd := exec.CommandContext(ctx, fields[0], args...)
	cmd.Dir = b.opts.OutDir
	cmd.Stdout = b.opts.Stdout
	cmd.Stderr = b.opts.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("binding generation (%s) failed: %w", fields[0], err)
	}
	return nil
}

// isCurrent reports whether dest exists, has a cache entry, and postdates
// every file in the source tree.
func (b *Builder) isCurrent(dest string) bool {
	if _, err := os.Stat(dest); err != nil {
		return false
	}
	cache, err := loadCache(b.cachePath())
	if err != nil {
		return false
	}
	entry, ok := cache.get(b.opts.Triple)
	if !ok {
		return false
	}
	newest, err := newestMtime(b.opts.SourceDir)
	if err != nil {
		return false
	}
	return entry.BuildTime.After(newest)
}

func (b *Builder) recordBuild(artifact string) {
	cache, err := loadCache(b.cachePath())
	if err != nil {
		cache = &buildCache{}
	}
	cache.set(b.opts.Triple, &buildEntry{
		Artifact:  artifact,
		BuildTime: time.Now(),
	})
	if err := saveCache(b.cachePath(), cache); err != nil {
		// The cache only skips rebuilds; losing it is not a build failure.
		fmt.Fprintf(b.opts.Stderr, "gnb: cannot save build cache: %v\n", err)
	}
}

func (b *Builder) cachePath() string {
	return filepath.Join(b.opts.OutDir, cacheFile)
}

func dirExists(dir string) bool {
	if dir == "" {
		return false
	}
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}
