// Package buildenv is the process-boundary adapter for everything the
// resolution engine would otherwise read from the ambient environment.
// The engine packages (target, toolchain, recipe) take these values as
// explicit inputs and stay pure; only this package touches os.Getenv and
// runtime.
package buildenv

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/gnarkffi/gnb/internal/toolchain"
)

// OverrideVar carries an explicit cross-compilation environment override,
// e.g. "GOOS=ios;GOARCH=arm64;CC=/path/to/cc". When set and well-formed it
// fully replaces auto-detection.
const OverrideVar = "GNB_GO_ENVS"

// Override returns the raw override string, or "".
func Override() string {
	return os.Getenv(OverrideVar)
}

// NDK reads the two alternative Android NDK location variables.
func NDK() toolchain.NDK {
	return toolchain.NDK{
		Home: os.Getenv("ANDROID_NDK_HOME"),
		Root: os.Getenv("ANDROID_NDK_ROOT"),
	}
}

// Host identifies the build machine. Used for NDK host-tag selection and
// for deciding whether a linux arm64 build is a cross build.
func Host() toolchain.Host {
	return toolchain.Host{OS: runtime.GOOS, Arch: runtime.GOARCH}
}

// WorkDir returns gnb's workspace directory under the user cache dir,
// creating it if needed. Per-target build output lives beneath it.
func WorkDir() (string, error) {
	userCacheDir, err := os.UserCacheDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(userCacheDir, ".gnb")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}
	return dir, nil
}

// OutDir returns the default output directory for one target triple,
// creating it if needed. The triple keys the directory so multi-variant
// builds never share a scratch namespace beyond what wrapper naming
// already makes collision-free.
func OutDir(triple string) (string, error) {
	work, err := WorkDir()
	if err != nil {
		return "", err
	}
	name := triple
	if name == "" {
		name = "host"
	}
	dir := filepath.Join(work, "out", name)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return dir, nil
}
