// Package toolchain resolves the C compiler a cross build must use.
//
// For most targets the default system compiler works and resolution returns
// nothing. Apple mobile targets get a synthesized xcrun wrapper script,
// Android targets get the NDK-provided clang, and a linux arm64 cross build
// from an x86_64 host gets the distro cross gcc from PATH.
package toolchain

import (
	"path/filepath"

	"github.com/qiniu/x/log"
)

// Host identifies the build machine, as opposed to the target. Callers fill
// it at the process boundary (runtime.GOOS/GOARCH); resolution itself never
// consults the process environment.
type Host struct {
	OS   string // "darwin", "linux", ...
	Arch string // "amd64", "arm64", ...
}

// NDK holds the two alternative Android NDK root locations. Home wins when
// both are set.
type NDK struct {
	Home string // ANDROID_NDK_HOME
	Root string // ANDROID_NDK_ROOT
}

// root returns the effective NDK root, or "" when neither variable was set.
func (n NDK) root() string {
	if n.Home != "" {
		return n.Home
	}
	return n.Root
}

// Resolver locates or synthesizes the compiler for a target triple.
type Resolver struct {
	// ScratchDir receives synthesized wrapper scripts. It is shared with
	// other concurrent variant builds of the same workspace, so everything
	// written here must be collision-free per variant.
	ScratchDir string

	Host Host
	NDK  NDK
}

// CC returns the compiler executable for triple, or "" when the default
// system compiler suffices (native builds, macOS arch crossing, unknown
// targets). The only error case is a wrapper script that cannot be written
// or made executable, which is fatal to the build.
func (r *Resolver) CC(triple string) (string, error) {
	switch triple {
	case "aarch64-apple-ios":
		return r.writeXcrunWrapper("iphoneos", "arm64-apple-ios13.0")
	case "aarch64-apple-ios-sim":
		return r.writeXcrunWrapper("iphonesimulator", "arm64-apple-ios13.0-simulator")
	case "x86_64-apple-ios":
		return r.writeXcrunWrapper("iphonesimulator", "x86_64-apple-ios13.0-simulator")
	case "aarch64-unknown-linux-gnu":
		// Cross gcc from PATH when the host itself is not arm64.
		if r.Host.Arch == "amd64" {
			return "aarch64-linux-gnu-gcc", nil
		}
		return "", nil
	}
	if android, ok := androidClang[triple]; ok {
		return r.androidCC(android), nil
	}
	return "", nil
}

// androidClang maps supported Android triples to the NDK clang file name.
// API level 21 (Android 5.0) is the minimum supported version.
var androidClang = map[string]string{
	"aarch64-linux-android": "aarch64-linux-android21-clang",
	"x86_64-linux-android":  "x86_64-linux-android21-clang",
}

// androidCC composes the NDK clang path for the given compiler file name.
// A missing NDK degrades to "" (no override) with a warning rather than
// failing the build: the default compiler may still handle the target, and
// if not, the downstream compile reports the real error.
func (r *Resolver) androidCC(clang string) string {
	root := r.NDK.root()
	if root == "" {
		log.Warn("ANDROID_NDK_HOME/ANDROID_NDK_ROOT not set; cross-compilation may fail")
		return ""
	}

	// NDK prebuilt toolchains are tagged by the build machine's platform,
	// not the target's.
	hostTag := "linux-x86_64"
	if r.Host.OS == "darwin" {
		hostTag = "darwin-x86_64"
	}

	cc := filepath.Join(root, "toolchains", "llvm", "prebuilt", hostTag, "bin", clang)
	if !canExec(cc) {
		log.Warnf("Android NDK clang not found at %s; cross-compilation may fail", cc)
		return ""
	}
	return cc
}
