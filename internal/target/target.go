// Package target classifies opaque target triples into the platform
// facts the rest of the build engine keys off: OS family, architecture,
// library build mode and artifact name.
package target

import "strings"

// Family is the target operating system family. Its value doubles as the
// GOOS marker injected into the build environment for recognized targets.
type Family string

const (
	Linux   Family = "linux"
	Darwin  Family = "darwin"
	IOS     Family = "ios"
	Android Family = "android"

	// Unknown means the triple matched no rule: build host-native with no
	// environment overrides rather than failing.
	Unknown Family = ""
)

// Arch is the target architecture marker (GOARCH).
type Arch string

const (
	ARM64 Arch = "arm64"
	AMD64 Arch = "amd64"
)

// BuildMode selects how the library is produced by the Go toolchain.
type BuildMode string

const (
	// Archive produces a static archive (.a).
	Archive BuildMode = "c-archive"
	// Shared produces a shared object (.so). Android only: Go does not
	// support c-archive on GOOS=android.
	Shared BuildMode = "c-shared"
)

// Artifact naming is fixed; only the extension varies with the build mode.
const (
	LibBase    = "libgnark"
	HeaderName = "libgnark.h"
)

// Classification is the derived platform value for one build. It is
// computed once per build and never mutated.
type Classification struct {
	Family Family
	Arch   Arch
	Mode   BuildMode
}

// Known reports whether the triple matched a classification rule.
// An unknown classification means host-native passthrough.
func (c Classification) Known() bool { return c.Family != Unknown }

// Artifact returns the library file name for this classification.
func (c Classification) Artifact() string {
	if c.Mode == Shared {
		return LibBase + ".so"
	}
	return LibBase + ".a"
}

// rule pairs a triple substring marker with the classification it implies.
type rule struct {
	marker string
	family Family
	mode   BuildMode
}

// rules is evaluated top to bottom; the first marker contained in the
// triple wins. The order is load-bearing: keep ios before darwin and
// android before gnu.
var rules = []rule{
	{"apple-ios", IOS, Archive},
	{"apple-darwin", Darwin, Archive},
	{"linux-android", Android, Shared},
	{"linux-gnu", Linux, Archive},
}

// Classify maps a target triple to its platform classification. Triples
// matching no rule classify as Unknown, which downstream code treats as a
// host-native build. Architecture derives from the triple prefix:
// "aarch64" means arm64, anything else defaults to amd64.
func Classify(triple string) Classification {
	arch := AMD64
	if strings.HasPrefix(triple, "aarch64") {
		arch = ARM64
	}
	for _, r := range rules {
		if strings.Contains(triple, r.marker) {
			return Classification{Family: r.family, Arch: arch, Mode: r.mode}
		}
	}
	return Classification{Family: Unknown, Arch: arch, Mode: Archive}
}
