// Package recipe assembles the cross-compilation recipe for one build:
// the ordered environment the external compile step receives, the library
// build mode, and the artifact file name.
package recipe

import (
	"github.com/gnarkffi/gnb/internal/target"
	"github.com/gnarkffi/gnb/internal/toolchain"
)

// Recipe is the final assembled build input, consumed by the compile step.
type Recipe struct {
	// Env is the cross-compilation environment. Empty for host-native
	// builds (unknown targets with no override).
	Env []EnvVar

	Mode     target.BuildMode
	Artifact string
}

// Assemble composes classifier, compiler locator and override results into
// the recipe for triple.
//
// Precedence is strictly override > auto-detection: a non-empty override
// becomes the environment verbatim and the classifier and locator are not
// consulted for the environment at all. Build mode and artifact name always
// derive from the triple, since the Go toolchain cannot produce a c-archive
// for android regardless of what the caller overrides.
func Assemble(triple string, override []EnvVar, tc *toolchain.Resolver) (Recipe, error) {
	cls := target.Classify(triple)
	r := Recipe{Mode: cls.Mode, Artifact: cls.Artifact()}

	if len(override) > 0 {
		r.Env = override
		return r, nil
	}
	if !cls.Known() {
		// Host-native passthrough: inject nothing.
		return r, nil
	}

	r.Env = []EnvVar{
		{Key: "GOOS", Value: string(cls.Family)},
		{Key: "GOARCH", Value: string(cls.Arch)},
	}
	cc, err := tc.CC(triple)
	if err != nil {
		return Recipe{}, err
	}
	if cc != "" {
		r.Env = append(r.Env, EnvVar{Key: "CC", Value: cc})
	}
	return r, nil
}
