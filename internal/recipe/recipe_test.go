package recipe

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/gnarkffi/gnb/internal/target"
	"github.com/gnarkffi/gnb/internal/toolchain"
)

func testResolver(t *testing.T) *toolchain.Resolver {
	t.Helper()
	return &toolchain.Resolver{
		ScratchDir: t.TempDir(),
		Host:       toolchain.Host{OS: "linux", Arch: "amd64"},
	}
}

// TestAssembleOverridePrecedence: any well-formed override becomes the
// environment verbatim, regardless of the target triple.
func TestAssembleOverridePrecedence(t *testing.T) {
	override := ParseOverride("GOOS=ios;GOARCH=arm64;CC=/x")
	for _, triple := range []string{
		"aarch64-linux-android",
		"x86_64-unknown-linux-gnu",
		"not-a-triple",
		"",
	} {
		r, err := Assemble(triple, override, testResolver(t))
		if err != nil {
			t.Fatal(err)
		}
		want := []EnvVar{{"GOOS", "ios"}, {"GOARCH", "arm64"}, {"CC", "/x"}}
		if !reflect.DeepEqual(r.Env, want) {
			t.Errorf("triple %q: env = %v, want override verbatim %v", triple, r.Env, want)
		}
	}
}

// Build mode and artifact name follow the triple even under an override:
// android cannot produce a c-archive.
func TestAssembleModeIndependentOfOverride(t *testing.T) {
	override := ParseOverride("GOOS=ios;GOARCH=arm64")
	r, err := Assemble("aarch64-linux-android", override, testResolver(t))
	if err != nil {
		t.Fatal(err)
	}
	if r.Mode != target.Shared || r.Artifact != "libgnark.so" {
		t.Errorf("android recipe = {%s %s}, want {c-shared libgnark.so}", r.Mode, r.Artifact)
	}
}

func TestAssembleUnknownTarget(t *testing.T) {
	r, err := Assemble("x86_64-unknown-linux-musl", nil, testResolver(t))
	if err != nil {
		t.Fatal(err)
	}
	if len(r.Env) != 0 {
		t.Errorf("unknown target env = %v, want empty (host-native passthrough)", r.Env)
	}
	if r.Mode != target.Archive || r.Artifact != "libgnark.a" {
		t.Errorf("recipe = {%s %s}, want {c-archive libgnark.a}", r.Mode, r.Artifact)
	}
}

func TestAssembleKnownTargetNoCC(t *testing.T) {
	// darwin-to-darwin crossing needs no compiler override: exactly the
	// two mandatory variables.
	r, err := Assemble("aarch64-apple-darwin", nil, testResolver(t))
	if err != nil {
		t.Fatal(err)
	}
	want := []EnvVar{{"GOOS", "darwin"}, {"GOARCH", "arm64"}}
	if !reflect.DeepEqual(r.Env, want) {
		t.Errorf("env = %v, want %v", r.Env, want)
	}
}

func TestAssembleWithResolvedCC(t *testing.T) {
	tc := testResolver(t)
	r, err := Assemble("aarch64-unknown-linux-gnu", nil, tc)
	if err != nil {
		t.Fatal(err)
	}
	want := []EnvVar{
		{"GOOS", "linux"},
		{"GOARCH", "arm64"},
		{"CC", "aarch64-linux-gnu-gcc"},
	}
	if !reflect.DeepEqual(r.Env, want) {
		t.Errorf("env = %v, want %v", r.Env, want)
	}
}

// TestAssembleAndroidEndToEnd is scenario: aarch64-linux-android with a
// populated NDK resolves OS, arch and the NDK clang path.
func TestAssembleAndroidEndToEnd(t *testing.T) {
	tc := testResolver(t)
	ndk := t.TempDir()
	bin := filepath.Join(ndk, "toolchains", "llvm", "prebuilt", "linux-x86_64", "bin")
	if err := os.MkdirAll(bin, 0o755); err != nil {
		t.Fatal(err)
	}
	clang := filepath.Join(bin, "aarch64-linux-android21-clang")
	if err := os.WriteFile(clang, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatal(err)
	}
	tc.NDK.Home = ndk

	r, err := Assemble("aarch64-linux-android", nil, tc)
	if err != nil {
		t.Fatal(err)
	}
	want := []EnvVar{{"GOOS", "android"}, {"GOARCH", "arm64"}, {"CC", clang}}
	if !reflect.DeepEqual(r.Env, want) {
		t.Errorf("env = %v, want %v", r.Env, want)
	}
	if r.Mode != target.Shared {
		t.Errorf("mode = %s, want c-shared", r.Mode)
	}
	if filepath.Ext(r.Artifact) != ".so" {
		t.Errorf("artifact = %s, want .so suffix", r.Artifact)
	}
}

// Determinism: with no override, assembly is a pure function of the triple.
func TestAssembleDeterministic(t *testing.T) {
	tc := testResolver(t)
	first, err := Assemble("aarch64-apple-darwin", nil, tc)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		again, err := Assemble("aarch64-apple-darwin", nil, tc)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("assembly unstable: %v then %v", first, again)
		}
	}
}
