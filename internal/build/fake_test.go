package build

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// fakeGoScript stands in for the real toolchain: it answers "go version"
// (overridable via GNB_TEST_GOVERSION), fails when GNB_TEST_FAIL is set,
// and otherwise records its cross-compilation environment to
// GNB_TEST_ENVLOG and touches the -o output plus the header beside it.
const fakeGoScript = `#!/bin/sh
if [ "$1" = "version" ]; then
  echo "go version ${GNB_TEST_GOVERSION:-go1.24.3} linux/amd64"
  exit 0
fi
if [ -n "$GNB_TEST_FAIL" ]; then
  echo "simulated build failure" >&2
  exit 1
fi
out=""
prev=""
for a in "$@"; do
  if [ "$prev" = "-o" ]; then out="$a"; fi
  prev="$a"
done
printf 'GOOS=%s\nGOARCH=%s\nCC=%s\n' "$GOOS" "$GOARCH" "$CC" > "$GNB_TEST_ENVLOG"
: > "$out"
printf '/* generated */\n' > "$(dirname "$out")/libgnark.h"
`

// installFakeGo puts a stub "go" first on PATH and returns the path of the
// environment log it writes per invocation.
func installFakeGo(t *testing.T) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test uses sh-based tool stubs")
	}
	binDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(binDir, "go"), []byte(fakeGoScript), 0o755); err != nil {
		t.Fatal(err)
	}
	envLog := filepath.Join(t.TempDir(), "env.log")
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	t.Setenv("GNB_TEST_ENVLOG", envLog)
	// Recipe variables are appended after os.Environ() and win; blank the
	// ambient values so the log reflects only what the recipe injected.
	t.Setenv("GOOS", "")
	t.Setenv("GOARCH", "")
	t.Setenv("CC", "")
	return envLog
}

// installFakeTool installs an arbitrary stub executable on the PATH
// already prepared by installFakeGo.
func installFakeTool(t *testing.T, name, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("test uses sh-based tool stubs")
	}
	binDir := t.TempDir()
	if err := os.WriteFile(filepath.Join(binDir, name), []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
}

// fakeSourceDir lays out a minimal library source tree.
func fakeSourceDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"main.go": "package main\n\nfunc main() {}\n",
		"go.mod":  "module example.com/libgnark\n\ngo 1.24\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

// fakeNDK lays out an NDK tree holding the named clang executables under
// the given host tag.
func fakeNDK(t *testing.T, hostTag string, clangs ...string) string {
	t.Helper()
	root := t.TempDir()
	bin := filepath.Join(root, "toolchains", "llvm", "prebuilt", hostTag, "bin")
	if err := os.MkdirAll(bin, 0o755); err != nil {
		t.Fatal(err)
	}
	for _, name := range clangs {
		if err := os.WriteFile(filepath.Join(bin, name), []byte("#!/bin/sh\n"), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	return root
}
