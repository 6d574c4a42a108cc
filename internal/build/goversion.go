package build

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/qiniu/x/log"
	"golang.org/x/mod/semver"
)

// minGoVersion is the oldest toolchain that can build the library in
// c-archive/c-shared mode with the flags we pass.
const minGoVersion = "v1.24"

// checkGoVersion verifies a usable Go toolchain is on PATH. A toolchain
// older than go1.24 is fatal; output we cannot parse (devel toolchains)
// only warns, letting the compile attempt decide.
func checkGoVersion(ctx context.Context) error {
	out, err := exec.CommandContext(ctx, "go", "version").Output()
	if err != nil {
		return fmt.Errorf("go toolchain not found (development builds require Go %s+): %w",
			strings.TrimPrefix(minGoVersion, "v"), err)
	}
	ver := parseGoVersion(string(out))
	if ver == "" {
		log.Warnf("cannot parse %q; assuming the toolchain is recent enough", strings.TrimSpace(string(out)))
		return nil
	}
	if semver.Compare(ver, minGoVersion) < 0 {
		return fmt.Errorf("go %s is too old: development builds require Go %s+",
			strings.TrimPrefix(ver, "v"), strings.TrimPrefix(minGoVersion, "v"))
	}
	return nil
}

// parseGoVersion extracts a semver version from "go version go1.24.3
// linux/amd64" style output, or "" when it cannot.
func parseGoVersion(s string) string {
	fields := strings.Fields(s)
	if len(fields) < 3 || !strings.HasPrefix(fields[2], "go") {
		return ""
	}
	v := "v" + strings.TrimPrefix(fields[2], "go")
	if !semver.IsValid(v) {
		return ""
	}
	return v
}
