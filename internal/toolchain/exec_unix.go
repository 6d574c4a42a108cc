//go:build unix

package toolchain

import (
	"os"

	"golang.org/x/sys/unix"
)

// canExec reports whether path exists and is executable by this process.
func canExec(path string) bool {
	return unix.Access(path, unix.X_OK) == nil
}

// markExecutable sets the executable bits on path.
func markExecutable(path string) error {
	return os.Chmod(path, 0o755)
}
