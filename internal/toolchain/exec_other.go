//go:build !unix

package toolchain

import "os"

// canExec reports whether path exists; there is no execute bit to check on
// platforms without a unix permission model.
func canExec(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// markExecutable is a no-op without a permission-bit model.
func markExecutable(path string) error {
	return nil
}
