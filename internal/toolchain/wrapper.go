package toolchain

import (
	"fmt"
	"os"
	"path/filepath"
)

// writeXcrunWrapper writes an executable shim into the scratch directory
// that resolves the SDK sysroot via xcrun at invocation time and delegates
// to clang with a fixed target triple, forwarding all arguments.
//
// The file name embeds the SDK so multiple variants built in the same
// scratch directory (device and simulator, say) never clobber each other.
func (r *Resolver) writeXcrunWrapper(sdk, clangTarget string) (string, error) {
	name := "cc_wrapper_" + sdk + ".sh"
	path := filepath.Join(r.ScratchDir, name)
	script := fmt.Sprintf("#!/bin/sh\nexec xcrun -sdk %s clang -target %s \"$@\"\n", sdk, clangTarget)

	if err := os.WriteFile(path, []byte(script), 0o755); err != nil {
		return "", fmt.Errorf("write cc wrapper %s: %w", name, err)
	}
	// WriteFile's permission argument only applies on create and is
	// filtered by the umask; chmod explicitly so a reused scratch file
	// still ends up executable.
	if err := markExecutable(path); err != nil {
		return "", fmt.Errorf("chmod cc wrapper %s: %w", name, err)
	}
	return path, nil
}
