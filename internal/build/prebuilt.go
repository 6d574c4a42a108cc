package build

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gnarkffi/gnb/internal/target"
)

// copyPrebuilt is the fast path: the library and header for this exact
// triple were bundled, so copy them verbatim and never touch a toolchain.
// Either required file missing is fatal, naming the file.
func (b *Builder) copyPrebuilt(dir string, cls target.Classification) error {
	for _, name := range []string{cls.Artifact(), target.HeaderName} {
		src := filepath.Join(dir, name)
		if _, err := os.Stat(src); err != nil {
			return fmt.Errorf("prebuilt %s/%s not found: rebuild the prebuilt libraries",
				b.opts.Triple, name)
		}
		if err := copyFile(src, filepath.Join(b.opts.OutDir, name)); err != nil {
			return fmt.Errorf("copy prebuilt %s: %w", name, err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
