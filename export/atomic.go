package export

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// fileMode is applied to every finished output file.
const fileMode os.FileMode = 0o644

// writeAtomic streams fill into a temporary sibling of path and renames it
// into place once fill, flush and fsync have all succeeded.
func writeAtomic(path string, fill func(w io.Writer) error) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+base+".*.tmp")
	if err != nil {
		return fmt.Errorf("%s: %w: %w", path, ErrWrite, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	bw := bufio.NewWriterSize(tmp, 1<<16)
	if err = fill(bw); err != nil {
		return fmt.Errorf("%s: %w: %w", path, ErrWrite, err)
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("%s: flush: %w: %w", path, ErrWrite, err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("%s: sync: %w: %w", path, ErrWrite, err)
	}
	if err = tmp.Chmod(fileMode); err != nil {
		return fmt.Errorf("%s: chmod: %w: %w", path, ErrWrite, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%s: close: %w: %w", path, ErrWrite, err)
	}
	if err = os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%s: rename: %w: %w", path, ErrWrite, err)
	}

	return nil
}
