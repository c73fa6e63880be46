package input

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// load returns the cached text at path, if present and readable.
func (c *Cache) load(path string) (string, bool) {
	b, err := afero.ReadFile(c.fs, path)
	if err != nil {
		return "", false
	}

	return string(b), true
}

// store writes body to path atomically: into a temp file in the same
// directory first, then renamed over path. On failure the temp file is
// removed and nothing is visible at path.
func (c *Cache) store(path string, body []byte) (err error) {
	dir := filepath.Dir(path)
	if err := c.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrStorageUnavailable, dir, err)
	}

	tmp, err := afero.TempFile(c.fs, dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: temp file in %s: %w", ErrStorageUnavailable, dir, err)
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = c.fs.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(body); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: write %s: %w", ErrStorageUnavailable, tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("%w: sync %s: %w", ErrStorageUnavailable, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %w", ErrStorageUnavailable, tmpName, err)
	}
	if err := c.fs.Rename(tmpName, path); err != nil {
		return fmt.Errorf("%w: rename into %s: %w", ErrStorageUnavailable, path, err)
	}

	return nil
}
