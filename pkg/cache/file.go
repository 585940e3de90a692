package cache

import (
	"context"
	"os"
	"path/filepath"

	"github.com/dpizetta/mrdiagram/pkg/errors"
)

const dirPerm = 0o755

// FileCache keeps entries as plain files under a base directory.
// Keys are hex digests; the first two characters become a subdirectory
// so a large catalog does not pile every entry into one directory.
type FileCache struct {
	baseDir string
}

// NewFileCache creates the base directory if needed and returns a
// cache rooted there.
func NewFileCache(baseDir string) (*FileCache, error) {
	if baseDir == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "cache directory must not be empty")
	}
	if err := os.MkdirAll(baseDir, dirPerm); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "creating cache directory %q", baseDir)
	}
	return &FileCache{baseDir: baseDir}, nil
}

// Dir returns the cache base directory.
func (c *FileCache) Dir() string { return c.baseDir }

func (c *FileCache) path(key string) string {
	if len(key) < 2 {
		return filepath.Join(c.baseDir, key)
	}
	return filepath.Join(c.baseDir, key[:2], key)
}

// Get implements Cache.
func (c *FileCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}
	data, err := os.ReadFile(c.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "reading cache entry %q", key)
	}
	return data, true, nil
}

// Set implements Cache.
func (c *FileCache) Set(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	path := c.path(key)
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "creating cache subdirectory for %q", key)
	}
	// Write then rename so a concurrent reader never sees a torn entry.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "writing cache entry %q", key)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return errors.Wrap(errors.ErrCodeInternal, err, "storing cache entry %q", key)
	}
	return nil
}

// Delete implements Cache.
func (c *FileCache) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := os.Remove(c.path(key)); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeInternal, err, "deleting cache entry %q", key)
	}
	return nil
}

// Clear removes every entry and the base directory itself.
func (c *FileCache) Clear() error {
	if err := os.RemoveAll(c.baseDir); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "clearing cache directory %q", c.baseDir)
	}
	return nil
}

// Close implements Cache. A file cache holds no open handles.
func (c *FileCache) Close() error { return nil }
