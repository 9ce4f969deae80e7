// Package fsio is the filesystem boundary for csvtable.
//
// Table never touches the filesystem directly; it goes through an FS, which
// wraps an afero.Fs. Production code uses the OS filesystem, tests inject
// afero.NewMemMapFs().
package fsio

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// FS reads and writes whole text files on an underlying afero filesystem.
type FS struct {
	fs afero.Fs
}

// New returns an FS on the given afero filesystem.
// A nil fs defaults to the OS filesystem.
func New(fs afero.Fs) *FS {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	return &FS{fs: fs}
}

// ReadText reads the whole file at path as a string.
func (f *FS) ReadText(path string) (string, error) {
	data, err := afero.ReadFile(f.fs, path)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return string(data), nil
}

// WriteText writes text to path, creating any missing parent directories.
func (f *FS) WriteText(path, text string) error {
	if err := f.EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}
	if err := afero.WriteFile(f.fs, path, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// EnsureDir creates dir and any missing parents.
func (f *FS) EnsureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	if err := f.fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return nil
}

// Touch creates an empty file at path, creating parent directories.
// An existing file is truncated.
func (f *FS) Touch(path string) error {
	return f.WriteText(path, "")
}
