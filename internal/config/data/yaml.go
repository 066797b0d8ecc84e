package data

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned when a configuration file does not exist.
var ErrNotFound = errors.New("file not found")

// EnsureFullPath creates the parent directories of path.
func EnsureFullPath(path string, perm os.FileMode) error {
	if err := os.MkdirAll(filepath.Dir(path), perm); err != nil {
		return fmt.Errorf("failed to create parent of %q: %w", path, err)
	}
	return nil
}

// SaveYAML encodes v into path. The document is written to a sibling temp
// file first and renamed so readers never observe a partial file.
func SaveYAML(path string, v any) error {
	if err := EnsureFullPath(path, 0o700); err != nil {
		return err
	}
	bb, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("yaml encode %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(bb); err != nil {
		tmp.Close()
		return fmt.Errorf("write %q: %w", path, err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}

// LoadYAML decodes path into v. A missing file yields ErrNotFound.
func LoadYAML(path string, v any) error {
	bb, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%q: %w", path, ErrNotFound)
	case err != nil:
		return err
	}
	if err := yaml.Unmarshal(bb, v); err != nil {
		return fmt.Errorf("yaml decode %q: %w", path, err)
	}

	return nil
}
