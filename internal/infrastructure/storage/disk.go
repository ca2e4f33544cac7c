// Package storage keeps uploaded image files on the local filesystem.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// URLPrefix is prepended to stored filenames so the database holds the path
// the HTTP layer serves the file under.
const URLPrefix = "/uploads/"

// DiskStore writes uploads into a single directory, naming each file with a
// fresh UUID so concurrent uploads of the same original name never collide.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the upload directory if needed and returns a store
// rooted at it.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir %s: %w", dir, err)
	}
	return &DiskStore{dir: dir}, nil
}

// Store copies src to disk and returns the URL path the file is reachable
// under. The original name contributes only its extension.
func (s *DiskStore) Store(src io.Reader, originalName string) (string, error) {
	name := uuid.NewString() + strings.ToLower(filepath.Ext(originalName))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		_ = dst.Close()
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("write upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		_ = os.Remove(dst.Name())
		return "", fmt.Errorf("close upload file: %w", err)
	}
	return URLPrefix + name, nil
}

// Remove deletes the file behind a path previously returned by Store. A
// missing file is not an error; the record it backed is already gone.
func (s *DiskStore) Remove(relativePath string) error {
	name := path.Base(relativePath)
	if name == "." || name == "/" {
		return fmt.Errorf("remove upload: invalid path %q", relativePath)
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove upload %s: %w", name, err)
	}
	return nil
}
