package local

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

const defaultExtension = ".jpg"

// Store owns the local upload directory. Files are written under generated
// uuid names and referenced by their public URL path; rows own the files
// they reference.
type Store struct {
	dir          string
	publicPrefix string
}

// New ensures the upload directory exists and returns a store mapping it to
// the given public URL prefix.
func New(dir, publicPrefix string) (*Store, error) {
	if dir == "" {
		return nil, fmt.Errorf("upload directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}

	publicPrefix = strings.TrimRight(publicPrefix, "/")
	if publicPrefix == "" {
		publicPrefix = "/uploads"
	}
	if !strings.HasPrefix(publicPrefix, "/") {
		publicPrefix = "/" + publicPrefix
	}

	return &Store{dir: dir, publicPrefix: publicPrefix}, nil
}

// Save writes the uploaded content under a newly generated name preserving
// the original extension (falling back to .jpg) and returns the public path
// to record on the owning row.
func (s *Store) Save(r io.Reader, originalName string) (string, error) {
	ext := strings.ToLower(filepath.Ext(originalName))
	if ext == "" {
		ext = defaultExtension
	}
	name := uuid.NewString() + ext

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("creating upload file: %w", err)
	}

	if _, err := io.Copy(dst, r); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("writing upload file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("closing upload file: %w", err)
	}

	return s.publicPrefix + "/" + name, nil
}

// Remove deletes the file referenced by a public path. A missing file is
// treated as already absent; external URLs resolve to names that never
// exist in the directory and are skipped the same way.
func (s *Store) Remove(publicPath string) error {
	if publicPath == "" {
		return nil
	}
	name := path.Base(publicPath)
	if name == "." || name == "/" {
		return nil
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing upload file: %w", err)
	}
	return nil
}

// Dir returns the directory served as static content.
func (s *Store) Dir() string {
	return s.dir
}

// PublicPrefix returns the URL prefix the directory is mounted under.
func (s *Store) PublicPrefix() string {
	return s.publicPrefix
}
