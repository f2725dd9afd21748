package photos

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	domainErrors "github.com/polkiloo/gymkeeper/internal/domain/errors"
)

var extensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
}

// Store keeps profile photos as flat files named <uuid>.<ext> inside one directory.
type Store struct {
	dir      string
	maxBytes int64
}

// New creates the directory if needed.
func New(dir string, maxBytes int64) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create photo dir: %w", err)
	}
	return &Store{dir: dir, maxBytes: maxBytes}, nil
}

// Save validates the upload and writes it under a fresh name, which is returned.
func (s *Store) Save(ctx context.Context, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := io.ReadAll(io.LimitReader(r, s.maxBytes+1))
	if err != nil {
		return "", fmt.Errorf("read photo: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		return "", domainErrors.ErrPhotoTooLarge
	}
	if len(data) == 0 {
		return "", domainErrors.ErrInvalidPhoto
	}

	ext, ok := extensions[mimetype.Detect(data).String()]
	if !ok {
		return "", domainErrors.ErrInvalidPhoto
	}

	name := uuid.NewString() + ext
	tmp, err := os.CreateTemp(s.dir, ".upload-*")
	if err != nil {
		return "", domainErrors.NewStoreError("save photo", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, bytes.NewReader(data)); err != nil {
		tmp.Close()
		return "", domainErrors.NewStoreError("save photo", err)
	}
	if err := tmp.Close(); err != nil {
		return "", domainErrors.NewStoreError("save photo", err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(s.dir, name)); err != nil {
		return "", domainErrors.NewStoreError("save photo", err)
	}
	return name, nil
}

// Path resolves a stored photo name to its file path.
func (s *Store) Path(name string) (string, error) {
	if !validName(name) {
		return "", domainErrors.ErrNotFound
	}
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", domainErrors.ErrNotFound
		}
		return "", domainErrors.NewStoreError("stat photo", err)
	}
	return path, nil
}

// Delete removes a stored photo. Missing files are not an error.
func (s *Store) Delete(name string) error {
	if !validName(name) {
		return domainErrors.ErrInvalidPhoto
	}
	if err := os.Remove(filepath.Join(s.dir, name)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return domainErrors.NewStoreError("delete photo", err)
	}
	return nil
}

func validName(name string) bool {
	if name == "" || name != filepath.Base(name) {
		return false
	}
	ext := filepath.Ext(name)
	known := false
	for _, e := range extensions {
		if e == ext {
			known = true
			break
		}
	}
	if !known {
		return false
	}
	_, err := uuid.Parse(strings.TrimSuffix(name, ext))
	return err == nil
}
