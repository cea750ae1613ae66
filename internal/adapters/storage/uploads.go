package storage

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/rs/zerolog/log"
)

var (
	ErrNotFound        = errors.New("image not found")
	ErrInvalidFilename = errors.New("invalid filename")
)

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// SanitizeFilename reduces a client-supplied filename to a safe basename.
// Path separators and special characters never survive, so the result can be
// joined onto the store directory directly.
func SanitizeFilename(filename string) (string, error) {
	name := filepath.Base(filepath.Clean(filename))
	name = unsafeChars.ReplaceAllString(name, "_")
	name = strings.TrimLeft(name, ".")

	if name == "" || name == "_" {
		return "", fmt.Errorf("%w: %q", ErrInvalidFilename, filename)
	}

	return name, nil
}

// UploadStore keeps uploaded images as plain files under a single directory.
type UploadStore struct {
	dir string
}

func NewUploadStore(dir string) (*UploadStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("error creating upload directory %w", err)
	}

	log.Debug().Str("dir", dir).Msg("upload store ready")

	return &UploadStore{dir: dir}, nil
}

// Save stores image bytes under the sanitized filename and returns the name
// the image is retrievable by.
func (s *UploadStore) Save(filename string, data []byte) (string, error) {
	name, err := SanitizeFilename(filename)
	if err != nil {
		return "", err
	}

	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", fmt.Errorf("error writing upload %w", err)
	}

	log.Debug().Str("filename", name).Int("size", len(data)).Msg("stored upload")

	return name, nil
}

// Read returns the bytes and content type of a stored image.
func (s *UploadStore) Read(filename string) ([]byte, string, error) {
	path, err := s.Path(filename)
	if err != nil {
		return nil, "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %s", ErrNotFound, filename)
		}
		return nil, "", fmt.Errorf("error reading upload %w", err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return data, contentType, nil
}

// Path returns the on-disk location of a stored image without reading it.
func (s *UploadStore) Path(filename string) (string, error) {
	name, err := SanitizeFilename(filename)
	if err != nil {
		return "", err
	}

	return filepath.Join(s.dir, name), nil
}

// Exists reports whether an image with the given filename is stored.
func (s *UploadStore) Exists(filename string) bool {
	path, err := s.Path(filename)
	if err != nil {
		return false
	}

	_, err = os.Stat(path)

	return err == nil
}
