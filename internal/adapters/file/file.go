package file

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

// Save writes image bytes to a uniquely named file in dir and returns the
// path. An empty dir falls back to the system temp directory.
func Save(data []byte, dir, extension string) (string, error) {
	id, err := uuid.NewV4()
	if err != nil {
		return "", err
	}

	if dir == "" {
		dir = os.TempDir()
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		err = fmt.Errorf("error creating output directory %w", err)
		log.Error().Err(err).Str("dir", dir).Send()
		return "", err
	}

	log.Debug().Int("bytes", len(data)).Str("extension", extension).Msg("creating image file")

	path := filepath.Join(dir, fmt.Sprintf("%s%s", id.String(), extension))

	f, err := os.Create(path)
	if err != nil {
		err = fmt.Errorf("error creating image file %w", err)
		log.Error().Err(err).Send()
		return "", err
	}

	defer f.Close()

	if _, err := f.Write(data); err != nil {
		err = fmt.Errorf("error writing image file %w", err)
		log.Error().Err(err).Send()
		return "", err
	}

	log.Debug().Str("path", f.Name()).Msg("created file")

	return f.Name(), nil
}

// Read retrieves a stored file by its path, as returned from Save().
func Read(path string) ([]byte, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		err = fmt.Errorf("error reading image file %w", err)
		log.Error().Err(err).Send()
		return nil, err
	}

	return buf, nil
}

// Remove deletes a file at the given path and logs success or failure.
func Remove(path string) {
	err := os.Remove(path)
	if err != nil {
		log.Warn().Str("path", path).Err(err).Msg("could not clean up file")
		return
	}
	log.Debug().Str("path", path).Msg("cleaned up file")
}
