package converter

import (
	"context"
	"errors"
	"fmt"
	"os/exec"

	"github.com/arpitthool/image-transform-web/internal/adapters/file"
	"github.com/arpitthool/image-transform-web/internal/core/domain"

	"github.com/rs/zerolog/log"
)

const grayscaleColorspace = "Gray"

// MagickConverter shells out to ImageMagick for the conversion. The binary
// sniffs the input format itself, the output is forced to PNG.
type MagickConverter struct {
	magickBinary []string
}

func NewMagickConverter() (*MagickConverter, error) {
	mc := &MagickConverter{}
	commands := [][]string{{"magick", "convert", "-version"}, {"convert", "-version"}}

	for _, command := range commands {
		_, err := exec.Command(command[0], command[1:]...).Output()
		if err != nil {
			log.Debug().Strs("commands", command).Msg("binary not found")
			continue
		}

		log.Debug().Strs("commands", command).Msg("binary found")
		mc.magickBinary = command[:len(command)-1]
		break
	}

	if len(mc.magickBinary) == 0 {
		return nil, errors.New("magick binary not available")
	}

	return mc, nil
}

func (m *MagickConverter) Grayscale(ctx context.Context, data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty input", domain.ErrInvalidImage)
	}

	path, err := file.Save(data, "", ".img")
	if err != nil {
		return nil, err
	}
	defer file.Remove(path)

	args := append(m.magickBinary, path, "-colorspace", grayscaleColorspace, "png:"+path)

	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	out, err := cmd.Output()
	if err != nil {
		log.Error().Bytes("magickStderr", out).Msg("magick commands failed")
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidImage, err)
	}

	log.Debug().Msg("magick commands finished")

	return file.Read(path)
}
