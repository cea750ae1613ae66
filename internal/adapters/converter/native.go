package converter

import (
	"bytes"
	"context"
	"fmt"

	"github.com/arpitthool/image-transform-web/internal/core/domain"

	"github.com/disintegration/imaging"
	"github.com/rs/zerolog/log"

	// The imaging library registers no webp decoder on its own.
	_ "golang.org/x/image/webp"
)

// NativeConverter converts images in process using the imaging library.
type NativeConverter struct{}

func NewNativeConverter() *NativeConverter {
	return &NativeConverter{}
}

// Grayscale decodes the image, desaturates it and re-encodes it as PNG.
func (n *NativeConverter) Grayscale(ctx context.Context, data []byte) ([]byte, error) {
	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidImage, err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	gray := imaging.Grayscale(img)

	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, gray, imaging.PNG); err != nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrEncodeFailed, err)
	}

	log.Debug().Int("size", buf.Len()).Msg("image converted to grayscale")

	return buf.Bytes(), nil
}
