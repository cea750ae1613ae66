package converter

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/arpitthool/image-transform-web/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func colorfulPNG(t *testing.T) []byte {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.Set(0, 0, color.NRGBA{R: 255, A: 255})
	img.Set(1, 0, color.NRGBA{G: 255, A: 255})
	img.Set(0, 1, color.NRGBA{B: 255, A: 255})
	img.Set(1, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255})

	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))

	return buf.Bytes()
}

func TestNativeConverterGrayscale(t *testing.T) {
	c := NewNativeConverter()

	converted, err := c.Grayscale(t.Context(), colorfulPNG(t))
	require.NoError(t, err)

	decoded, format, err := image.Decode(bytes.NewReader(converted))
	require.NoError(t, err)
	assert.Equal(t, "png", format)
	assert.Equal(t, image.Rect(0, 0, 2, 2), decoded.Bounds())

	for x := range 2 {
		for y := range 2 {
			r, g, b, _ := decoded.At(x, y).RGBA()
			assert.Equal(t, r, g)
			assert.Equal(t, g, b)
		}
	}
}

func TestNativeConverterGrayscaleInvalidData(t *testing.T) {
	c := NewNativeConverter()

	_, err := c.Grayscale(t.Context(), []byte("not an image"))

	assert.ErrorIs(t, err, domain.ErrInvalidImage)
}

func TestNativeConverterGrayscaleEmptyData(t *testing.T) {
	c := NewNativeConverter()

	_, err := c.Grayscale(t.Context(), nil)

	assert.ErrorIs(t, err, domain.ErrInvalidImage)
}
