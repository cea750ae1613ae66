package port

import "context"

type Converter interface {
	// Grayscale converts the given image bytes to grayscale and returns the
	// result encoded as PNG.
	Grayscale(ctx context.Context, data []byte) ([]byte, error)
}
