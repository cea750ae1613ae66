package port

import (
	"context"

	"github.com/arpitthool/image-transform-web/internal/core/domain"
)

type ImageTransformer interface {
	// Grayscale submits an image for conversion. Every endpoint reply is
	// returned as a TransformResponse, error statuses included; only transport
	// failures produce an error.
	Grayscale(ctx context.Context, image domain.SourceImage) (domain.TransformResponse, error)
}
