package port

import (
	"context"

	"github.com/arpitthool/image-transform-web/internal/core/domain"
)

type ImageSource interface {
	// Fetch retrieves the bytes and content type of a previously uploaded image.
	Fetch(ctx context.Context, filename string) (domain.SourceImage, error)
}
