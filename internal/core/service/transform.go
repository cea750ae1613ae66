package service

import (
	"context"
	"errors"
	"net/http"

	"github.com/arpitthool/image-transform-web/internal/core/domain"
	"github.com/arpitthool/image-transform-web/internal/core/port"

	"github.com/rs/zerolog/log"
)

type Transformer interface {
	// Convert turns the given image into a grayscale PNG. Requests the
	// endpoint must reject come back as a domain.StatusError carrying the
	// status and plain-text body to reply with.
	Convert(ctx context.Context, filename string, data []byte) ([]byte, error)
}

type TransformService struct {
	converter port.Converter
}

func NewTransformService(converter port.Converter) *TransformService {
	return &TransformService{converter: converter}
}

func (s *TransformService) Convert(ctx context.Context, filename string, data []byte) ([]byte, error) {
	l := log.With().
		Str("filename", filename).
		Int("size", len(data)).
		Logger()

	l.Debug().Msg("converting image to grayscale")

	if filename == "" {
		return nil, domain.NewStatusError(http.StatusBadRequest, domain.MsgNoFileSelected)
	}

	if !domain.AllowedFile(filename) {
		return nil, domain.NewStatusError(http.StatusBadRequest, domain.MsgInvalidFileType)
	}

	converted, err := s.converter.Grayscale(ctx, data)
	if err != nil {
		l.Error().Err(err).Msg("grayscale conversion failed")

		switch {
		case errors.Is(err, domain.ErrInvalidImage):
			return nil, domain.NewStatusError(http.StatusBadRequest, domain.MsgInvalidImage)
		case errors.Is(err, domain.ErrEncodeFailed):
			return nil, domain.NewStatusError(http.StatusInternalServerError, domain.MsgEncodeFailed)
		default:
			return nil, err
		}
	}

	l.Debug().Int("convertedSize", len(converted)).Msg("image converted")

	return converted, nil
}
