package local

import (
	"context"
	"errors"
	"net/http"

	"github.com/arpitthool/image-transform-web/internal/adapters/storage"
	"github.com/arpitthool/image-transform-web/internal/core/domain"
	"github.com/arpitthool/image-transform-web/internal/core/service"
)

// StoreSource serves the controller's read requests straight from the upload
// store, skipping the HTTP round trip.
type StoreSource struct {
	store *storage.UploadStore
}

func NewStoreSource(store *storage.UploadStore) *StoreSource {
	return &StoreSource{store: store}
}

func (s *StoreSource) Fetch(ctx context.Context, filename string) (domain.SourceImage, error) {
	data, contentType, err := s.store.Read(filename)
	if err != nil {
		return domain.SourceImage{}, err
	}

	return domain.SourceImage{Filename: filename, ContentType: contentType, Data: data}, nil
}

// ServiceTransformer runs conversions in process while keeping the transform
// endpoint's reply contract: rejected requests come back as status responses,
// not errors.
type ServiceTransformer struct {
	service service.Transformer
}

func NewServiceTransformer(service service.Transformer) *ServiceTransformer {
	return &ServiceTransformer{service: service}
}

func (t *ServiceTransformer) Grayscale(ctx context.Context, image domain.SourceImage) (domain.TransformResponse,
	error) {
	converted, err := t.service.Convert(ctx, image.Filename, image.Data)
	if err != nil {
		var statusErr *domain.StatusError
		if errors.As(err, &statusErr) {
			return domain.TransformResponse{
				Status:      statusErr.Status,
				ContentType: "text/plain; charset=utf-8",
				Body:        []byte(statusErr.Message),
			}, nil
		}

		return domain.TransformResponse{}, err
	}

	return domain.TransformResponse{
		Status:      http.StatusOK,
		ContentType: "image/png",
		Body:        converted,
	}, nil
}
