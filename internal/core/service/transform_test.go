package service

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/arpitthool/image-transform-web/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type MockConverter struct {
	response []byte
	err      error
	Data     []byte
}

func (m *MockConverter) Grayscale(ctx context.Context, data []byte) ([]byte, error) {
	m.Data = data
	return m.response, m.err
}

func TestConvertSuccessful(t *testing.T) {
	mc := &MockConverter{response: []byte("converted")}
	s := NewTransformService(mc)

	converted, err := s.Convert(t.Context(), "cat.png", []byte("original"))

	require.NoError(t, err)
	assert.Equal(t, []byte("converted"), converted)
	assert.Equal(t, []byte("original"), mc.Data)
}

func TestConvertRejectsRequest(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		err      error
		status   int
		message  string
	}{
		{name: "empty filename", filename: "", status: http.StatusBadRequest,
			message: "No file selected"},
		{name: "unsupported extension", filename: "cat.txt", status: http.StatusBadRequest,
			message: "Invalid file type"},
		{name: "no extension", filename: "cat", status: http.StatusBadRequest,
			message: "Invalid file type"},
		{name: "undecodable image", filename: "cat.png",
			err:    fmt.Errorf("%w: broken", domain.ErrInvalidImage),
			status: http.StatusBadRequest, message: "Invalid image file"},
		{name: "encoding failure", filename: "cat.png",
			err:    fmt.Errorf("%w: out of memory", domain.ErrEncodeFailed),
			status: http.StatusInternalServerError, message: "Failed to encode image"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewTransformService(&MockConverter{err: tt.err})

			_, err := s.Convert(t.Context(), tt.filename, []byte("original"))

			var statusErr *domain.StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.status, statusErr.Status)
			assert.Equal(t, tt.message, statusErr.Message)
		})
	}
}

func TestConvertPassesThroughUnknownErrors(t *testing.T) {
	mc := &MockConverter{err: errors.New("mock error")}
	s := NewTransformService(mc)

	_, err := s.Convert(context.Background(), "cat.png", []byte("original"))

	require.Error(t, err)
	var statusErr *domain.StatusError
	assert.False(t, errors.As(err, &statusErr))
}
