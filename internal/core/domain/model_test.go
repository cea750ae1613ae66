package domain

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAllowedFile(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		want     bool
	}{
		{name: "png", filename: "cat.png", want: true},
		{name: "jpg", filename: "cat.jpg", want: true},
		{name: "jpeg", filename: "cat.jpeg", want: true},
		{name: "gif", filename: "cat.gif", want: true},
		{name: "bmp", filename: "cat.bmp", want: true},
		{name: "webp", filename: "cat.webp", want: true},
		{name: "uppercase extension", filename: "CAT.PNG", want: true},
		{name: "double extension", filename: "cat.png.txt", want: false},
		{name: "text file", filename: "notes.txt", want: false},
		{name: "no extension", filename: "cat", want: false},
		{name: "empty", filename: "", want: false},
		{name: "bare extension", filename: ".png", want: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, AllowedFile(tc.filename))
		})
	}
}

func TestTransformResponseSuccess(t *testing.T) {
	assert.True(t, TransformResponse{Status: http.StatusOK}.Success())
	assert.True(t, TransformResponse{Status: http.StatusCreated}.Success())
	assert.False(t, TransformResponse{Status: http.StatusBadRequest}.Success())
	assert.False(t, TransformResponse{Status: http.StatusInternalServerError}.Success())
	assert.False(t, TransformResponse{}.Success())
}

func TestStatusError(t *testing.T) {
	err := NewStatusError(http.StatusBadRequest, "Invalid image file")

	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "Invalid image file", err.Error())
}
