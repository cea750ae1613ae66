package domain

import (
	"path/filepath"
	"strings"
)

// SourceImage is an uploaded image as served by the upload read endpoint.
type SourceImage struct {
	Filename    string
	ContentType string
	Data        []byte
}

// TransformResponse is the transform endpoint's reply. Every reply the
// endpoint produces is a valid response, including error statuses; only
// transport failures are reported as errors.
type TransformResponse struct {
	Status      int
	ContentType string
	Body        []byte
}

// Success reports whether the endpoint accepted and converted the image.
func (r TransformResponse) Success() bool {
	return r.Status >= 200 && r.Status < 300
}

// RenderedImage is the single image a result container displays after a
// successful conversion.
type RenderedImage struct {
	Data        []byte
	ContentType string
	AltText     string
	StyleClass  string
}

// StatusError is an endpoint error with the HTTP status and plain-text body
// it should be reported with.
type StatusError struct {
	Status  int
	Message string
}

func NewStatusError(status int, message string) *StatusError {
	return &StatusError{Status: status, Message: message}
}

func (e *StatusError) Error() string {
	return e.Message
}

var allowedExtensions = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".gif":  {},
	".bmp":  {},
	".webp": {},
}

// AllowedFile reports whether the filename carries a supported image extension.
func AllowedFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	if ext == "" {
		return false
	}

	_, ok := allowedExtensions[ext]

	return ok
}
