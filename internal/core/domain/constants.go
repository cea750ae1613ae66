package domain

import "errors"

var (
	ErrElementMissing = errors.New("required page element missing")
	ErrEmptyFilename  = errors.New("empty filename")
	ErrInvalidImage   = errors.New("invalid image data")
	ErrEncodeFailed   = errors.New("encoding image failed")
)

// Identifiers of the page elements the conversion controller binds to.
const (
	TriggerID   = "grayscaleBtn"
	IndicatorID = "loading"
	ContainerID = "processedImageContainer"
)

// Presentation attributes of a successfully converted image.
const (
	ProcessedImageAlt   = "Processed image"
	ProcessedImageClass = "processed-image"
)

// Prefixes and fallback text for errors shown in the result container.
const (
	APIErrorPrefix      = "Error: "
	NetworkErrorPrefix  = "Network error: "
	GenericErrorMessage = "an unexpected error occurred"
)

// Plain-text bodies of the transform endpoint's error replies.
const (
	MsgNoFilePart      = "No file part in the request"
	MsgNoFileSelected  = "No file selected"
	MsgInvalidImage    = "Invalid image file"
	MsgInvalidFileType = "Invalid file type"
	MsgEncodeFailed    = "Failed to encode image"
	MsgInternalError   = "Internal Server Error"
)

// Flash messages shown on the upload page.
const (
	MsgUploadSuccess     = "File uploaded successfully!"
	MsgUploadInvalidType = "Invalid file type. Please upload an image file."
)

// ProcessedImageName is the download name of a converted image.
const ProcessedImageName = "grayscale.png"
