package httpapi

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"github.com/arpitthool/image-transform-web/internal/core/domain"

	"github.com/rs/zerolog/log"
)

const (
	uploadsPath   = "/uploads/"
	transformPath = "/image/transform/grayscale"

	fileFieldName = "file"
)

// Client talks to the transform server's upload and conversion endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
	}
}

// Fetch downloads a previously uploaded image. Any status except 200 means
// the image cannot be read and is an error.
func (c *Client) Fetch(ctx context.Context, filename string) (domain.SourceImage, error) {
	endpoint := c.baseURL + uploadsPath + url.PathEscape(filename)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		err = fmt.Errorf("error creating request %w", err)
		log.Error().Err(err).Str("endpoint", endpoint).Send()
		return domain.SourceImage{}, err
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("error executing request %w", err)
		log.Error().Err(err).Str("endpoint", endpoint).Send()
		return domain.SourceImage{}, err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		err = fmt.Errorf("unexpected status code fetching image: %d", res.StatusCode)
		log.Error().Err(err).Str("endpoint", endpoint).Send()
		return domain.SourceImage{}, err
	}

	buf, err := io.ReadAll(res.Body)
	if err != nil {
		err = fmt.Errorf("error reading response %w", err)
		log.Error().Err(err).Str("endpoint", endpoint).Send()
		return domain.SourceImage{}, err
	}

	contentType := res.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(buf)
	}

	log.Debug().Str("filename", filename).Str("contentType", contentType).Int("size", len(buf)).
		Msg("fetched image")

	return domain.SourceImage{Filename: filename, ContentType: contentType, Data: buf}, nil
}

// Grayscale resubmits an image to the conversion endpoint as multipart form
// data. The endpoint's reply is returned whatever its status; only transport
// failures are errors.
func (c *Client) Grayscale(ctx context.Context, image domain.SourceImage) (domain.TransformResponse, error) {
	payloadBuf := new(bytes.Buffer)
	writer := multipart.NewWriter(payloadBuf)

	part, err := createImagePart(writer, image)
	if err != nil {
		return domain.TransformResponse{}, fmt.Errorf("error creating form part: %w", err)
	}

	if _, err := part.Write(image.Data); err != nil {
		return domain.TransformResponse{}, fmt.Errorf("error writing form part: %w", err)
	}

	if err := writer.Close(); err != nil {
		return domain.TransformResponse{}, fmt.Errorf("error closing form writer: %w", err)
	}

	endpoint := c.baseURL + transformPath

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, payloadBuf)
	if err != nil {
		log.Error().Err(err).Msg("error creating POST request for conversion")
		return domain.TransformResponse{}, err
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())

	res, err := c.httpClient.Do(req)
	if err != nil {
		return domain.TransformResponse{}, fmt.Errorf("error executing conversion request: %w", err)
	}

	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return domain.TransformResponse{}, fmt.Errorf("error reading conversion response: %w", err)
	}

	log.Debug().Int("status", res.StatusCode).Int("size", len(body)).Msg("conversion response")

	return domain.TransformResponse{
		Status:      res.StatusCode,
		ContentType: res.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

// createImagePart builds the file form part by hand so the original content
// type travels with the upload instead of the generic octet-stream.
func createImagePart(writer *multipart.Writer, image domain.SourceImage) (io.Writer, error) {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`,
		fileFieldName, quoteEscaper.Replace(image.Filename)))
	if image.ContentType != "" {
		header.Set("Content-Type", image.ContentType)
	}

	return writer.CreatePart(header)
}
