package web

import (
	"bytes"
	"context"
	"html/template"
	"strings"
	"testing"

	"github.com/arpitthool/image-transform-web/internal/core/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultPageElementLookup(t *testing.T) {
	page := newResultPage()

	_, ok := page.Trigger(domain.TriggerID)
	assert.True(t, ok)
	_, ok = page.Trigger("otherBtn")
	assert.False(t, ok)

	_, ok = page.Indicator(domain.IndicatorID)
	assert.True(t, ok)
	_, ok = page.Indicator("spinner")
	assert.False(t, ok)

	_, ok = page.Container(domain.ContainerID)
	assert.True(t, ok)
	_, ok = page.Container("sidebar")
	assert.False(t, ok)
}

func TestResultPageClick(t *testing.T) {
	page := newResultPage()

	var clicks int
	page.trigger.OnClick(func(ctx context.Context) { clicks++ })

	page.click(t.Context())
	assert.Equal(t, 1, clicks)

	page.trigger.SetEnabled(false)
	page.click(t.Context())
	assert.Equal(t, 1, clicks)
}

func TestResultContainerSetImage(t *testing.T) {
	container := &resultContainer{}

	container.SetImage(domain.RenderedImage{
		Data:        []byte("converted"),
		ContentType: "image/png",
		AltText:     domain.ProcessedImageAlt,
		StyleClass:  domain.ProcessedImageClass,
	})

	result := container.result
	assert.True(t, result.HasImage)
	assert.True(t, strings.HasPrefix(string(result.ImageSrc), "data:image/png;base64,"))
	assert.Equal(t, "Processed image", result.AltText)
	assert.Equal(t, "processed-image", result.StyleClass)
	assert.Empty(t, result.ErrorText)
}

func TestResultContainerSetErrorTextReplacesImage(t *testing.T) {
	container := &resultContainer{}

	container.SetImage(domain.RenderedImage{Data: []byte("converted"), ContentType: "image/png"})
	container.SetErrorText("Error: Invalid image file")

	result := container.result
	assert.False(t, result.HasImage)
	assert.Empty(t, result.ImageSrc)
	assert.Equal(t, "Error: Invalid image file", result.ErrorText)
}

func TestViewTemplateEscapesErrorText(t *testing.T) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	require.NoError(t, err)

	container := &resultContainer{}
	container.SetErrorText(`Error: <script>alert("x")</script>`)

	buf := new(bytes.Buffer)
	require.NoError(t, tmpl.ExecuteTemplate(buf, "view.html", map[string]any{
		"Filename": "cat.png",
		"Result":   container.result,
	}))

	page := buf.String()
	assert.NotContains(t, page, "<script>alert")
	assert.Contains(t, page, "&lt;script&gt;")
}

func TestViewTemplateRendersDataURI(t *testing.T) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	require.NoError(t, err)

	container := &resultContainer{}
	container.SetImage(domain.RenderedImage{
		Data:        []byte("converted"),
		ContentType: "image/png",
		AltText:     domain.ProcessedImageAlt,
		StyleClass:  domain.ProcessedImageClass,
	})

	buf := new(bytes.Buffer)
	require.NoError(t, tmpl.ExecuteTemplate(buf, "view.html", map[string]any{
		"Filename": "cat.png",
		"Result":   container.result,
	}))

	page := buf.String()
	assert.Contains(t, page, `src="data:image/png;base64,`)
	assert.NotContains(t, page, "ZgotmplZ")
}
