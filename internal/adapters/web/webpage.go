package web

import (
	"context"
	"encoding/base64"
	"html/template"

	"github.com/arpitthool/image-transform-web/internal/core/domain"
	"github.com/arpitthool/image-transform-web/internal/core/port"
)

// ConversionResult feeds the result container section of the view template.
// ErrorText goes through the template engine and is escaped there, never
// inserted as markup.
type ConversionResult struct {
	HasImage   bool
	ImageSrc   template.URL
	AltText    string
	StyleClass string
	ErrorText  string
}

// resultPage is a server-side double of the view page for one no-script
// conversion: element state collapses into the data the template renders.
type resultPage struct {
	trigger   *resultTrigger
	indicator *resultIndicator
	container *resultContainer
}

func newResultPage() *resultPage {
	return &resultPage{
		trigger:   &resultTrigger{enabled: true},
		indicator: &resultIndicator{},
		container: &resultContainer{},
	}
}

func (p *resultPage) Trigger(id string) (port.Trigger, bool) {
	if id != domain.TriggerID {
		return nil, false
	}
	return p.trigger, true
}

func (p *resultPage) Indicator(id string) (port.Indicator, bool) {
	if id != domain.IndicatorID {
		return nil, false
	}
	return p.indicator, true
}

func (p *resultPage) Container(id string) (port.Container, bool) {
	if id != domain.ContainerID {
		return nil, false
	}
	return p.container, true
}

func (p *resultPage) click(ctx context.Context) {
	if !p.trigger.enabled || p.trigger.handler == nil {
		return
	}
	p.trigger.handler(ctx)
}

func (p *resultPage) result() ConversionResult {
	return p.container.result
}

type resultTrigger struct {
	handler func(ctx context.Context)
	enabled bool
}

func (t *resultTrigger) SetEnabled(enabled bool) {
	t.enabled = enabled
}

func (t *resultTrigger) OnClick(handler func(ctx context.Context)) {
	t.handler = handler
}

type resultIndicator struct {
	visible bool
}

func (i *resultIndicator) SetVisible(visible bool) {
	i.visible = visible
}

type resultContainer struct {
	result ConversionResult
}

// SetImage materializes the image as a data URI. The content type comes from
// our own conversion service, which is what makes the template.URL safe.
func (c *resultContainer) SetImage(image domain.RenderedImage) {
	c.result = ConversionResult{
		HasImage:   true,
		ImageSrc:   template.URL("data:" + image.ContentType + ";base64," + base64.StdEncoding.EncodeToString(image.Data)),
		AltText:    image.AltText,
		StyleClass: image.StyleClass,
	}
}

func (c *resultContainer) SetErrorText(text string) {
	c.result = ConversionResult{ErrorText: text}
}
