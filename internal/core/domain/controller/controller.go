package controller

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/arpitthool/image-transform-web/internal/core/domain"
	"github.com/arpitthool/image-transform-web/internal/core/port"

	"github.com/rs/zerolog/log"
)

// GrayscaleController drives a single user-triggered conversion: fetch the
// uploaded original, resubmit it to the transform endpoint and show the
// outcome in the result container.
type GrayscaleController struct {
	source      port.ImageSource
	transformer port.ImageTransformer
	trigger     port.Trigger
	indicator   port.Indicator
	container   port.Container
	filename    string
	busy        atomic.Bool
}

// NewGrayscaleController looks up the three required page elements and
// registers the click handler on the trigger. A page missing any element is
// malformed and fails construction before a handler is attached.
func NewGrayscaleController(page port.Page, source port.ImageSource, transformer port.ImageTransformer,
	filename string) (*GrayscaleController, error) {
	if filename == "" {
		return nil, domain.ErrEmptyFilename
	}

	trigger, ok := page.Trigger(domain.TriggerID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrElementMissing, domain.TriggerID)
	}

	indicator, ok := page.Indicator(domain.IndicatorID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrElementMissing, domain.IndicatorID)
	}

	container, ok := page.Container(domain.ContainerID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrElementMissing, domain.ContainerID)
	}

	c := &GrayscaleController{
		source:      source,
		transformer: transformer,
		trigger:     trigger,
		indicator:   indicator,
		container:   container,
		filename:    filename,
	}

	trigger.OnClick(c.HandleGrayscaleConversion)

	return c, nil
}

// HandleGrayscaleConversion runs one conversion attempt. Triggers arriving
// while an attempt is in flight are ignored. The trigger and indicator are
// always restored to their idle state, whatever the outcome.
func (c *GrayscaleController) HandleGrayscaleConversion(ctx context.Context) {
	if !c.busy.CompareAndSwap(false, true) {
		log.Debug().Str("filename", c.filename).Msg("conversion in flight, ignoring trigger")
		return
	}

	l := log.With().
		Str("filename", c.filename).
		Str("trigger", domain.TriggerID).
		Logger()

	l.Info().Msg("handling conversion request")

	c.trigger.SetEnabled(false)
	c.indicator.SetVisible(true)

	defer func() {
		c.trigger.SetEnabled(true)
		c.indicator.SetVisible(false)
		c.busy.Store(false)
	}()

	defer func() {
		if r := recover(); r != nil {
			l.Error().Interface("panic", r).Msg("conversion panicked")
			c.renderNetworkError(recoveredError(r))
		}
	}()

	if err := c.processImage(ctx); err != nil {
		l.Error().Err(err).Msg("conversion failed")
		c.renderNetworkError(err)
		return
	}

	l.Debug().Msg("conversion finished")
}

// processImage fetches the original image and submits it for conversion.
// Endpoint error replies are rendered here and are not errors; only transport
// failures propagate to the caller.
func (c *GrayscaleController) processImage(ctx context.Context) error {
	image, err := c.source.Fetch(ctx, c.filename)
	if err != nil {
		return err
	}

	response, err := c.transformer.Grayscale(ctx, image)
	if err != nil {
		return err
	}

	if !response.Success() {
		c.container.SetErrorText(domain.APIErrorPrefix + string(response.Body))
		return nil
	}

	c.container.SetImage(domain.RenderedImage{
		Data:        response.Body,
		ContentType: response.ContentType,
		AltText:     domain.ProcessedImageAlt,
		StyleClass:  domain.ProcessedImageClass,
	})

	return nil
}

func (c *GrayscaleController) renderNetworkError(err error) {
	c.container.SetErrorText(domain.NetworkErrorPrefix + err.Error())
}

// recoveredError normalizes a recovered panic value: errors keep their
// message, anything else collapses into a generic one.
func recoveredError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}

	return errors.New(domain.GenericErrorMessage)
}
