package port

import (
	"context"

	"github.com/arpitthool/image-transform-web/internal/core/domain"
)

type Trigger interface {
	// SetEnabled toggles whether the trigger accepts user interaction.
	SetEnabled(enabled bool)
	// OnClick registers the handler invoked when the user activates the trigger.
	OnClick(handler func(ctx context.Context))
}

type Indicator interface {
	// SetVisible shows or hides the progress indicator.
	SetVisible(visible bool)
}

type Container interface {
	// SetImage replaces the container content with the given image.
	SetImage(image domain.RenderedImage)
	// SetErrorText replaces the container content with literal error text.
	// Implementations must never interpret the text as markup.
	SetErrorText(text string)
}

type Page interface {
	// Trigger looks up a trigger element by its identifier.
	Trigger(id string) (Trigger, bool)
	// Indicator looks up an indicator element by its identifier.
	Indicator(id string) (Indicator, bool)
	// Container looks up a container element by its identifier.
	Container(id string) (Container, bool)
}
