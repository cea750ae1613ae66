package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/arpitthool/image-transform-web/internal/adapters/file"
	"github.com/arpitthool/image-transform-web/internal/core/domain"
	"github.com/arpitthool/image-transform-web/internal/core/port"
)

// Page is a line-oriented stand-in for the browser view page: the trigger
// fires on every input line, the indicator prints progress, the container
// stores the processed image on disk and prints where it landed.
type Page struct {
	in           io.Reader
	out          io.Writer
	trigger      *LineTrigger
	indicator    *PrintIndicator
	container    *FileContainer
	clickTimeout time.Duration
}

func NewPage(in io.Reader, out io.Writer, outputDir string, clickTimeout time.Duration) *Page {
	return &Page{
		in:           in,
		out:          out,
		trigger:      &LineTrigger{out: out, enabled: true},
		indicator:    &PrintIndicator{out: out},
		container:    &FileContainer{out: out, dir: outputDir},
		clickTimeout: clickTimeout,
	}
}

func (p *Page) Trigger(id string) (port.Trigger, bool) {
	if id != domain.TriggerID {
		return nil, false
	}
	return p.trigger, true
}

func (p *Page) Indicator(id string) (port.Indicator, bool) {
	if id != domain.IndicatorID {
		return nil, false
	}
	return p.indicator, true
}

func (p *Page) Container(id string) (port.Container, bool) {
	if id != domain.ContainerID {
		return nil, false
	}
	return p.container, true
}

// Run blocks reading input: every line is a click on the trigger. It returns
// when input is exhausted or the context ends between lines.
func (p *Page) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(p.in)

	fmt.Fprintln(p.out, "press enter to convert the image, ctrl+c to quit")

	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil
		}

		p.trigger.Click(ctx, p.clickTimeout)

		fmt.Fprintln(p.out, "press enter to convert again, ctrl+c to quit")
	}

	return scanner.Err()
}

// LineTrigger stands in for the conversion button.
type LineTrigger struct {
	out     io.Writer
	handler func(ctx context.Context)
	enabled bool
}

func (t *LineTrigger) SetEnabled(enabled bool) {
	t.enabled = enabled
}

func (t *LineTrigger) OnClick(handler func(ctx context.Context)) {
	t.handler = handler
}

// Click invokes the registered handler the way a button press would. Clicks
// on a disabled trigger are dropped.
func (t *LineTrigger) Click(ctx context.Context, timeout time.Duration) {
	if !t.enabled || t.handler == nil {
		fmt.Fprintln(t.out, "conversion not available right now")
		return
	}

	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	t.handler(ctx)
}

// PrintIndicator stands in for the loading element.
type PrintIndicator struct {
	out     io.Writer
	visible bool
}

func (i *PrintIndicator) SetVisible(visible bool) {
	i.visible = visible
	if visible {
		fmt.Fprintln(i.out, "converting image, please wait...")
	}
}

// FileContainer stands in for the result container. Converted images land in
// its output directory instead of on a page.
type FileContainer struct {
	out      io.Writer
	dir      string
	lastPath string
}

func (c *FileContainer) SetImage(image domain.RenderedImage) {
	path, err := file.Save(image.Data, c.dir, extensionFor(image.ContentType))
	if err != nil {
		fmt.Fprintf(c.out, "failed to store processed image: %v\n", err)
		return
	}

	c.lastPath = path
	fmt.Fprintf(c.out, "%s saved to %s\n", image.AltText, path)
}

func (c *FileContainer) SetErrorText(text string) {
	fmt.Fprintln(c.out, text)
}

func extensionFor(contentType string) string {
	mediaType, _, _ := strings.Cut(contentType, ";")

	switch strings.TrimSpace(mediaType) {
	case "image/jpeg":
		return ".jpg"
	case "image/gif":
		return ".gif"
	case "image/bmp":
		return ".bmp"
	case "image/webp":
		return ".webp"
	default:
		return ".png"
	}
}
