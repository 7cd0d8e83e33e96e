// Package preview renders a markline document to HTML.
//
// Lines are rendered one at a time. Runs of consecutive highlight lines are
// grouped into a wrapper block with their marker stripped; every other line
// becomes a paragraph of its own.
package preview

import (
	"fmt"
	"strings"

	"github.com/iw2rmb/markline/markup"
)

// Class names emitted by the compositor.
const (
	ClassGroup       = "highlight-group"
	ClassHighlighted = "highlighted-text"
)

// Renderer converts markdown to HTML.
type Renderer interface {
	Render(text string) (string, error)
}

// RendererFunc adapts a function to Renderer.
type RendererFunc func(text string) (string, error)

func (f RendererFunc) Render(text string) (string, error) { return f(text) }

// Compositor turns a full document into preview HTML.
type Compositor struct {
	Renderer Renderer

	// Sanitizer, if set, cleans the composed document.
	Sanitizer *Sanitizer
}

// NewCompositor returns a compositor over r, or over a Goldmark renderer
// when r is nil.
func NewCompositor(r Renderer) *Compositor {
	if r == nil {
		r = NewGoldmark()
	}
	return &Compositor{Renderer: r}
}

// Render composes text. The output only depends on text and the renderer.
func (c *Compositor) Render(text string) (string, error) {
	var sb strings.Builder
	inGroup := false

	for row, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		highlight := markup.Classify(line).Kind == markup.Highlight

		if highlight {
			if !inGroup {
				sb.WriteString(`<div class="` + ClassGroup + `">`)
				inGroup = true
			}
			body, _ := markup.StripMarker(trimmed)
			html, err := c.inline(body)
			if err != nil {
				return "", fmt.Errorf("render line %d: %w", row+1, err)
			}
			sb.WriteString(`<p class="` + ClassHighlighted + `">` + html + `</p>`)
			continue
		}

		if inGroup {
			sb.WriteString(`</div>`)
			inGroup = false
		}
		html, err := c.inline(trimmed)
		if err != nil {
			return "", fmt.Errorf("render line %d: %w", row+1, err)
		}
		sb.WriteString(`<p>` + html + `</p>`)
	}
	if inGroup {
		sb.WriteString(`</div>`)
	}

	out := sb.String()
	if c.Sanitizer != nil {
		out = c.Sanitizer.Sanitize(out)
	}
	return out, nil
}

func (c *Compositor) inline(text string) (string, error) {
	if c.Renderer == nil {
		return "", fmt.Errorf("preview: no renderer")
	}
	out, err := c.Renderer.Render(text)
	if err != nil {
		return "", err
	}
	return unwrapParagraph(out), nil
}

// unwrapParagraph removes the <p> element enclosing a single rendered
// paragraph so that it can be placed inside the compositor's own paragraph.
func unwrapParagraph(html string) string {
	html = strings.TrimSpace(html)
	if !strings.HasPrefix(html, "<p>") || !strings.HasSuffix(html, "</p>") {
		return html
	}
	inner := html[len("<p>") : len(html)-len("</p>")]
	if strings.Contains(inner, "<p>") || strings.Contains(inner, "</p>") {
		return html
	}
	return inner
}
