package editor

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// previewPane shows the composed HTML of the document next to the editor.
type previewPane struct {
	open     bool
	html     string
	viewport viewport.Model
	style    lipgloss.Style
}

func newPreviewPane() previewPane {
	return previewPane{viewport: viewport.New(0, 0)}
}

func (p *previewPane) setSize(width, height int, style lipgloss.Style) {
	p.style = style
	p.viewport.Width = max(width-style.GetHorizontalFrameSize(), 0)
	p.viewport.Height = max(height-style.GetVerticalFrameSize(), 0)
	p.setContent(p.html)
}

func (p *previewPane) setContent(html string) {
	p.html = html
	body := breakBlocks(html)
	if p.viewport.Width > 0 {
		body = lipgloss.NewStyle().Width(p.viewport.Width).Render(body)
	}
	p.viewport.SetContent(body)
}

func (p previewPane) view() string {
	return p.style.Render(p.viewport.View())
}

// breakBlocks puts each closing block tag on its own line so the composed
// HTML, which has no newlines, stays readable in a terminal.
func breakBlocks(html string) string {
	r := strings.NewReplacer("</p>", "</p>\n", "</div>", "</div>\n", `<div class="highlight-group">`, "<div class=\"highlight-group\">\n")
	return strings.TrimRight(r.Replace(html), "\n")
}

func (m *Model) togglePreview() {
	m.pane.open = !m.pane.open
	m.layout()
	if m.pane.open {
		m.refreshPreview()
	}
	m.rebuildContent()
	m.followCursor()
}

func (m *Model) refreshPreview() {
	start := time.Now()
	html, err := m.compositor.Render(m.doc.Text())
	if err != nil {
		m.log.RenderFailed(err)
		m.setStatus("preview: "+err.Error(), true)
		return
	}
	m.pane.setContent(html)
	m.log.PreviewRendered(m.doc.LineCount(), len(html), time.Since(start))
}
