package editor

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/markline/buffer"
	"github.com/iw2rmb/markline/command"
	"github.com/iw2rmb/markline/continuation"
	"github.com/iw2rmb/markline/internal/logger"
	"github.com/iw2rmb/markline/markup"
	"github.com/iw2rmb/markline/preview"
	"github.com/iw2rmb/markline/surface"
)

// Model is a Bubble Tea component that renders and edits a markline
// document.
type Model struct {
	cfg Config
	doc *surface.Binding
	log *logger.Logger

	engine *continuation.Engine
	runner command.Runner

	focused bool

	width, height int
	viewport      viewport.Model
	xOffset       int

	compositor *preview.Compositor
	pane       previewPane

	link linkForm

	status    string
	statusErr bool

	lastBufVersion  uint64
	lastTextVersion uint64
	lastCursor      buffer.Pos
}

func New(cfg Config) Model {
	if len(cfg.KeyMap.Enter.Keys()) == 0 {
		cfg.KeyMap = DefaultKeyMap()
	}
	if cfg.Divider == "" {
		cfg.Divider = command.DefaultDivider
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Discard()
	}

	m := Model{
		cfg:      cfg,
		doc:      surface.New(cfg.Text, buffer.Options{HistoryLimit: cfg.HistoryLimit}),
		log:      log,
		focused:  true,
		viewport: viewport.New(0, 0),
		pane:     newPreviewPane(),
		link:     newLinkForm(cfg.Style),
	}

	m.engine = &continuation.Engine{
		OnApply: func(s continuation.Split, r continuation.Result) {
			switch {
			case r.Heading:
				log.ContinuationApplied(s.Row+1, markup.Heading.String())
			case r.Highlight:
				log.ContinuationApplied(s.Row+1, markup.Highlight.String())
			}
		},
	}
	m.runner = command.Runner{
		Divider: cfg.Divider,
		OnRun: func(id command.ID, applied bool) {
			log.CommandRun(string(id), applied)
		},
	}

	m.compositor = preview.NewCompositor(cfg.Renderer)
	if cfg.Sanitize {
		m.compositor.Sanitizer = preview.NewSanitizer()
	}

	b := m.doc.Buffer()
	m.lastBufVersion = b.Version()
	m.lastTextVersion = b.TextVersion()
	m.lastCursor = b.Cursor()
	m.rebuildContent()
	return m
}

// Buffer returns the underlying buffer. Hosts that mutate it directly should
// send any message afterwards so the model re-syncs.
func (m Model) Buffer() *buffer.Buffer { return m.doc.Buffer() }

// Doc returns the document binding the core commands operate on.
func (m Model) Doc() *surface.Binding { return m.doc }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) SetSize(width, height int) Model {
	m.width = max(width, 0)
	m.height = max(height, 0)
	m.layout()
	m.rebuildContent()
	m.followCursor()
	return m
}

func (m Model) Focus() Model {
	if !m.focused {
		m.focused = true
		m.rebuildContent()
		m.followCursor()
	}
	return m
}

func (m Model) Blur() Model {
	if m.focused {
		m.focused = false
		m.rebuildContent()
	}
	return m
}

func (m Model) Focused() bool { return m.focused }

// PreviewOpen reports whether the preview pane is shown.
func (m Model) PreviewOpen() bool { return m.pane.open }

// PreviewHTML returns the most recent preview render.
func (m Model) PreviewHTML() string { return m.pane.html }

// Status returns the status line message.
func (m Model) Status() string { return m.status }

// layout splits the available area between the editor body, the preview
// pane and the status line.
func (m *Model) layout() {
	bodyHeight := max(m.height-1, 0)
	if m.link.active {
		bodyHeight = max(bodyHeight-m.link.height(), 0)
	}

	editorWidth := m.width
	if m.pane.open {
		editorWidth = m.width / 2
		m.pane.setSize(m.width-editorWidth, bodyHeight, m.cfg.Style.Preview)
	}
	m.viewport.Width = editorWidth
	m.viewport.Height = bodyHeight
}

func (m *Model) rebuildContent() {
	m.viewport.SetContent(m.renderContent())
}

func (m *Model) followCursor() {
	if m.doc == nil {
		return
	}
	cur := m.doc.Buffer().Cursor()
	h := m.viewport.Height - m.viewport.Style.GetVerticalFrameSize()
	if h > 0 {
		y := m.viewport.YOffset
		switch {
		case cur.Row < y:
			m.viewport.SetYOffset(cur.Row)
		case cur.Row >= y+h:
			m.viewport.SetYOffset(cur.Row - h + 1)
		}
	}

	w := m.contentWidth(m.doc.LineCount())
	if w <= 0 {
		m.xOffset = 0
		return
	}
	cell := m.cursorCell()
	prev := m.xOffset
	switch {
	case cell < m.xOffset:
		m.xOffset = cell
	case cell >= m.xOffset+w:
		m.xOffset = cell - w + 1
	}
	if m.xOffset != prev {
		m.rebuildContent()
	}
}
