package editor

import (
	"github.com/iw2rmb/markline/internal/logger"
	"github.com/iw2rmb/markline/preview"
)

// Config configures the editor Model.
type Config struct {
	// Initial text for the internal buffer.
	Text string

	// Rendering options.
	ShowLineNums bool
	Style        Style
	KeyMap       KeyMap

	// Forwarded to buffer.Options.
	HistoryLimit int

	// ReadOnly disables every mutation, including toolbar commands.
	ReadOnly bool

	// Divider is the snippet inserted by the divider command. Empty means
	// command.DefaultDivider.
	Divider string

	// Renderer converts markdown for the preview pane. Nil means goldmark.
	Renderer preview.Renderer
	// Sanitize runs preview output through the HTML sanitizer.
	Sanitize bool

	Clipboard Clipboard

	// OnChange is called once per Update in which the buffer state
	// changed.
	OnChange func(ChangeEvent)

	// Logger receives session events. Nil discards them.
	Logger *logger.Logger
}
