package editor

import "github.com/charmbracelet/lipgloss"

// Style controls the editor's rendering.
type Style struct {
	Gutter        lipgloss.Style
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style

	Text      lipgloss.Style
	Selection lipgloss.Style
	Cursor    lipgloss.Style

	// HighlightLine styles rows carrying the highlighted-line class.
	HighlightLine lipgloss.Style
	// HighlightMark styles text under a cm-highlight mark.
	HighlightMark lipgloss.Style

	Status       lipgloss.Style
	StatusActive lipgloss.Style
	StatusError  lipgloss.Style

	Preview    lipgloss.Style
	LinkForm   lipgloss.Style
	LinkPrompt lipgloss.Style
}

func DefaultStyle() Style {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return Style{
		Gutter:        gutter,
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Selection:     lipgloss.NewStyle().Background(lipgloss.Color("237")),
		Cursor:        lipgloss.NewStyle().Reverse(true),

		HighlightLine: lipgloss.NewStyle().Background(lipgloss.Color("236")),
		HighlightMark: lipgloss.NewStyle().Foreground(lipgloss.Color("221")),

		Status:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		StatusActive: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		StatusError:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),

		Preview:    lipgloss.NewStyle().BorderStyle(lipgloss.NormalBorder()).BorderLeft(true).PaddingLeft(1),
		LinkForm:   lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).Padding(0, 1),
		LinkPrompt: lipgloss.NewStyle().Bold(true),
	}
}
