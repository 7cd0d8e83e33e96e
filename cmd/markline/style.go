package main

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/markline/editor"
	"github.com/iw2rmb/markline/internal/config"
)

// styleFromConfig overlays configured colours on the default editor style.
func styleFromConfig(c config.StyleConfig) editor.Style {
	st := editor.DefaultStyle()
	if c.Text != "" {
		st.Text = st.Text.Foreground(lipgloss.Color(c.Text))
	}
	if c.HighlightLine != "" {
		st.HighlightLine = st.HighlightLine.Background(lipgloss.Color(c.HighlightLine))
	}
	if c.HighlightMark != "" {
		st.HighlightMark = st.HighlightMark.Foreground(lipgloss.Color(c.HighlightMark))
	}
	if c.Selection != "" {
		st.Selection = st.Selection.Background(lipgloss.Color(c.Selection))
	}
	if c.Cursor != "" {
		st.Cursor = lipgloss.NewStyle().Background(lipgloss.Color(c.Cursor))
	}
	if c.LineNumber != "" {
		st.LineNum = st.LineNum.Foreground(lipgloss.Color(c.LineNumber))
		st.Gutter = st.Gutter.Foreground(lipgloss.Color(c.LineNumber))
	}
	if c.Status != "" {
		st.Status = st.Status.Foreground(lipgloss.Color(c.Status))
	}
	return st
}
