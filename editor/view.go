package editor

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/markline/command"
)

func (m Model) View() string {
	body := m.viewport.View()
	if m.pane.open {
		body = lipgloss.JoinHorizontal(lipgloss.Top, body, m.pane.view())
	}
	parts := []string{body}
	if m.link.active {
		parts = append(parts, m.link.view())
	}
	parts = append(parts, m.statusView())
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

// statusView shows the cursor position and the toolbar commands active at
// it, or the pending status message.
func (m Model) statusView() string {
	st := m.cfg.Style
	if m.status != "" {
		if m.statusErr {
			return st.StatusError.Render(m.status)
		}
		return st.Status.Render(m.status)
	}

	p := m.doc.Cursor()
	line := st.Status.Render(fmt.Sprintf("%d:%d", p.Row+1, p.Col+1))
	if names := activeTitles(command.Active(m.doc)); len(names) > 0 {
		line += " " + st.StatusActive.Render(strings.Join(names, " · "))
	}
	if m.cfg.ReadOnly {
		line += " " + st.Status.Render("[read-only]")
	}
	return line
}

func activeTitles(active command.Set) []string {
	var out []string
	for _, a := range command.Toolbar() {
		if active.Has(a.ID) {
			out = append(out, a.Title)
		}
	}
	return out
}
