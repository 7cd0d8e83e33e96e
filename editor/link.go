package editor

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/markline/command"
)

// linkForm is the two-field dialog behind the link toolbar command.
type linkForm struct {
	active bool
	focus  int
	title  textinput.Model
	url    textinput.Model
	style  Style
}

func newLinkForm(style Style) linkForm {
	title := textinput.New()
	title.Prompt = "Title: "
	title.Placeholder = "link text"

	url := textinput.New()
	url.Prompt = "URL:   "
	url.Placeholder = "https://"

	return linkForm{title: title, url: url, style: style}
}

func (f *linkForm) open() tea.Cmd {
	f.active = true
	f.focus = 0
	f.title.Reset()
	f.url.Reset()
	f.url.Blur()
	return f.title.Focus()
}

func (f *linkForm) close() {
	f.active = false
	f.title.Blur()
	f.url.Blur()
}

func (f *linkForm) switchFocus() tea.Cmd {
	f.focus = 1 - f.focus
	if f.focus == 0 {
		f.url.Blur()
		return f.title.Focus()
	}
	f.title.Blur()
	return f.url.Focus()
}

func (f linkForm) values() command.LinkForm {
	return command.LinkForm{Title: f.title.Value(), URL: f.url.Value()}
}

// update forwards msg to the focused field.
func (f linkForm) update(msg tea.Msg) (linkForm, tea.Cmd) {
	var cmd tea.Cmd
	if f.focus == 0 {
		f.title, cmd = f.title.Update(msg)
	} else {
		f.url, cmd = f.url.Update(msg)
	}
	return f, cmd
}

func (f linkForm) view() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		f.style.LinkPrompt.Render("Insert Link"),
		f.title.View(),
		f.url.View(),
		f.style.Status.Render("enter: insert  tab: next field  esc: cancel"),
	)
	return f.style.LinkForm.Render(body)
}

func (f linkForm) height() int {
	return lipgloss.Height(f.view())
}

func (m Model) openLinkForm() (Model, tea.Cmd) {
	cmd := m.link.open()
	m.layout()
	return m, cmd
}

func (m Model) closeLinkForm() Model {
	m.link.close()
	m.layout()
	m.rebuildContent()
	return m
}

func (m Model) updateLinkForm(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m.closeLinkForm(), nil
	case tea.KeyTab, tea.KeyShiftTab, tea.KeyUp, tea.KeyDown:
		return m, m.link.switchFocus()
	case tea.KeyEnter:
		if m.link.focus == 0 && m.link.url.Value() == "" {
			return m, m.link.switchFocus()
		}
		form := m.link.values()
		if !command.InsertLink(m.doc, &form) {
			m.setStatus("title and URL are both required", true)
			return m, nil
		}
		m.log.CommandRun(string(command.Link), true)
		return m.closeLinkForm(), nil
	}

	var cmd tea.Cmd
	m.link, cmd = m.link.update(msg)
	return m, cmd
}
