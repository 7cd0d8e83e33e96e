package editor

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/markline/buffer"
	"github.com/iw2rmb/markline/command"
)

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height), nil
	case tea.KeyMsg:
		m.status, m.statusErr = "", false
		if m.link.active {
			m, cmd = m.updateLinkForm(msg)
		} else {
			m, cmd = m.updateKey(msg)
		}
	case tea.MouseMsg:
		if m.pane.open && msg.X >= m.viewport.Width {
			m.pane.viewport, cmd = m.pane.viewport.Update(msg)
		} else {
			m.viewport, cmd = m.viewport.Update(msg)
		}
	default:
		if m.link.active {
			m.link, cmd = m.link.update(msg)
		}
	}
	m.commit()
	return m, cmd
}

// commit runs after every message: queued continuations are stamped against
// the committed split, then decorations, the preview and the host are
// brought up to date.
func (m *Model) commit() {
	if m.doc == nil {
		return
	}
	m.engine.Drain(m.doc)

	b := m.doc.Buffer()
	ver, textVer, cur := b.Version(), b.TextVersion(), b.Cursor()
	if ver == m.lastBufVersion && cur == m.lastCursor {
		return
	}
	textChanged := textVer != m.lastTextVersion
	m.lastBufVersion = ver
	m.lastTextVersion = textVer
	m.lastCursor = cur

	if textChanged {
		m.doc.Sync()
		if m.pane.open {
			m.refreshPreview()
		}
	}
	if m.cfg.OnChange != nil {
		m.cfg.OnChange(m.buildChangeEvent())
	}
	m.rebuildContent()
	m.followCursor()
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.doc == nil {
		return m, nil
	}
	b := m.doc.Buffer()
	ro := m.cfg.ReadOnly

	// Paste events should always insert literal text and never trigger shortcuts.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		if !ro {
			b.InsertText(normalizeNewlines(string(msg.Runes)))
		}
		return m, nil
	}

	km := m.cfg.KeyMap
	if id, ok := km.toolbarCommand(msg); ok {
		return m.runToolbar(id)
	}

	switch {
	case key.Matches(msg, km.Left):
		b.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft})
	case key.Matches(msg, km.Right):
		if ro || !command.MarkerPad(m.doc) {
			b.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight})
		}
	case key.Matches(msg, km.Up):
		b.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp})
	case key.Matches(msg, km.Down):
		b.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown})

	case key.Matches(msg, km.ShiftLeft):
		b.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirLeft, Extend: true})
	case key.Matches(msg, km.ShiftRight):
		b.Move(buffer.Move{Unit: buffer.MoveGrapheme, Dir: buffer.DirRight, Extend: true})
	case key.Matches(msg, km.ShiftUp):
		b.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirUp, Extend: true})
	case key.Matches(msg, km.ShiftDown):
		b.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirDown, Extend: true})

	case key.Matches(msg, km.WordLeft):
		b.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirLeft})
	case key.Matches(msg, km.WordRight):
		b.Move(buffer.Move{Unit: buffer.MoveWord, Dir: buffer.DirRight})

	case key.Matches(msg, km.Home):
		b.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirHome})
	case key.Matches(msg, km.End):
		b.Move(buffer.Move{Unit: buffer.MoveLine, Dir: buffer.DirEnd})
	case key.Matches(msg, km.DocStart):
		b.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirHome})
	case key.Matches(msg, km.DocEnd):
		b.Move(buffer.Move{Unit: buffer.MoveDoc, Dir: buffer.DirEnd})

	case key.Matches(msg, km.Backspace):
		if !ro {
			b.DeleteBackward()
		}
	case key.Matches(msg, km.Delete):
		if !ro {
			b.DeleteForward()
		}
	case key.Matches(msg, km.Enter):
		if !ro {
			m.engine.Split(m.doc, b.InsertNewline)
		}
	case key.Matches(msg, km.Tab):
		if !ro {
			command.TabHighlight(m.doc)
		}

	case key.Matches(msg, km.Undo):
		if !ro {
			_ = b.Undo()
		}
	case key.Matches(msg, km.Redo):
		if !ro {
			_ = b.Redo()
		}

	case key.Matches(msg, km.Copy):
		m.copySelection()
	case key.Matches(msg, km.Cut):
		if !ro {
			m.cutSelection()
		} else {
			m.copySelection()
		}
	case key.Matches(msg, km.Paste):
		if !ro {
			m.pasteClipboard()
		}
	case key.Matches(msg, km.ClearSelection):
		b.ClearSelection()

	default:
		if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt && !ro {
			b.InsertText(string(msg.Runes))
		} else if msg.Type == tea.KeySpace && !ro {
			b.InsertRune(' ')
		}
	}

	return m, nil
}

func (m Model) runToolbar(id command.ID) (Model, tea.Cmd) {
	switch id {
	case command.Preview:
		m.togglePreview()
		return m, nil
	case command.Link:
		if m.cfg.ReadOnly {
			return m, nil
		}
		return m.openLinkForm()
	}
	if m.cfg.ReadOnly {
		return m, nil
	}
	m.runner.Run(id, m.doc)
	return m, nil
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status = msg
	m.statusErr = isErr
}

func (m Model) copySelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.doc.SelectedText()
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
}

func (m Model) cutSelection() {
	if m.cfg.Clipboard == nil {
		return
	}
	s := m.doc.SelectedText()
	if s == "" {
		return
	}
	_ = m.cfg.Clipboard.WriteText(s)
	m.doc.Buffer().DeleteSelection()
}

func (m Model) pasteClipboard() {
	if m.cfg.Clipboard == nil {
		return
	}
	s, err := m.cfg.Clipboard.ReadText()
	if err != nil || s == "" {
		return
	}
	m.doc.Buffer().InsertText(normalizeNewlines(s))
}

// normalizeNewlines converts newlines from external sources.
func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
