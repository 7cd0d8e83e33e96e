package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/markline/command"
)

// KeyMap defines the editor key bindings.
//
// Bindings must be portable across terminals (ctrl/alt fallbacks).
type KeyMap struct {
	Left, Right, Up, Down                     key.Binding
	ShiftLeft, ShiftRight, ShiftUp, ShiftDown key.Binding
	WordLeft, WordRight                       key.Binding
	Home, End                                 key.Binding
	DocStart, DocEnd                          key.Binding

	Backspace, Delete key.Binding
	Enter             key.Binding
	Tab               key.Binding

	Undo, Redo       key.Binding
	Copy, Cut, Paste key.Binding
	ClearSelection   key.Binding

	// Toolbar maps toolbar command ids to their shortcuts.
	Toolbar map[command.ID]key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "left")),
		Right: key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "right")),
		Up:    key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "up")),
		Down:  key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "down")),

		ShiftLeft:  key.NewBinding(key.WithKeys("shift+left"), key.WithHelp("shift+←", "select left")),
		ShiftRight: key.NewBinding(key.WithKeys("shift+right"), key.WithHelp("shift+→", "select right")),
		ShiftUp:    key.NewBinding(key.WithKeys("shift+up"), key.WithHelp("shift+↑", "select up")),
		ShiftDown:  key.NewBinding(key.WithKeys("shift+down"), key.WithHelp("shift+↓", "select down")),

		// Portable word movement: terminals vary between alt+arrows and ctrl+arrows.
		WordLeft:  key.NewBinding(key.WithKeys("alt+left", "ctrl+left"), key.WithHelp("alt/ctrl+←", "word left")),
		WordRight: key.NewBinding(key.WithKeys("alt+right", "ctrl+right"), key.WithHelp("alt/ctrl+→", "word right")),

		Home:     key.NewBinding(key.WithKeys("home", "ctrl+a"), key.WithHelp("home", "line start")),
		End:      key.NewBinding(key.WithKeys("end", "ctrl+e"), key.WithHelp("end", "line end")),
		DocStart: key.NewBinding(key.WithKeys("ctrl+home"), key.WithHelp("ctrl+home", "document start")),
		DocEnd:   key.NewBinding(key.WithKeys("ctrl+end"), key.WithHelp("ctrl+end", "document end")),

		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h"), key.WithHelp("backspace", "delete left")),
		Delete:    key.NewBinding(key.WithKeys("delete"), key.WithHelp("del", "delete right")),
		Enter:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "newline")),
		Tab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "toggle highlight")),

		Undo: key.NewBinding(key.WithKeys("ctrl+z"), key.WithHelp("ctrl+z", "undo")),
		Redo: key.NewBinding(key.WithKeys("ctrl+y", "ctrl+shift+z"), key.WithHelp("ctrl+y", "redo")),

		Copy:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "copy")),
		Cut:   key.NewBinding(key.WithKeys("ctrl+x"), key.WithHelp("ctrl+x", "cut")),
		Paste: key.NewBinding(key.WithKeys("ctrl+v"), key.WithHelp("ctrl+v", "paste")),

		ClearSelection: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear selection")),

		Toolbar: DefaultToolbarKeys(),
	}
}

// DefaultToolbarKeys returns the default shortcut of every toolbar command.
func DefaultToolbarKeys() map[command.ID]key.Binding {
	bind := func(k, help string) key.Binding {
		return key.NewBinding(key.WithKeys(k), key.WithHelp(k, help))
	}
	return map[command.ID]key.Binding{
		command.Bold:          bind("ctrl+b", "bold"),
		command.Italic:        bind("alt+i", "italic"),
		command.Heading1:      bind("alt+1", "heading 1"),
		command.Heading2:      bind("alt+2", "heading 2"),
		command.Heading3:      bind("alt+3", "heading 3"),
		command.Heading4:      bind("alt+4", "heading 4"),
		command.Heading5:      bind("alt+5", "heading 5"),
		command.Heading6:      bind("alt+6", "heading 6"),
		command.UnorderedList: bind("alt+u", "generic list"),
		command.OrderedList:   bind("alt+o", "numbered list"),
		command.Preview:       bind("ctrl+p", "toggle preview"),
		command.Link:          bind("ctrl+l", "insert link"),
		command.Code:          bind("alt+c", "code"),
		command.Strikethrough: bind("alt+s", "strikethrough"),
		command.Divider:       bind("alt+d", "insert divider"),
		command.Highlight:     bind("alt+h", "highlight"),
	}
}

// toolbarCommand returns the toolbar command bound to msg. Toolbar order
// decides between overlapping bindings.
func (km KeyMap) toolbarCommand(msg tea.KeyMsg) (command.ID, bool) {
	for _, a := range command.Toolbar() {
		if b, ok := km.Toolbar[a.ID]; ok && key.Matches(msg, b) {
			return a.ID, true
		}
	}
	return "", false
}
