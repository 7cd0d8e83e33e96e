package editor

import (
	"github.com/iw2rmb/markline/buffer"
	"github.com/iw2rmb/markline/command"
)

type ChangeEvent struct {
	Version   uint64
	Cursor    buffer.Pos
	Selection struct {
		Range  buffer.Range
		Active bool
	}

	// Text is the full document; hosts can diff if needed.
	Text string

	// Active is the toolbar state at the cursor after the change.
	Active command.Set

	CanUndo, CanRedo bool
}

func (m *Model) buildChangeEvent() ChangeEvent {
	b := m.doc.Buffer()
	ev := ChangeEvent{
		Version: b.TextVersion(),
		Cursor:  b.Cursor(),
		Text:    b.Text(),
		Active:  command.Active(m.doc),
		CanUndo: b.CanUndo(),
		CanRedo: b.CanRedo(),
	}
	if r, ok := b.Selection(); ok {
		ev.Selection.Active = true
		ev.Selection.Range = r
	}
	return ev
}
