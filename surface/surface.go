// Package surface defines the editing capability the markline core works
// against, and binds it to a buffer and a decoration set.
package surface

import (
	"github.com/iw2rmb/markline/buffer"
	"github.com/iw2rmb/markline/decor"
)

// Doc is a text document with a cursor, a selection and decorations.
// Continuations and toggle commands only ever see a Doc.
type Doc interface {
	LineCount() int
	Line(row int) string
	Text() string

	// Version increments every time the text changes.
	Version() uint64

	Cursor() buffer.Pos
	SetCursor(p buffer.Pos)
	Selection() (buffer.Range, bool)
	SetSelection(r buffer.Range)
	SelectedText() string

	ReplaceRange(r buffer.Range, text string)
	ReplaceSelection(text string)
	ReplaceLine(row int, text string)
	// Apply runs edits as a single undo step.
	Apply(edits ...buffer.TextEdit)

	AddLineClass(row int, class string)
	RemoveLineClass(row int, class string)
	MarkText(r buffer.Range, class string)
	FindMarks(r buffer.Range) []decor.Decoration
	ClearMarks(r buffer.Range) int

	// Sync reconciles decorations with the current text.
	Sync()
}

// Binding implements Doc over a buffer and a decoration set.
type Binding struct {
	buf *buffer.Buffer
	set *decor.Set
}

var _ Doc = (*Binding)(nil)

// New creates a buffer holding text and a decoration set that follows it.
// The buffer's change hook shifts decorations before opt.OnChange runs.
func New(text string, opt buffer.Options) *Binding {
	set := decor.NewSet()
	next := opt.OnChange
	opt.OnChange = func(ch buffer.Change) {
		if ch.TextChanged() {
			set.Shift(ch)
		}
		if next != nil {
			next(ch)
		}
	}
	b := Bind(buffer.New(text, opt), set)
	b.Sync()
	return b
}

// Bind wraps an existing buffer and set. The caller is responsible for
// shifting set on buffer changes.
func Bind(buf *buffer.Buffer, set *decor.Set) *Binding {
	return &Binding{buf: buf, set: set}
}

func (b *Binding) Buffer() *buffer.Buffer  { return b.buf }
func (b *Binding) Decorations() *decor.Set { return b.set }

func (b *Binding) LineCount() int         { return b.buf.LineCount() }
func (b *Binding) Line(row int) string    { return b.buf.Line(row) }
func (b *Binding) Text() string           { return b.buf.Text() }
func (b *Binding) Version() uint64        { return b.buf.TextVersion() }
func (b *Binding) Cursor() buffer.Pos     { return b.buf.Cursor() }
func (b *Binding) SetCursor(p buffer.Pos) { b.buf.SetCursor(p) }

func (b *Binding) Selection() (buffer.Range, bool) { return b.buf.Selection() }
func (b *Binding) SetSelection(r buffer.Range)     { b.buf.SetSelection(r) }
func (b *Binding) SelectedText() string            { return b.buf.SelectedText() }

func (b *Binding) ReplaceRange(r buffer.Range, text string) { b.buf.ReplaceRange(r, text) }
func (b *Binding) ReplaceSelection(text string)             { b.buf.ReplaceSelection(text) }
func (b *Binding) ReplaceLine(row int, text string)         { b.buf.ReplaceLine(row, text) }
func (b *Binding) Apply(edits ...buffer.TextEdit)           { b.buf.Apply(edits...) }

func (b *Binding) AddLineClass(row int, class string) {
	if row < 0 || row >= b.buf.LineCount() {
		return
	}
	b.set.AddLineClass(row, class, b.buf.Line(row))
}

func (b *Binding) RemoveLineClass(row int, class string) { b.set.RemoveLineClass(row, class) }

func (b *Binding) MarkText(r buffer.Range, class string) {
	b.set.MarkText(r, class, b.buf)
}

func (b *Binding) FindMarks(r buffer.Range) []decor.Decoration { return b.set.FindMarks(r) }
func (b *Binding) ClearMarks(r buffer.Range) int               { return b.set.ClearMarks(r) }

func (b *Binding) Sync() { b.set.Sync(b.buf) }
