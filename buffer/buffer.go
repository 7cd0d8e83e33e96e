package buffer

import "strings"

type Options struct {
	HistoryLimit int // default: 1000

	// OnChange is called after every effective change, once per
	// transaction, with the committed Change.
	OnChange func(Change)
}

type selectionState struct {
	active bool
	anchor Pos
	end    Pos
}

// Buffer is the pure document state: text, cursor, and selection.
type Buffer struct {
	lines       [][]rune
	version     uint64
	textVersion uint64

	cursor Pos
	sel    selectionState

	opt  Options
	hist historyState

	lastChange    Change
	hasLastChange bool
}

func New(text string, opt Options) *Buffer {
	if opt.HistoryLimit == 0 {
		opt.HistoryLimit = 1000
	}
	return &Buffer{
		lines: splitLines(text),
		opt:   opt,
	}
}

func (b *Buffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Version increments on every effective mutation, including cursor and
// selection moves.
func (b *Buffer) Version() uint64 { return b.version }

// TextVersion increments only when the document text changes.
func (b *Buffer) TextVersion() uint64 { return b.textVersion }

func (b *Buffer) LineCount() int { return len(b.lines) }

// Line returns the text of row, or "" when row is out of range.
func (b *Buffer) Line(row int) string {
	if row < 0 || row >= len(b.lines) {
		return ""
	}
	return string(b.lines[row])
}

// LineLen returns the rune length of row.
func (b *Buffer) LineLen(row int) int { return b.lineLen(row) }

func (b *Buffer) Cursor() Pos { return b.cursor }

func (b *Buffer) SetCursor(p Pos) {
	next := b.clampPos(p)
	if next == b.cursor && !b.sel.active {
		return
	}
	change := b.beginChange()
	b.cursor = next
	b.sel = selectionState{}
	b.version++
	b.commitChange(change)
}

func (b *Buffer) Selection() (Range, bool) {
	if !b.sel.active {
		return Range{}, false
	}
	r := NormalizeRange(Range{Start: b.sel.anchor, End: b.sel.end})
	if r.IsEmpty() {
		return Range{}, false
	}
	return r, true
}

// SetSelection selects r and moves the cursor to its end. An empty r clears
// the selection and places the cursor at r.Start.
func (b *Buffer) SetSelection(r Range) {
	clamped := ClampRange(r, len(b.lines), b.lineLen)
	if clamped.IsEmpty() {
		b.SetCursor(clamped.Start)
		return
	}

	prevRange, prevOK := b.Selection()
	nextRange := NormalizeRange(clamped)
	if prevOK && prevRange == nextRange && b.cursor == clamped.End {
		return
	}

	change := b.beginChange()
	b.sel = selectionState{active: true, anchor: clamped.Start, end: clamped.End}
	b.cursor = clamped.End
	b.version++
	b.commitChange(change)
}

func (b *Buffer) ClearSelection() {
	if _, ok := b.Selection(); !ok {
		b.sel = selectionState{}
		return
	}
	change := b.beginChange()
	b.sel = selectionState{}
	b.version++
	b.commitChange(change)
}

// SelectedText returns the text under the active selection, or "".
func (b *Buffer) SelectedText() string {
	r, ok := b.Selection()
	if !ok {
		return ""
	}
	return textForLinesRange(b.lines, r)
}

// TextInRange returns the text covered by r after clamping.
func (b *Buffer) TextInRange(r Range) string {
	return textForLinesRange(b.lines, NormalizeRange(ClampRange(r, len(b.lines), b.lineLen)))
}

func (b *Buffer) lineLen(row int) int {
	if row < 0 || row >= len(b.lines) {
		return 0
	}
	return len(b.lines[row])
}

func (b *Buffer) clampPos(p Pos) Pos {
	return ClampPos(p, len(b.lines), b.lineLen)
}

func splitLines(text string) [][]rune {
	parts := strings.Split(text, "\n")
	lines := make([][]rune, 0, len(parts))
	for _, s := range parts {
		lines = append(lines, []rune(s))
	}
	return lines
}
