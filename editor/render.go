package editor

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/markline/buffer"
	graphemeutil "github.com/iw2rmb/markline/internal/grapheme"
)

func (m *Model) renderContent() string {
	if m.doc == nil {
		return ""
	}
	b := m.doc.Buffer()

	n := b.LineCount()
	cursor := b.Cursor()
	sel, selOK := b.Selection()
	digitCount := 0
	if m.cfg.ShowLineNums {
		digitCount = gutterDigits(n)
	}
	width := m.contentWidth(n)

	out := make([]string, 0, n)
	for row := 0; row < n; row++ {
		var sb strings.Builder
		if m.cfg.ShowLineNums {
			numStyle := m.cfg.Style.LineNum
			if m.focused && row == cursor.Row {
				numStyle = m.cfg.Style.LineNumActive
			}
			sb.WriteString(numStyle.Render(fmt.Sprintf("%*d", digitCount, row+1)))
			sb.WriteString(m.cfg.Style.Gutter.Render(" "))
		}
		sb.WriteString(m.renderLine(row, b.Line(row), cursor, sel, selOK, width))
		out = append(out, sb.String())
	}
	return strings.Join(out, "\n")
}

// renderLine renders the visible cells [xOffset, xOffset+width) of one row.
// Cursor wins over selection, selection over marks, marks over the line
// background.
func (m *Model) renderLine(row int, line string, cursor buffer.Pos, sel buffer.Range, selOK bool, width int) string {
	st := m.cfg.Style
	lineLen := utf8.RuneCountInString(line)
	ld := m.decorForRow(row, lineLen)

	base := st.Text
	if ld.background {
		base = st.HighlightLine.Inherit(st.Text)
	}

	hasCursor := m.focused && row == cursor.Row
	selStart, selEnd, hasSel := selectionColsForRow(sel, selOK, row, lineLen)

	left := m.xOffset
	right := int(^uint(0) >> 1)
	if width > 0 {
		right = left + width
	}

	var sb strings.Builder
	col, cell := 0, 0
	for _, g := range graphemeutil.Split(line) {
		n := utf8.RuneCountInString(g)
		if g == "\t" {
			g = " "
		}
		w := graphemeutil.Width(g)
		if cell >= left && cell+w <= right {
			style := base
			switch {
			case hasCursor && cursor.Col >= col && cursor.Col < col+n:
				style = st.Cursor
			case hasSel && col < selEnd && col+n > selStart:
				style = st.Selection
			default:
				if sp, ok := spanAt(ld.marks, col); ok {
					style = sp.Style.Inherit(base)
				}
			}
			sb.WriteString(style.Render(g))
		}
		col += n
		cell += w
	}

	// Cursor at EOL is rendered as a 1-cell placeholder space.
	if hasCursor && cursor.Col >= lineLen && cell >= left && cell < right {
		sb.WriteString(st.Cursor.Render(" "))
	}
	return sb.String()
}

func selectionColsForRow(sel buffer.Range, ok bool, row, lineLen int) (start, end int, has bool) {
	if !ok {
		return 0, 0, false
	}
	sel = buffer.NormalizeRange(sel)
	if row < sel.Start.Row || row > sel.End.Row {
		return 0, 0, false
	}
	start, end = 0, lineLen
	if row == sel.Start.Row {
		start = sel.Start.Col
	}
	if row == sel.End.Row {
		end = sel.End.Col
	}
	if end <= start {
		return 0, 0, false
	}
	return start, end, true
}

func gutterDigits(lineCount int) int {
	return len(strconv.Itoa(max(lineCount, 1)))
}

func (m *Model) gutterWidth(lineCount int) int {
	if !m.cfg.ShowLineNums {
		return 0
	}
	return gutterDigits(lineCount) + 1
}

func (m *Model) contentWidth(lineCount int) int {
	w := m.viewport.Width - m.viewport.Style.GetHorizontalFrameSize() - m.gutterWidth(lineCount)
	return max(w, 0)
}

// cursorCell returns the cell offset of the cursor within its line.
func (m *Model) cursorCell() int {
	b := m.doc.Buffer()
	p := b.Cursor()
	runes := []rune(b.Line(p.Row))
	prefix := strings.ReplaceAll(string(runes[:clampInt(p.Col, 0, len(runes))]), "\t", " ")
	return graphemeutil.Width(prefix)
}
