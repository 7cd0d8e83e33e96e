// Package command implements the toolbar commands of markline: span
// wrapping, heading and highlight toggles, list prefixes, snippet and link
// insertion, and the active-state query the toolbar is drawn from.
//
// Commands operate on a surface.Doc, report whether they changed anything,
// and are no-ops when their preconditions do not hold.
package command

import (
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/markline/buffer"
	"github.com/iw2rmb/markline/surface"
)

// Span markers.
const (
	BoldMarker   = "**"
	ItalicMarker = "*"
	CodeMarker   = "``"
	StrikeMarker = "~~"
)

// ToggleSpan wraps the selection in marker, or unwraps it when the selected
// text is already wrapped. The content between the markers stays selected.
// With nothing selected a pair of markers is inserted and the cursor placed
// between them.
func ToggleSpan(doc surface.Doc, marker string) bool {
	if marker == "" {
		return false
	}
	m := utf8.RuneCountInString(marker)

	r, ok := doc.Selection()
	if !ok {
		p := doc.Cursor()
		doc.ReplaceRange(buffer.Range{Start: p, End: p}, marker+marker)
		doc.SetCursor(buffer.Pos{Row: p.Row, Col: p.Col + m})
		doc.Sync()
		return true
	}

	sel := doc.SelectedText()
	if isWrapped(sel, marker) {
		inner := sel[len(marker) : len(sel)-len(marker)]
		doc.ReplaceRange(r, inner)
		doc.SetSelection(buffer.Range{Start: r.Start, End: endOf(r.Start, inner)})
		doc.Sync()
		return true
	}

	doc.ReplaceRange(r, marker+sel+marker)
	start := buffer.Pos{Row: r.Start.Row, Col: r.Start.Col + m}
	doc.SetSelection(buffer.Range{Start: start, End: endOf(start, sel)})
	doc.Sync()
	return true
}

func isWrapped(s, marker string) bool {
	return len(s) >= 2*len(marker) && strings.HasPrefix(s, marker) && strings.HasSuffix(s, marker)
}

// endOf returns the position just past text when it is inserted at start.
func endOf(start buffer.Pos, text string) buffer.Pos {
	i := strings.LastIndexByte(text, '\n')
	if i < 0 {
		return buffer.Pos{Row: start.Row, Col: start.Col + utf8.RuneCountInString(text)}
	}
	return buffer.Pos{
		Row: start.Row + strings.Count(text, "\n"),
		Col: utf8.RuneCountInString(text[i+1:]),
	}
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }
