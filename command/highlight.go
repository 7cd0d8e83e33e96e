package command

import (
	"strings"

	"github.com/iw2rmb/markline/buffer"
	"github.com/iw2rmb/markline/decor"
	"github.com/iw2rmb/markline/markup"
	"github.com/iw2rmb/markline/surface"
)

// ToggleHighlight toggles the highlight marker.
//
// With a selection, the selected text gains or loses a leading marker and the
// marks over it are added or cleared. Without one, the cursor counts as
// inside a highlight when a marker starts at or before it on the line; the
// line's leading marker is then stripped, otherwise one is added at the
// start of the line.
func ToggleHighlight(doc surface.Doc) bool {
	if r, ok := doc.Selection(); ok {
		sel := doc.SelectedText()
		if inner, ok := markup.StripMarker(sel); ok {
			doc.ReplaceRange(r, inner)
			doc.ClearMarks(buffer.Range{Start: r.Start, End: endOf(r.Start, inner)})
		} else {
			text := markup.Marker + sel
			doc.ReplaceRange(r, text)
			doc.MarkText(buffer.Range{Start: r.Start, End: endOf(r.Start, text)}, decor.ClassHighlight)
		}
		doc.Sync()
		return true
	}

	p := doc.Cursor()
	if markerBefore(doc.Line(p.Row), p.Col) {
		if !removeLineMarker(doc, p.Row) {
			return false
		}
	} else {
		addLineMarker(doc, p.Row)
	}
	doc.Sync()
	return true
}

// TabHighlight is the line-start variant bound to Tab: it strips the marker
// when the cursor line starts with one and adds it otherwise.
func TabHighlight(doc surface.Doc) bool {
	row := doc.Cursor().Row
	if markup.HasMarker(doc.Line(row)) {
		removeLineMarker(doc, row)
	} else {
		addLineMarker(doc, row)
	}
	doc.Sync()
	return true
}

// MarkerPad inserts a space when the cursor sits at the end of a line that
// ends in the marker, so the marker is followed by text-ready padding.
func MarkerPad(doc surface.Doc) bool {
	p := doc.Cursor()
	line := []rune(doc.Line(p.Row))
	m := runeLen(markup.Marker)
	if p.Col < m || p.Col != len(line) || string(line[p.Col-m:p.Col]) != markup.Marker {
		return false
	}
	doc.ReplaceRange(buffer.Range{Start: p, End: p}, " ")
	doc.Sync()
	return true
}

// markerBefore reports whether a marker starts at or before col on line.
func markerBefore(line string, col int) bool {
	runes := []rune(line)
	end := min(col+runeLen(markup.Marker), len(runes))
	if end < 0 {
		return false
	}
	return strings.Contains(string(runes[:end]), markup.Marker)
}

func addLineMarker(doc surface.Doc, row int) {
	n := runeLen(doc.Line(row))
	doc.ReplaceRange(buffer.RowRange(row, 0, 0), markup.Marker)
	end := n + runeLen(markup.Marker)
	doc.MarkText(buffer.RowRange(row, 0, end), decor.ClassHighlight)
	doc.SetCursor(buffer.Pos{Row: row, Col: end})
}

// removeLineMarker strips the marker that starts row. A marker further into
// the line is left alone and nothing changes.
func removeLineMarker(doc surface.Doc, row int) bool {
	next, ok := markup.StripMarker(doc.Line(row))
	if !ok {
		return false
	}
	doc.ReplaceLine(row, next)
	doc.ClearMarks(buffer.RowRange(row, 0, runeLen(next)))
	doc.SetCursor(buffer.Pos{Row: row})
	return true
}
