package command

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/iw2rmb/markline/buffer"
	"github.com/iw2rmb/markline/markup"
	"github.com/iw2rmb/markline/surface"
)

var (
	reBulletPrefix  = regexp.MustCompile(`^(\s*)[-*] `)
	reOrderedPrefix = regexp.MustCompile(`^(\s*)\d+\. `)
)

// ToggleUnorderedList toggles a "- " prefix on every selected line, or on
// the cursor line.
func ToggleUnorderedList(doc surface.Doc) bool {
	return toggleList(doc, false)
}

// ToggleOrderedList toggles a numbered prefix ("1. ", "2. ", ...) on every
// selected line, or on the cursor line.
func ToggleOrderedList(doc surface.Doc) bool {
	return toggleList(doc, true)
}

func toggleList(doc surface.Doc, ordered bool) bool {
	first, last := selectedRows(doc)

	// The whole block is stripped when its first line already carries the
	// requested list type.
	is := markup.IsBulletItem
	if ordered {
		is = markup.IsOrderedItem
	}
	strip := is(doc.Line(first))

	// Row edits keep the line count, so every range stays valid while the
	// batch is applied.
	edits := make([]buffer.TextEdit, 0, last-first+1)
	n := 0
	for row := first; row <= last; row++ {
		line := doc.Line(row)
		body := reOrderedPrefix.ReplaceAllString(reBulletPrefix.ReplaceAllString(line, "$1"), "$1")
		next := body
		if !strip {
			n++
			indent := body[:len(body)-len(strings.TrimLeft(body, " \t"))]
			prefix := "- "
			if ordered {
				prefix = strconv.Itoa(n) + ". "
			}
			next = indent + prefix + body[len(indent):]
		}
		edits = append(edits, buffer.TextEdit{Range: buffer.RowRange(row, 0, runeLen(line)), Text: next})
	}
	doc.Apply(edits...)

	doc.SetCursor(buffer.Pos{Row: last, Col: runeLen(doc.Line(last))})
	doc.Sync()
	return true
}

func selectedRows(doc surface.Doc) (int, int) {
	r, ok := doc.Selection()
	if !ok {
		row := doc.Cursor().Row
		return row, row
	}
	last := r.End.Row
	if r.End.Col == 0 && last > r.Start.Row {
		last--
	}
	return r.Start.Row, last
}
