package command

import (
	"strings"

	"github.com/iw2rmb/markline/buffer"
	"github.com/iw2rmb/markline/markup"
	"github.com/iw2rmb/markline/surface"
)

// ToggleHeading toggles a heading of level on the cursor line. The line is
// trimmed; an existing heading of another level is replaced. The cursor ends
// up at the end of the line.
func ToggleHeading(doc surface.Doc, level int) bool {
	prefix := markup.HeadingPrefix(level)
	if prefix == "" {
		return false
	}

	row := doc.Cursor().Row
	line := strings.TrimSpace(doc.Line(row))

	var next string
	if strings.HasPrefix(line, prefix) {
		next = strings.TrimSpace(line[len(prefix):])
	} else {
		next = prefix + markup.StripHeading(line)
	}

	doc.ReplaceLine(row, next)
	doc.SetCursor(buffer.Pos{Row: row, Col: runeLen(next)})
	doc.Sync()
	return true
}
