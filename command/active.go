package command

import (
	"regexp"
	"strings"

	"github.com/iw2rmb/markline/markup"
	"github.com/iw2rmb/markline/surface"
)

// Set is a set of command ids.
type Set map[ID]bool

func (s Set) Has(id ID) bool { return s[id] }

var (
	reBoldSel   = regexp.MustCompile(`^\*\*.*\*\*$`)
	reItalicSel = regexp.MustCompile(`^\*[^*]+\*$`)
	reCodeSel   = regexp.MustCompile("^``.*``$")
	reStrikeSel = regexp.MustCompile(`^~~.*~~$`)
	reMarkerWS  = regexp.MustCompile(`^->\s`)
)

// Active returns the commands whose formatting applies at the cursor: span
// commands when the selection is wrapped in their marker or the cursor sits
// inside such a span, and line commands from the cursor line's prefix.
func Active(doc surface.Doc) Set {
	out := make(Set)

	sel := doc.SelectedText()
	if reBoldSel.MatchString(sel) {
		out[Bold] = true
	}
	if reItalicSel.MatchString(sel) {
		out[Italic] = true
	}
	if reCodeSel.MatchString(sel) {
		out[Code] = true
	}
	if reStrikeSel.MatchString(sel) {
		out[Strikethrough] = true
	}

	p := doc.Cursor()
	raw := doc.Line(p.Row)
	if insideSpan(raw, p.Col, BoldMarker) {
		out[Bold] = true
	}
	if insideSpan(raw, p.Col, ItalicMarker) {
		out[Italic] = true
	}
	if insideSpan(raw, p.Col, StrikeMarker) {
		out[Strikethrough] = true
	}

	line := strings.TrimSpace(raw)
	if reMarkerWS.MatchString(line) {
		out[Highlight] = true
	}
	if markup.IsBulletItem(line) {
		out[UnorderedList] = true
	}
	if markup.IsOrderedItem(line) {
		out[OrderedList] = true
	}
	if lvl := markup.HeadingLevelOf(line); lvl > 0 {
		out[HeadingID(lvl)] = true
	}
	return out
}

// insideSpan reports whether col lies between an opening and a closing
// occurrence of marker on line. A lone "*" next to another "*" belongs to a
// bold marker and does not count for italics.
func insideSpan(line string, col int, marker string) bool {
	runes := []rune(line)
	m := []rune(marker)
	open := -1
	for i := 0; i+len(m) <= len(runes); {
		if !matchAt(runes, i, m) || (marker == ItalicMarker && starRun(runes, i)) {
			i++
			continue
		}
		if open < 0 {
			open = i + len(m)
		} else {
			if col >= open && col <= i {
				return true
			}
			open = -1
		}
		i += len(m)
	}
	return false
}

func matchAt(runes []rune, i int, m []rune) bool {
	for j, r := range m {
		if runes[i+j] != r {
			return false
		}
	}
	return true
}

func starRun(runes []rune, i int) bool {
	return (i > 0 && runes[i-1] == '*') || (i+1 < len(runes) && runes[i+1] == '*')
}
