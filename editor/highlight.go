package editor

import (
	"sort"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/markline/decor"
)

type HighlightSpan struct {
	// StartCol and EndCol are rune indices in the line text, half-open
	// [StartCol, EndCol).
	StartCol int
	EndCol   int
	Style    lipgloss.Style
}

// lineDecor is the render-ready decoration state of one row.
type lineDecor struct {
	background bool
	marks      []HighlightSpan
}

func (m *Model) decorForRow(row, lineLen int) lineDecor {
	var ld lineDecor
	var spans []HighlightSpan
	for _, d := range m.doc.Decorations().ForRow(row) {
		switch d.Kind {
		case decor.Background:
			if d.Class == decor.ClassHighlightedLine {
				ld.background = true
			}
		case decor.InlineMark:
			st, ok := m.markStyle(d.Class)
			if !ok {
				continue
			}
			spans = append(spans, HighlightSpan{StartCol: d.Range.Start.Col, EndCol: d.Range.End.Col, Style: st})
		}
	}
	ld.marks = normalizeHighlightSpans(spans, lineLen)
	return ld
}

func (m *Model) markStyle(class string) (lipgloss.Style, bool) {
	switch class {
	case decor.ClassHighlight:
		return m.cfg.Style.HighlightMark, true
	default:
		return lipgloss.Style{}, false
	}
}

func spanAt(spans []HighlightSpan, col int) (HighlightSpan, bool) {
	for _, sp := range spans {
		if col >= sp.StartCol && col < sp.EndCol {
			return sp, true
		}
	}
	return HighlightSpan{}, false
}

func normalizeHighlightSpans(spans []HighlightSpan, lineLen int) []HighlightSpan {
	if len(spans) == 0 {
		return nil
	}
	lineLen = max(lineLen, 0)

	out := make([]HighlightSpan, 0, len(spans))
	for _, sp := range spans {
		start := clampInt(sp.StartCol, 0, lineLen)
		end := clampInt(sp.EndCol, 0, lineLen)
		if end < start {
			start, end = end, start
		}
		if start == end {
			continue
		}
		out = append(out, HighlightSpan{StartCol: start, EndCol: end, Style: sp.Style})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].StartCol != out[j].StartCol {
			return out[i].StartCol < out[j].StartCol
		}
		return out[i].EndCol > out[j].EndCol
	})

	// Overlapping spans are dropped; the earliest, widest one wins.
	merged := make([]HighlightSpan, 0, len(out))
	for _, sp := range out {
		if len(merged) > 0 && sp.StartCol < merged[len(merged)-1].EndCol {
			continue
		}
		merged = append(merged, sp)
	}
	return merged
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	return min(max(v, lo), hi)
}
