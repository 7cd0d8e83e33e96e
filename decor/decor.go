// Package decor holds the visual decorations of a document and keeps them in
// step with its text.
//
// Decorations come from two places. Derived decorations are a projection of
// each line's markup classification and are rebuilt by Sync. Command
// decorations are applied explicitly (by a toggle command or a continuation)
// and carry a stamp of the line text they were applied to; Sync drops them as
// soon as that line's text changes.
package decor

import (
	"slices"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/iw2rmb/markline/buffer"
	"github.com/iw2rmb/markline/markup"
)

// Class names applied by the synchronizer.
const (
	ClassHighlightedLine = "highlighted-line"
	ClassHighlight       = "cm-highlight"
)

// Kind distinguishes whole-line background classes from inline range marks.
type Kind uint8

const (
	Background Kind = iota
	InlineMark
)

// Origin records who owns a decoration.
type Origin uint8

const (
	Derived Origin = iota
	Command
)

// Decoration is one visual annotation over a single row.
type Decoration struct {
	Row    int
	Kind   Kind
	Range  buffer.Range
	Class  string
	Origin Origin
	Stamp  string
}

// LineSource is the read side of a document. *buffer.Buffer satisfies it.
type LineSource interface {
	LineCount() int
	Line(row int) string
}

// Set is the decoration state of one document.
type Set struct {
	rows map[int][]Decoration
}

func NewSet() *Set {
	return &Set{rows: make(map[int][]Decoration)}
}

// Project returns the derived decorations the classification of text
// predicts for row.
func Project(row int, text string) []Decoration {
	class := markup.Classify(text)
	if !class.Decorated() {
		return nil
	}
	n := utf8.RuneCountInString(text)
	out := []Decoration{{
		Row:   row,
		Kind:  Background,
		Range: buffer.RowRange(row, 0, n),
		Class: ClassHighlightedLine,
		Stamp: text,
	}}
	if class.Kind != markup.Highlight {
		return out
	}
	indent := utf8.RuneCountInString(text) - utf8.RuneCountInString(strings.TrimLeftFunc(text, unicode.IsSpace))
	start := indent + utf8.RuneCountInString(markup.Marker)
	if start < n {
		out = append(out, Decoration{
			Row:   row,
			Kind:  InlineMark,
			Range: buffer.RowRange(row, start, n),
			Class: ClassHighlight,
			Stamp: text,
		})
	}
	return out
}

// Sync reconciles the set with src: for every row, derived decorations are
// cleared and recomputed from the row's current text, and command decorations
// whose stamp no longer matches are dropped. Rows past the end of src lose
// all decorations. Sync never touches text and is idempotent.
func (s *Set) Sync(src LineSource) {
	count := src.LineCount()
	for row := range s.rows {
		if row < 0 || row >= count {
			delete(s.rows, row)
		}
	}
	for row := 0; row < count; row++ {
		s.syncRow(row, src.Line(row))
	}
}

// SyncRow reconciles a single row against text.
func (s *Set) SyncRow(row int, text string) {
	s.syncRow(row, text)
}

func (s *Set) syncRow(row int, text string) {
	next := Project(row, text)
	for _, d := range s.rows[row] {
		if d.Origin == Command && d.Stamp == text {
			next = append(next, d)
		}
	}
	if len(next) == 0 {
		delete(s.rows, row)
		return
	}
	s.rows[row] = next
}

// Shift moves decorations to follow the line structure of a committed
// change. Rows below an edit move by its line delta; rows swallowed by an
// edit are dropped. A pure insertion of lines at column 0 pushes its own row
// down as well. Undo and redo report whole-document edits, which drop every
// row but the first.
func (s *Set) Shift(ch buffer.Change) {
	for _, e := range ch.AppliedEdits {
		delta := e.LineDelta()
		start, end := e.RangeBefore.Start.Row, e.RangeBefore.End.Row
		if delta == 0 && start == end {
			continue
		}
		pushed := delta > 0 && e.RangeBefore.IsEmpty() && e.RangeBefore.Start.Col == 0
		next := make(map[int][]Decoration, len(s.rows))
		for row, ds := range s.rows {
			switch {
			case row == start && pushed:
				next[row+delta] = moveRow(ds, row+delta)
			case row <= start:
				next[row] = ds
			case row <= end:
				// Replaced by the edit.
			default:
				next[row+delta] = moveRow(ds, row+delta)
			}
		}
		s.rows = next
	}
}

func moveRow(ds []Decoration, row int) []Decoration {
	out := make([]Decoration, len(ds))
	for i, d := range ds {
		d.Row = row
		d.Range.Start.Row = row
		d.Range.End.Row = row
		out[i] = d
	}
	return out
}

// AddLineClass adds a command background class to row. stamp is the row's
// current text.
func (s *Set) AddLineClass(row int, class, stamp string) {
	for _, d := range s.rows[row] {
		if d.Kind == Background && d.Class == class {
			return
		}
	}
	s.rows[row] = append(s.rows[row], Decoration{
		Row:    row,
		Kind:   Background,
		Range:  buffer.RowRange(row, 0, utf8.RuneCountInString(stamp)),
		Class:  class,
		Origin: Command,
		Stamp:  stamp,
	})
}

// RemoveLineClass removes every background class named class from row.
func (s *Set) RemoveLineClass(row int, class string) {
	s.filterRow(row, func(d Decoration) bool {
		return d.Kind == Background && d.Class == class
	})
}

// Mark adds a command inline mark over cols [startCol, endCol) of row.
// Empty spans are ignored.
func (s *Set) Mark(row, startCol, endCol int, class, stamp string) {
	if endCol <= startCol {
		return
	}
	s.rows[row] = append(s.rows[row], Decoration{
		Row:    row,
		Kind:   InlineMark,
		Range:  buffer.RowRange(row, startCol, endCol),
		Class:  class,
		Origin: Command,
		Stamp:  stamp,
	})
}

// MarkText marks r, splitting it per row. Each row's mark is stamped with
// that row's current text in lines.
func (s *Set) MarkText(r buffer.Range, class string, lines LineSource) {
	r = buffer.NormalizeRange(r)
	for row := r.Start.Row; row <= r.End.Row && row < lines.LineCount(); row++ {
		text := lines.Line(row)
		start, end := 0, utf8.RuneCountInString(text)
		if row == r.Start.Row {
			start = r.Start.Col
		}
		if row == r.End.Row {
			end = min(end, r.End.Col)
		}
		s.Mark(row, start, end, class, text)
	}
}

// FindMarks returns the inline marks overlapping r, in document order.
func (s *Set) FindMarks(r buffer.Range) []Decoration {
	r = buffer.NormalizeRange(r)
	var out []Decoration
	for row := r.Start.Row; row <= r.End.Row; row++ {
		for _, d := range s.rows[row] {
			if d.Kind == InlineMark && d.Range.Overlaps(r) {
				out = append(out, d)
			}
		}
	}
	sortDecorations(out)
	return out
}

// ClearMarks removes the inline marks overlapping r and reports how many
// were removed.
func (s *Set) ClearMarks(r buffer.Range) int {
	r = buffer.NormalizeRange(r)
	removed := 0
	for row := r.Start.Row; row <= r.End.Row; row++ {
		removed += s.filterRow(row, func(d Decoration) bool {
			return d.Kind == InlineMark && d.Range.Overlaps(r)
		})
	}
	return removed
}

func (s *Set) filterRow(row int, drop func(Decoration) bool) int {
	ds, ok := s.rows[row]
	if !ok {
		return 0
	}
	kept := ds[:0:0]
	for _, d := range ds {
		if !drop(d) {
			kept = append(kept, d)
		}
	}
	removed := len(ds) - len(kept)
	if len(kept) == 0 {
		delete(s.rows, row)
	} else {
		s.rows[row] = kept
	}
	return removed
}

// ForRow returns the decorations of row.
func (s *Set) ForRow(row int) []Decoration {
	return slices.Clone(s.rows[row])
}

// HasClass reports whether row carries a background class named class.
func (s *Set) HasClass(row int, class string) bool {
	for _, d := range s.rows[row] {
		if d.Kind == Background && d.Class == class {
			return true
		}
	}
	return false
}

// All returns every decoration ordered by row, then column.
func (s *Set) All() []Decoration {
	var out []Decoration
	for _, ds := range s.rows {
		out = append(out, ds...)
	}
	sortDecorations(out)
	return out
}

func (s *Set) Len() int {
	n := 0
	for _, ds := range s.rows {
		n += len(ds)
	}
	return n
}

// Equal reports whether s and o hold the same decorations in the same
// per-row order.
func (s *Set) Equal(o *Set) bool {
	if len(s.rows) != len(o.rows) {
		return false
	}
	for row, ds := range s.rows {
		if !slices.Equal(ds, o.rows[row]) {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of s.
func (s *Set) Clone() *Set {
	out := NewSet()
	for row, ds := range s.rows {
		out.rows[row] = slices.Clone(ds)
	}
	return out
}

func sortDecorations(ds []Decoration) {
	sort.SliceStable(ds, func(i, j int) bool {
		if ds[i].Row != ds[j].Row {
			return ds[i].Row < ds[j].Row
		}
		if ds[i].Kind != ds[j].Kind {
			return ds[i].Kind < ds[j].Kind
		}
		return buffer.ComparePos(ds[i].Range.Start, ds[j].Range.Start) < 0
	})
}
