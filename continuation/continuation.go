// Package continuation carries line semantics across a line split: pressing
// Enter inside a heading or a highlight line stamps the same marker onto the
// new line.
//
// A split is handled in two steps. Engine.Split captures the text around the
// cursor and performs the structural split; the stamping task is queued and
// runs when the host drains the engine, after the split has been committed.
package continuation

import (
	"strings"
	"unicode/utf8"

	"github.com/iw2rmb/markline/buffer"
	"github.com/iw2rmb/markline/decor"
	"github.com/iw2rmb/markline/markup"
	"github.com/iw2rmb/markline/surface"
)

// Split is the state of the cursor line captured just before a split.
type Split struct {
	Row    int
	Col    int
	Before string // text left of the cursor
	After  string // text right of the cursor

	// Key is the document version right after the split.
	Key uint64
}

// Result reports which stamp fired for a split. The heading and marker
// grammars differ on their first character, so at most one is set.
type Result struct {
	Heading   bool
	Highlight bool
}

func (r Result) Applied() bool { return r.Heading || r.Highlight }

// Capture records the cursor line of doc. It reports false while a selection
// is active, since the split then replaces text rather than dividing a line.
func Capture(doc surface.Doc) (Split, bool) {
	if _, ok := doc.Selection(); ok {
		return Split{}, false
	}
	p := doc.Cursor()
	line := []rune(doc.Line(p.Row))
	col := min(max(p.Col, 0), len(line))
	return Split{
		Row:    p.Row,
		Col:    col,
		Before: string(line[:col]),
		After:  string(line[col:]),
	}, true
}

// Apply stamps the line created by s. It expects doc to be in the state the
// split left it in; a split whose new row is gone is a no-op.
func Apply(doc surface.Doc, s Split) Result {
	row := s.Row + 1
	if row >= doc.LineCount() {
		return Result{}
	}

	var res Result
	rest := strings.TrimSpace(s.After)

	if lvl := markup.HeadingLevelOf(s.Before); lvl > 0 {
		prefix := markup.HeadingPrefix(lvl)
		doc.ReplaceLine(row, prefix+rest)
		doc.SetCursor(buffer.Pos{Row: row, Col: utf8.RuneCountInString(prefix)})
		res.Heading = true
	}

	if markup.HasMarker(s.Before) && s.After != "" {
		text := markup.Marker + rest
		doc.ReplaceLine(row, text)
		doc.MarkText(buffer.RowRange(row, 0, utf8.RuneCountInString(text)), decor.ClassHighlight)
		doc.SetCursor(buffer.Pos{Row: row, Col: utf8.RuneCountInString(markup.Marker)})
		res.Highlight = true
	}
	return res
}

// Engine queues stamping tasks for splits and runs them on Drain.
type Engine struct {
	queue Queue

	// OnApply, if set, observes every task that ran.
	OnApply func(Split, Result)
}

// Split captures the cursor line of doc, runs perform (which must split the
// line) and queues the stamping task. It reports whether a task was queued.
func (e *Engine) Split(doc surface.Doc, perform func()) bool {
	s, ok := Capture(doc)
	before := doc.Version()
	perform()
	if !ok || doc.Version() == before {
		return false
	}
	s.Key = doc.Version()
	return e.queue.Defer(s)
}

// Pending returns the number of queued tasks.
func (e *Engine) Pending() int { return e.queue.Len() }

// Drain runs every queued task against doc and re-syncs its decorations.
// A task whose key no longer matches the document version is dropped: the
// text has moved on since the split.
func (e *Engine) Drain(doc surface.Doc) []Result {
	var out []Result
	e.queue.Drain(func(s Split) {
		if doc.Version() != s.Key {
			return
		}
		res := Apply(doc, s)
		out = append(out, res)
		if e.OnApply != nil {
			e.OnApply(s, res)
		}
	})
	if len(out) > 0 {
		doc.Sync()
	}
	return out
}

// Queue holds splits waiting to be stamped. Each key fires at most once.
type Queue struct {
	pending []Split
	fired   uint64
}

// Defer queues s unless a task with the same key is pending or has fired.
func (q *Queue) Defer(s Split) bool {
	if s.Key <= q.fired {
		return false
	}
	for _, p := range q.pending {
		if p.Key == s.Key {
			return false
		}
	}
	q.pending = append(q.pending, s)
	return true
}

func (q *Queue) Len() int { return len(q.pending) }

// Drain hands every pending split to fn in queue order and empties the queue.
func (q *Queue) Drain(fn func(Split)) {
	tasks := q.pending
	q.pending = nil
	for _, s := range tasks {
		if s.Key <= q.fired {
			continue
		}
		q.fired = s.Key
		fn(s)
	}
}
