package continuation

import (
	"testing"

	"github.com/iw2rmb/markline/buffer"
	"github.com/iw2rmb/markline/decor"
	"github.com/iw2rmb/markline/surface"
)

func splitAt(t *testing.T, text string, col int) (*surface.Binding, []Result) {
	t.Helper()
	doc := surface.New(text, buffer.Options{})
	doc.SetCursor(buffer.Pos{Row: 0, Col: col})

	var e Engine
	if !e.Split(doc, doc.Buffer().InsertNewline) {
		t.Fatalf("Split did not queue a task")
	}
	return doc, e.Drain(doc)
}

func TestHighlightContinuation(t *testing.T) {
	doc, res := splitAt(t, "-> hello world", len("-> hello "))

	if got, want := doc.Text(), "-> hello \n-> world"; got != want {
		t.Fatalf("Text=%q, want %q", got, want)
	}
	if got, want := len(res), 1; got != want {
		t.Fatalf("results=%d, want %d", got, want)
	}
	if !res[0].Highlight || res[0].Heading {
		t.Fatalf("Result=%+v, want highlight only", res[0])
	}

	var command int
	for _, d := range doc.FindMarks(buffer.RowRange(1, 0, 8)) {
		if d.Origin == decor.Command && d.Range == buffer.RowRange(1, 0, 8) {
			command++
		}
	}
	if got, want := command, 1; got != want {
		t.Fatalf("command marks over new line=%d, want %d", got, want)
	}
	if got, want := doc.Cursor(), (buffer.Pos{Row: 1, Col: 3}); got != want {
		t.Fatalf("Cursor=%+v, want %+v", got, want)
	}
}

func TestHeadingContinuation_AtEndOfLine(t *testing.T) {
	doc, res := splitAt(t, "### Title", len("### Title"))

	if got, want := doc.Text(), "### Title\n### "; got != want {
		t.Fatalf("Text=%q, want %q", got, want)
	}
	if !res[0].Heading || res[0].Highlight {
		t.Fatalf("Result=%+v, want heading only", res[0])
	}
	if got, want := doc.Cursor(), (buffer.Pos{Row: 1, Col: 4}); got != want {
		t.Fatalf("Cursor=%+v, want %+v", got, want)
	}
}

func TestHeadingContinuation_CarriesTrimmedRemainder(t *testing.T) {
	doc, _ := splitAt(t, "## one  two", len("## one"))
	if got, want := doc.Line(1), "## two"; got != want {
		t.Fatalf("Line(1)=%q, want %q", got, want)
	}
}

func TestHeadingContinuation_LongestPrefix(t *testing.T) {
	doc, _ := splitAt(t, "###### deep", len("###### deep"))
	if got, want := doc.Line(1), "###### "; got != want {
		t.Fatalf("Line(1)=%q, want %q", got, want)
	}
}

func TestHighlightContinuation_EmptyRemainderDoesNotStamp(t *testing.T) {
	doc, res := splitAt(t, "-> note", len("-> note"))
	if got, want := doc.Line(1), ""; got != want {
		t.Fatalf("Line(1)=%q, want %q", got, want)
	}
	if res[0].Applied() {
		t.Fatalf("Result=%+v, want nothing applied", res[0])
	}
}

func TestPlainLineIsLeftAlone(t *testing.T) {
	doc, res := splitAt(t, "plain text", len("plain "))
	if got, want := doc.Text(), "plain \ntext"; got != want {
		t.Fatalf("Text=%q, want %q", got, want)
	}
	if res[0].Applied() {
		t.Fatalf("Result=%+v", res[0])
	}
}

func TestAtMostOneStampFires(t *testing.T) {
	inputs := []string{"# a b", "-> a b", "## -> a b", "-> # a b", "#-> a b"}
	for _, in := range inputs {
		for col := 0; col <= len(in); col++ {
			doc := surface.New(in, buffer.Options{})
			doc.SetCursor(buffer.Pos{Row: 0, Col: col})
			s, _ := Capture(doc)
			doc.Buffer().InsertNewline()
			if r := Apply(doc, s); r.Heading && r.Highlight {
				t.Fatalf("both stamps fired for %q at col %d", in, col)
			}
		}
	}
}

func TestCapture_SplitsAtCursor(t *testing.T) {
	doc := surface.New("ab\ne\u0301f", buffer.Options{})
	doc.SetCursor(buffer.Pos{Row: 1, Col: 2})
	s, ok := Capture(doc)
	if !ok {
		t.Fatalf("Capture failed")
	}
	if s.Row != 1 || s.Before != "e\u0301" || s.After != "f" {
		t.Fatalf("Split=%+v", s)
	}
}

func TestCapture_RefusesSelection(t *testing.T) {
	doc := surface.New("-> abc", buffer.Options{})
	doc.SetSelection(buffer.RowRange(0, 3, 5))
	if _, ok := Capture(doc); ok {
		t.Fatalf("Capture should refuse an active selection")
	}

	var e Engine
	if e.Split(doc, doc.Buffer().InsertNewline) {
		t.Fatalf("no task should be queued for a selection")
	}
	if got, want := doc.Text(), "-> \nc"; got != want {
		t.Fatalf("split should still run: Text=%q, want %q", got, want)
	}
}

func TestSplit_NoTaskWhenNothingChanged(t *testing.T) {
	doc := surface.New("-> a", buffer.Options{})
	var e Engine
	if e.Split(doc, func() {}) {
		t.Fatalf("task queued although perform did not change the text")
	}
}

func TestDrain_FiresOncePerKey(t *testing.T) {
	doc := surface.New("-> a b", buffer.Options{})
	doc.SetCursor(buffer.Pos{Row: 0, Col: 5})

	var e Engine
	var applied int
	e.OnApply = func(Split, Result) { applied++ }
	e.Split(doc, doc.Buffer().InsertNewline)

	s := e.queue.pending[0]
	if e.queue.Defer(s) {
		t.Fatalf("duplicate key accepted while pending")
	}
	e.Drain(doc)
	if e.queue.Defer(s) {
		t.Fatalf("fired key accepted again")
	}
	e.Drain(doc)

	if got, want := applied, 1; got != want {
		t.Fatalf("applied=%d, want %d", got, want)
	}
	if got, want := e.Pending(), 0; got != want {
		t.Fatalf("Pending=%d, want %d", got, want)
	}
}

func TestDrain_DropsStaleTask(t *testing.T) {
	doc := surface.New("# a", buffer.Options{})
	doc.SetCursor(buffer.Pos{Row: 0, Col: 3})

	var e Engine
	e.Split(doc, doc.Buffer().InsertNewline)
	doc.Buffer().Undo()

	if got := e.Drain(doc); len(got) != 0 {
		t.Fatalf("stale task ran: %+v", got)
	}
	if got, want := doc.Text(), "# a"; got != want {
		t.Fatalf("Text=%q, want %q", got, want)
	}
}

func TestApply_MissingRowIsNoop(t *testing.T) {
	doc := surface.New("# a", buffer.Options{})
	if got := Apply(doc, Split{Row: 0, Before: "# a"}); got.Applied() {
		t.Fatalf("Apply on missing row=%+v", got)
	}
}
