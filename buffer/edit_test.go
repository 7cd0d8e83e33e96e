package buffer

import "testing"

func TestBuffer_InsertText_MultiLine(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Row: 0, Col: 1})
	tv := b.TextVersion()

	b.InsertText("X\nY")
	if got, want := b.Text(), "aX\nYb"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 1}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if got := b.TextVersion(); got != tv+1 {
		t.Fatalf("text version=%d, want %d", got, tv+1)
	}
}

func TestBuffer_InsertText_ReplacesSelection(t *testing.T) {
	b := New("hello", Options{})
	b.SetSelection(RowRange(0, 1, 4)) // "ell"

	b.InsertText("i")
	if got, want := b.Text(), "hio"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
	if _, ok := b.Selection(); ok {
		t.Fatalf("expected selection cleared")
	}
}

func TestBuffer_InsertNewline_SplitsLine(t *testing.T) {
	b := New("-> hello world", Options{})
	b.SetCursor(Pos{Row: 0, Col: 9})

	b.InsertNewline()
	if got, want := b.Line(0), "-> hello "; got != want {
		t.Fatalf("line 0=%q, want %q", got, want)
	}
	if got, want := b.Line(1), "world"; got != want {
		t.Fatalf("line 1=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 0}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_DeleteBackward_JoinsLinesAtSOL(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 1, Col: 0})

	b.DeleteBackward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_DeleteBackward_RemovesWholeCluster(t *testing.T) {
	b := New("ae\u0301", Options{})
	b.SetCursor(Pos{Row: 0, Col: 3})

	b.DeleteBackward()
	if got, want := b.Text(), "a"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_DeleteBackward_AtStartIsNoOp(t *testing.T) {
	b := New("ab", Options{})
	v := b.Version()
	b.DeleteBackward()
	if b.Version() != v || b.Text() != "ab" {
		t.Fatalf("expected no mutation, got %q v=%d", b.Text(), b.Version())
	}
}

func TestBuffer_DeleteForward_JoinsLinesAtEOL(t *testing.T) {
	b := New("ab\ncd", Options{})
	b.SetCursor(Pos{Row: 0, Col: 2})

	b.DeleteForward()
	if got, want := b.Text(), "abcd"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}
}

func TestBuffer_ReplaceLine(t *testing.T) {
	b := New("one\ntwo", Options{})
	b.ReplaceLine(1, "### two")
	if got, want := b.Text(), "one\n### two"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
	if got, want := b.Cursor(), (Pos{Row: 1, Col: 7}); got != want {
		t.Fatalf("cursor=%v, want %v", got, want)
	}

	v := b.Version()
	b.ReplaceLine(5, "x")
	if b.Version() != v {
		t.Fatalf("out of range replace mutated the buffer")
	}
}

func TestBuffer_ReplaceSelection_InsertsAtCursorWithoutSelection(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Row: 0, Col: 1})
	b.ReplaceSelection("[t](u)")
	if got, want := b.Text(), "a[t](u)b"; got != want {
		t.Fatalf("text=%q, want %q", got, want)
	}
}

func TestBuffer_ReplaceRange_IdenticalTextIsNoOp(t *testing.T) {
	b := New("abc", Options{})
	v := b.Version()
	b.ReplaceRange(RowRange(0, 0, 3), "abc")
	if b.Version() != v {
		t.Fatalf("version=%d, want %d", b.Version(), v)
	}
	if b.CanUndo() {
		t.Fatalf("no-op replace recorded undo")
	}
}
