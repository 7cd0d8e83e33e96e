package buffer

import "testing"

func TestBuffer_LastChange_InitialAndNoOp(t *testing.T) {
	b := New("a", Options{})

	if _, ok := b.LastChange(); ok {
		t.Fatalf("expected no initial change")
	}

	b.Move(Move{Unit: MoveGrapheme, Dir: DirLeft}) // no-op at BOF
	if _, ok := b.LastChange(); ok {
		t.Fatalf("expected no change after no-op mutation")
	}
}

func TestBuffer_Change_InsertTextShape(t *testing.T) {
	b := New("ab", Options{})
	b.SetCursor(Pos{Row: 0, Col: 1})
	v := b.Version()

	b.InsertText("X")

	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected last change")
	}
	if got, want := ch.VersionBefore, v; got != want {
		t.Fatalf("version before=%d, want %d", got, want)
	}
	if got, want := ch.VersionAfter, v+1; got != want {
		t.Fatalf("version after=%d, want %d", got, want)
	}
	if got, want := ch.CursorAfter, (Pos{Row: 0, Col: 2}); got != want {
		t.Fatalf("cursor after=%v, want %v", got, want)
	}
	if got, want := len(ch.AppliedEdits), 1; got != want {
		t.Fatalf("applied edits=%d, want %d", got, want)
	}
	edit := ch.AppliedEdits[0]
	if got, want := edit.RangeBefore, RowRange(0, 1, 1); got != want {
		t.Fatalf("range before=%v, want %v", got, want)
	}
	if got, want := edit.RangeAfter, RowRange(0, 1, 2); got != want {
		t.Fatalf("range after=%v, want %v", got, want)
	}
	if got, want := edit.InsertText, "X"; got != want {
		t.Fatalf("insert text=%q, want %q", got, want)
	}
	if !ch.TextChanged() {
		t.Fatalf("expected TextChanged")
	}
}

func TestBuffer_Change_MoveHasNoAppliedEdits(t *testing.T) {
	b := New("ab", Options{})
	b.Move(Move{Unit: MoveGrapheme, Dir: DirRight})

	ch, ok := b.LastChange()
	if !ok {
		t.Fatalf("expected last change")
	}
	if ch.TextChanged() {
		t.Fatalf("applied edits=%d, want 0", len(ch.AppliedEdits))
	}
}

func TestAppliedEdit_LineDelta(t *testing.T) {
	b := New("ab\ncd\nef", Options{})

	b.SetCursor(Pos{Row: 0, Col: 1})
	b.InsertNewline()
	ch, _ := b.LastChange()
	if got, want := ch.AppliedEdits[0].LineDelta(), 1; got != want {
		t.Fatalf("split delta=%d, want %d", got, want)
	}

	b.ReplaceRange(Range{Start: Pos{Row: 0, Col: 0}, End: Pos{Row: 2, Col: 0}}, "")
	ch, _ = b.LastChange()
	if got, want := ch.AppliedEdits[0].LineDelta(), -2; got != want {
		t.Fatalf("delete delta=%d, want %d", got, want)
	}
}

func TestBuffer_OnChange_CalledOncePerTransaction(t *testing.T) {
	var got []Change
	b := New("hello", Options{OnChange: func(c Change) { got = append(got, c) }})

	b.Apply(
		TextEdit{Range: RowRange(0, 0, 0), Text: "X"},
		TextEdit{Range: RowRange(0, 1, 2), Text: ""},
	)
	if len(got) != 1 {
		t.Fatalf("callbacks=%d, want 1", len(got))
	}
	if n := len(got[0].AppliedEdits); n != 2 {
		t.Fatalf("applied edits=%d, want 2", n)
	}

	b.Apply(TextEdit{Range: RowRange(0, 0, 0), Text: ""})
	if len(got) != 1 {
		t.Fatalf("no-op apply fired a callback")
	}

	b.SetCursor(Pos{Row: 0, Col: 0})
	if len(got) != 2 || got[1].TextChanged() {
		t.Fatalf("expected cursor-only change, got %d callbacks", len(got))
	}
}
