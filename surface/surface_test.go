package surface

import (
	"testing"

	"github.com/iw2rmb/markline/buffer"
	"github.com/iw2rmb/markline/decor"
)

func TestNew_SyncsInitialText(t *testing.T) {
	d := New("# Title\n-> note", buffer.Options{})
	if !d.Decorations().HasClass(0, decor.ClassHighlightedLine) {
		t.Fatalf("heading row missing background")
	}
	if got, want := len(d.FindMarks(buffer.RowRange(1, 0, 7))), 1; got != want {
		t.Fatalf("marks on highlight row=%d, want %d", got, want)
	}
}

func TestNew_ShiftsMarksBeforeUserHook(t *testing.T) {
	var seen []buffer.Change
	d := New("a\nb", buffer.Options{OnChange: func(ch buffer.Change) { seen = append(seen, ch) }})
	d.MarkText(buffer.RowRange(1, 0, 1), "sel")

	d.ReplaceRange(buffer.RowRange(0, 0, 0), "x\n")
	d.Sync()

	if got, want := len(seen), 1; got != want {
		t.Fatalf("OnChange calls=%d, want %d", got, want)
	}
	marks := d.FindMarks(buffer.RowRange(2, 0, 1))
	if got, want := len(marks), 1; got != want {
		t.Fatalf("marks on shifted row=%d, want %d", got, want)
	}
}

func TestVersion_TracksTextOnly(t *testing.T) {
	d := New("abc", buffer.Options{})
	v0 := d.Version()
	d.SetCursor(buffer.Pos{Row: 0, Col: 2})
	if got := d.Version(); got != v0 {
		t.Fatalf("cursor move changed Version: %d -> %d", v0, got)
	}
	d.ReplaceSelection("Z")
	if got := d.Version(); got == v0 {
		t.Fatalf("Version unchanged after edit")
	}
	if got, want := d.Text(), "abZc"; got != want {
		t.Fatalf("Text=%q, want %q", got, want)
	}
}

func TestAddLineClass_StampsCurrentText(t *testing.T) {
	d := New("one\ntwo", buffer.Options{})
	d.AddLineClass(1, "active")
	d.AddLineClass(9, "active")

	ds := d.Decorations().ForRow(1)
	if got, want := len(ds), 1; got != want {
		t.Fatalf("row 1 decorations=%d, want %d", got, want)
	}
	if got, want := ds[0].Stamp, "two"; got != want {
		t.Fatalf("Stamp=%q, want %q", got, want)
	}

	d.ReplaceLine(1, "three")
	d.Sync()
	if d.Decorations().HasClass(1, "active") {
		t.Fatalf("class should drop once the row text changes")
	}
}
