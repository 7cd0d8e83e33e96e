package grapheme

import "testing"

func TestSplitAndCount_CombiningMark(t *testing.T) {
	text := "a" + "e\u0301" + "b"
	got := Split(text)
	if len(got) != 3 {
		t.Fatalf("split len=%d, want %d", len(got), 3)
	}
	if got[1] != "e\u0301" {
		t.Fatalf("split[1]=%q, want %q", got[1], "e\u0301")
	}
	if c := Count(text); c != 3 {
		t.Fatalf("count=%d, want %d", c, 3)
	}
	if Count("") != 0 {
		t.Fatalf("count of empty text should be 0")
	}
}

func TestBoundaries_StepOverCombiningMark(t *testing.T) {
	line := []rune("a" + "e\u0301" + "b")

	if got, want := NextBoundary(line, 1), 3; got != want {
		t.Fatalf("next from 1=%d, want %d", got, want)
	}
	if got, want := NextBoundary(line, 2), 3; got != want {
		t.Fatalf("next from inside cluster=%d, want %d", got, want)
	}
	if got, want := PrevBoundary(line, 3), 1; got != want {
		t.Fatalf("prev from 3=%d, want %d", got, want)
	}
	if got, want := PrevBoundary(line, 1), 0; got != want {
		t.Fatalf("prev from 1=%d, want %d", got, want)
	}
	if got, want := NextBoundary(line, 99), len(line); got != want {
		t.Fatalf("next past end=%d, want %d", got, want)
	}
	if got := PrevBoundary(line, 0); got != 0 {
		t.Fatalf("prev at start=%d, want 0", got)
	}
}

func TestWidth(t *testing.T) {
	if got, want := Width("ab"), 2; got != want {
		t.Fatalf("width=%d, want %d", got, want)
	}
	if got, want := Width("テ"), 2; got != want {
		t.Fatalf("wide width=%d, want %d", got, want)
	}
}

func TestIsSpace(t *testing.T) {
	if !IsSpace("\t") {
		t.Fatalf("tab should be space")
	}
	if IsSpace("a") || IsSpace("") {
		t.Fatalf("letter and empty should not be space")
	}
}
