package markup

import (
	"fmt"
	"testing"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		in   string
		want Class
	}{
		{in: "", want: Class{Kind: Plain}},
		{in: "plain text", want: Class{Kind: Plain}},
		{in: "# Title", want: Class{Kind: Heading, Level: 1}},
		{in: "## Title", want: Class{Kind: Heading, Level: 2}},
		{in: "###### text", want: Class{Kind: Heading, Level: 6}},
		{in: "####### text", want: Class{Kind: Plain}},
		{in: "#Title", want: Class{Kind: Plain}},
		{in: "   ### indented  ", want: Class{Kind: Heading, Level: 3}},
		{in: "-> note", want: Class{Kind: Highlight}},
		{in: "  -> note", want: Class{Kind: Highlight}},
		{in: "->note", want: Class{Kind: Plain}},
		{in: "- item", want: Class{Kind: Plain}},
		{in: "text -> arrow", want: Class{Kind: Plain}},
		{in: "-> ", want: Class{Kind: Plain}}, // trimmed to "->"
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%q", tc.in), func(t *testing.T) {
			if got := Classify(tc.in); got != tc.want {
				t.Fatalf("Classify(%q)=%+v, want %+v", tc.in, got, tc.want)
			}
		})
	}
}

func TestClassify_LongestHeadingPrefixWins(t *testing.T) {
	for lvl := 1; lvl <= MaxHeadingLevel; lvl++ {
		text := HeadingPrefix(lvl) + "text"
		if got := Classify(text); got.Kind != Heading || got.Level != lvl {
			t.Fatalf("Classify(%q)=%+v, want heading level %d", text, got, lvl)
		}
	}
}

func TestClassify_Stable(t *testing.T) {
	for _, in := range []string{"# a", "-> b", "c", "", "###### d"} {
		if a, b := Classify(in), Classify(in); a != b {
			t.Fatalf("Classify(%q) unstable: %+v vs %+v", in, a, b)
		}
	}
}

func TestHeadingAndMarkerGrammarsAreExclusive(t *testing.T) {
	// No text can carry both a heading prefix and the highlight marker at
	// its start, so at most one continuation can fire for a split.
	for lvl := 1; lvl <= MaxHeadingLevel; lvl++ {
		if HasMarker(HeadingPrefix(lvl)) {
			t.Fatalf("heading prefix %q starts with the marker", HeadingPrefix(lvl))
		}
	}
	if HeadingLevelOf(Marker) != 0 {
		t.Fatalf("marker %q parses as a heading", Marker)
	}
}

func TestHeadingPrefix(t *testing.T) {
	if got, want := HeadingPrefix(3), "### "; got != want {
		t.Fatalf("HeadingPrefix(3)=%q, want %q", got, want)
	}
	if HeadingPrefix(0) != "" || HeadingPrefix(7) != "" {
		t.Fatalf("out of range levels should produce empty prefixes")
	}
}

func TestHeadingLevelOf_DoesNotTrim(t *testing.T) {
	if got := HeadingLevelOf(" ## x"); got != 0 {
		t.Fatalf("HeadingLevelOf with leading space=%d, want 0", got)
	}
	if got, want := HeadingLevelOf("## "), 2; got != want {
		t.Fatalf("HeadingLevelOf=%d, want %d", got, want)
	}
}

func TestStripMarker(t *testing.T) {
	got, ok := StripMarker("-> hello")
	if !ok || got != "hello" {
		t.Fatalf("StripMarker=%q,%v want %q,true", got, ok, "hello")
	}
	got, ok = StripMarker("hello")
	if ok || got != "hello" {
		t.Fatalf("StripMarker on plain=%q,%v", got, ok)
	}
}

func TestStripHeading(t *testing.T) {
	cases := map[string]string{
		"### Title":   "Title",
		"#Title":      "Title",
		"########  x": "x",
		"Title":       "Title",
	}
	for in, want := range cases {
		if got := StripHeading(in); got != want {
			t.Fatalf("StripHeading(%q)=%q, want %q", in, got, want)
		}
	}
}

func TestListItems(t *testing.T) {
	if !IsBulletItem("- a") || !IsBulletItem("* a") || IsBulletItem("-> a") {
		t.Fatalf("unexpected bullet detection")
	}
	if !IsOrderedItem("12. a") || IsOrderedItem("1) a") {
		t.Fatalf("unexpected ordered detection")
	}
}
