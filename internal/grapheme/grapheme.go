// Package grapheme maps rune columns onto grapheme cluster boundaries and
// terminal cell widths.
package grapheme

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	return uniseg.GraphemeClusterCount(text)
}

// NextBoundary returns the rune column just past the cluster starting at col.
// Columns inside a cluster snap forward to its end.
func NextBoundary(line []rune, col int) int {
	if col < 0 {
		return 0
	}
	if col >= len(line) {
		return len(line)
	}
	pos := 0
	g := uniseg.NewGraphemes(string(line))
	for g.Next() {
		pos += len(g.Runes())
		if pos > col {
			return pos
		}
	}
	return len(line)
}

// PrevBoundary returns the rune column where the cluster ending at col starts.
func PrevBoundary(line []rune, col int) int {
	if col > len(line) {
		col = len(line)
	}
	if col <= 0 {
		return 0
	}
	start := 0
	pos := 0
	g := uniseg.NewGraphemes(string(line))
	for g.Next() {
		next := pos + len(g.Runes())
		if next >= col {
			return pos
		}
		start = next
		pos = next
	}
	return start
}

// Width returns the number of terminal cells text occupies.
func Width(text string) int {
	return runewidth.StringWidth(text)
}

// IsSpace reports whether all runes in cluster are Unicode whitespace.
func IsSpace(cluster string) bool {
	if cluster == "" {
		return false
	}
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}
