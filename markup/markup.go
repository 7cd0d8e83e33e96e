// Package markup classifies markdown lines against the small grammar markline
// decorates: ATX headings of level 1 to 6 and the "-> " highlight marker.
//
// Every function here is pure and total.
package markup

import (
	"regexp"
	"strings"
)

// Marker is the line prefix that turns a line into a highlight line.
const Marker = "-> "

// MaxHeadingLevel is the deepest heading level the grammar recognizes.
const MaxHeadingLevel = 6

// Kind is the structural category of a line.
type Kind uint8

const (
	Plain Kind = iota
	Heading
	Highlight
)

func (k Kind) String() string {
	switch k {
	case Heading:
		return "heading"
	case Highlight:
		return "highlight"
	default:
		return "plain"
	}
}

// Class is the classification of one line. Level is set only for headings.
type Class struct {
	Kind  Kind
	Level int
}

// Decorated reports whether the line gets a background decoration.
func (c Class) Decorated() bool { return c.Kind != Plain }

var (
	reHeadingPrefix = regexp.MustCompile(`^#+\s*`)
	reOrderedItem   = regexp.MustCompile(`^\d+\.\s`)
)

// Classify returns the classification of text. Leading and trailing
// whitespace is ignored.
func Classify(text string) Class {
	trimmed := strings.TrimSpace(text)
	if lvl := HeadingLevelOf(trimmed); lvl > 0 {
		return Class{Kind: Heading, Level: lvl}
	}
	if strings.HasPrefix(trimmed, Marker) {
		return Class{Kind: Highlight}
	}
	return Class{Kind: Plain}
}

// HeadingPrefix returns the marker for a heading of level, e.g. "### ".
// Levels outside 1..6 return "".
func HeadingPrefix(level int) string {
	if level < 1 || level > MaxHeadingLevel {
		return ""
	}
	return strings.Repeat("#", level) + " "
}

// HeadingLevelOf returns the level n for which text starts with
// HeadingPrefix(n), or 0. Levels are tested from 6 down so that a shorter
// prefix never shadows a longer one. text is not trimmed.
func HeadingLevelOf(text string) int {
	for lvl := MaxHeadingLevel; lvl >= 1; lvl-- {
		if strings.HasPrefix(text, HeadingPrefix(lvl)) {
			return lvl
		}
	}
	return 0
}

// HasMarker reports whether text starts with the highlight marker. text is
// not trimmed.
func HasMarker(text string) bool {
	return strings.HasPrefix(text, Marker)
}

// StripMarker removes a leading highlight marker.
func StripMarker(text string) (string, bool) {
	if !HasMarker(text) {
		return text, false
	}
	return text[len(Marker):], true
}

// StripHeading removes any run of '#' at the start of text together with the
// whitespace that follows it.
func StripHeading(text string) string {
	return reHeadingPrefix.ReplaceAllString(text, "")
}

// IsBulletItem reports whether the trimmed text is an unordered list item.
func IsBulletItem(text string) bool {
	trimmed := strings.TrimSpace(text)
	return strings.HasPrefix(trimmed, "- ") || strings.HasPrefix(trimmed, "* ")
}

// IsOrderedItem reports whether the trimmed text is an ordered list item.
func IsOrderedItem(text string) bool {
	return reOrderedItem.MatchString(strings.TrimSpace(text))
}
