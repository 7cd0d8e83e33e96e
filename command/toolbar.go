package command

import (
	"fmt"

	"github.com/iw2rmb/markline/surface"
)

// ID names a toolbar command.
type ID string

const (
	Bold          ID = "bold"
	Italic        ID = "italic"
	Heading1      ID = "heading-1"
	Heading2      ID = "heading-2"
	Heading3      ID = "heading-3"
	Heading4      ID = "heading-4"
	Heading5      ID = "heading-5"
	Heading6      ID = "heading-6"
	UnorderedList ID = "unordered-list"
	OrderedList   ID = "ordered-list"
	Preview       ID = "preview"
	Link          ID = "link"
	Code          ID = "code"
	Strikethrough ID = "strikethrough"
	Divider       ID = "divider"
	Highlight     ID = "highlight"
)

// HeadingID returns the toolbar id of the heading command for level.
func HeadingID(level int) ID {
	return ID(fmt.Sprintf("heading-%d", level))
}

// Action is one toolbar entry. Host actions (preview, link) open UI owned by
// the editor and are not run against the document.
type Action struct {
	ID    ID
	Title string
	Host  bool
}

var toolbar = []Action{
	{ID: Bold, Title: "Bold"},
	{ID: Italic, Title: "Italic"},
	{ID: Heading1, Title: "Heading 1"},
	{ID: Heading2, Title: "Heading 2"},
	{ID: Heading3, Title: "Heading 3"},
	{ID: Heading4, Title: "Heading 4"},
	{ID: Heading5, Title: "Heading 5"},
	{ID: Heading6, Title: "Heading 6"},
	{ID: UnorderedList, Title: "Generic List"},
	{ID: OrderedList, Title: "Numbered List"},
	{ID: Preview, Title: "Toggle Preview", Host: true},
	{ID: Link, Title: "Insert Link", Host: true},
	{ID: Code, Title: "Code"},
	{ID: Strikethrough, Title: "Strikethrough"},
	{ID: Divider, Title: "Insert Divider"},
	{ID: Highlight, Title: "Highlight Text"},
}

// Toolbar returns the toolbar entries in display order.
func Toolbar() []Action {
	return append([]Action(nil), toolbar...)
}

// Lookup returns the toolbar entry for id.
func Lookup(id ID) (Action, bool) {
	for _, a := range toolbar {
		if a.ID == id {
			return a, true
		}
	}
	return Action{}, false
}

// Runner dispatches toolbar commands.
type Runner struct {
	// Divider is the snippet inserted by the divider command.
	Divider string

	// OnRun, if set, observes every dispatched command.
	OnRun func(id ID, applied bool)
}

// Run executes the document command named id and reports whether it changed
// anything. Host actions and unknown ids return false.
func (r Runner) Run(id ID, doc surface.Doc) bool {
	applied := r.run(id, doc)
	if r.OnRun != nil {
		r.OnRun(id, applied)
	}
	return applied
}

func (r Runner) run(id ID, doc surface.Doc) bool {
	switch id {
	case Bold:
		return ToggleSpan(doc, BoldMarker)
	case Italic:
		return ToggleSpan(doc, ItalicMarker)
	case Code:
		return ToggleSpan(doc, CodeMarker)
	case Strikethrough:
		return ToggleSpan(doc, StrikeMarker)
	case Heading1, Heading2, Heading3, Heading4, Heading5, Heading6:
		return ToggleHeading(doc, int(id[len(id)-1]-'0'))
	case UnorderedList:
		return ToggleUnorderedList(doc)
	case OrderedList:
		return ToggleOrderedList(doc)
	case Divider:
		return InsertDivider(doc, r.Divider)
	case Highlight:
		return ToggleHighlight(doc)
	default:
		return false
	}
}

// Run executes id with a default Runner.
func Run(id ID, doc surface.Doc) bool {
	return Runner{}.Run(id, doc)
}
