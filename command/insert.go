package command

import (
	"github.com/iw2rmb/markline/surface"
)

// DefaultDivider is the snippet the divider command inserts.
const DefaultDivider = "\n\n-----\n\n"

// InsertDivider replaces the selection with snippet, or DefaultDivider when
// snippet is empty.
func InsertDivider(doc surface.Doc, snippet string) bool {
	if snippet == "" {
		snippet = DefaultDivider
	}
	doc.ReplaceSelection(snippet)
	doc.Sync()
	return true
}

// LinkForm holds the fields of the link dialog.
type LinkForm struct {
	Title string
	URL   string
}

func (f LinkForm) Complete() bool { return f.Title != "" && f.URL != "" }

func (f *LinkForm) Reset() { *f = LinkForm{} }

// InsertLink replaces the selection with a markdown link built from form
// and resets the form. It does nothing unless both fields are set.
func InsertLink(doc surface.Doc, form *LinkForm) bool {
	if form == nil || !form.Complete() {
		return false
	}
	doc.ReplaceSelection("[" + form.Title + "](" + form.URL + ")")
	form.Reset()
	doc.Sync()
	return true
}
