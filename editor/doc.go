// Package editor provides the markline Bubble Tea component: a markdown
// editor that decorates heading and highlight lines as they are typed.
//
// The model owns a surface.Binding (buffer plus decorations). Key handling
// mutates the buffer; at the end of every Update the continuation queue is
// drained and decorations are re-synced before the next message is handled.
// Toolbar commands run through key shortcuts, an HTML preview pane renders
// the document on demand, and a small form inserts links.
package editor
