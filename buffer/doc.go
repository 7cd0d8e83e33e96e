// Package buffer implements the rune-accurate document model behind the
// markline editor: lines, cursor, selection, edits, undo/redo, and a record
// of the last effective change.
//
// Coordinates are 0-based (Row, Col) in runes.
// Ranges are half-open spans in document coordinates: [Start, End).
package buffer
