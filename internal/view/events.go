package view

import "github.com/xonecas/viewengine/internal/selection"

// ViewEventKind names the view-only events: caret/selection movement,
// select-all, collapse-selections, gesture, copy.
type ViewEventKind int

const (
	Move ViewEventKind = iota
	ModifySelection
	SelectAll
	CollapseSelections
	Gesture
	Copy
)

// ViewEvent is one view-family event.
type ViewEvent struct {
	Kind         ViewEventKind
	Movement     selection.Kind // valid for Move/ModifySelection
	GestureLine  int
	GestureCol   int
	GestureType  selection.GestureType
	GestureGranu selection.Granularity
	GestureMulti bool
}

// BufferEventKind names the buffer-mutating events.
type BufferEventKind int

const (
	Insert BufferEventKind = iota
	InsertNewline
	InsertTab
	Backspace
	DeleteByMovement
	Cut
	Undo
	Redo
	Indent
	Outdent
	ToggleComment
	Transpose
)

// BufferEvent is one buffer-mutating event.
type BufferEvent struct {
	Kind         BufferEventKind
	InsertText   string
	DeleteMotion selection.Kind // valid for DeleteByMovement
}

// Rect is a view frame in logical pixels.
type Rect struct {
	X, Y, Width, Height int
}

// Event wraps the three families handle_event dispatches over.
type Event struct {
	View            *ViewEvent
	Buffer          *BufferEvent
	ViewportChanged *Rect
}
