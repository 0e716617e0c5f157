package dispatcher

import (
	"encoding/json"
	"strings"

	"github.com/rs/zerolog"

	"github.com/xonecas/viewengine/internal/selection"
	"github.com/xonecas/viewengine/internal/view"
)

// movementSelector names a plain-motion selector: the movement
// primitive it invokes and whether it preserves the selection anchor
// (the "AndModifySelection" suffix in the original source's
// event_from_str table).
type movementSelector struct {
	kind   selection.Kind
	modify bool
}

// selectorTable maps the movement selectors of the external contract
// onto a movement kind and whether the selection is extended.
var selectorTable = map[string]movementSelector{
	"moveBackward:":                                 {selection.Left, false},
	"moveLeft:":                                      {selection.Left, false},
	"moveLeftAndModifySelection:":                    {selection.Left, true},
	"moveForward:":                                   {selection.Right, false},
	"moveRight:":                                     {selection.Right, false},
	"moveRightAndModifySelection:":                   {selection.Right, true},
	"moveUp:":                                        {selection.Up, false},
	"moveUpAndModifySelection:":                      {selection.Up, true},
	"moveDown:":                                      {selection.Down, false},
	"moveDownAndModifySelection:":                    {selection.Down, true},
	"moveWordLeft:":                                  {selection.WordLeft, false},
	"moveWordLeftAndModifySelection:":                {selection.WordLeft, true},
	"moveWordRight:":                                 {selection.WordRight, false},
	"moveWordRightAndModifySelection:":               {selection.WordRight, true},
	"moveToLeftEndOfLine:":                           {selection.LineStart, false},
	"moveToBeginningOfLine:":                         {selection.LineStart, false},
	"moveToLeftEndOfLineAndModifySelection:":         {selection.LineStart, true},
	"moveToBeginningOfLineAndModifySelection:":       {selection.LineStart, true},
	"moveToRightEndOfLine:":                          {selection.LineEnd, false},
	"moveToEndOfLine:":                               {selection.LineEnd, false},
	"moveToRightEndOfLineAndModifySelection:":        {selection.LineEnd, true},
	"moveToEndOfLineAndModifySelection:":             {selection.LineEnd, true},
	"moveToBeginningOfParagraph:":                    {selection.ParagraphStart, false},
	"moveToBeginningOfParagraphAndModifySelection:":  {selection.ParagraphStart, true},
	"moveToEndOfParagraph:":                          {selection.ParagraphEnd, false},
	"moveToEndOfParagraphAndModifySelection:":        {selection.ParagraphEnd, true},
	"moveToBeginningOfDocument:":                     {selection.DocumentStart, false},
	"moveToBeginningOfDocumentAndModifySelection:":   {selection.DocumentStart, true},
	"moveToEndOfDocument:":                           {selection.DocumentEnd, false},
	"moveToEndOfDocumentAndModifySelection:":         {selection.DocumentEnd, true},
	"pageUp:":                                        {selection.PageUp, false},
	"pageUpAndModifySelection:":                      {selection.PageUp, true},
	"pageDown:":                                       {selection.PageDown, false},
	"pageDownAndModifySelection:":                     {selection.PageDown, true},
}

// deleteMotionTable names selectors that delete the range a movement
// primitive would select, per deltaForEvent's DeleteByMovement case.
var deleteMotionTable = map[string]selection.Kind{
	"deleteToBeginningOfLine:":  selection.LineStart,
	"deleteToEndOfParagraph:":   selection.ParagraphEnd,
	"deleteWordBackward:":       selection.WordLeft,
	"deleteWordForward:":        selection.WordRight,
	"deleteForward:":            selection.Right,
}

// directBufferTable names selectors that map straight onto a
// BufferEventKind with no parameters. It includes standalone "indent"
// and "outdent" selectors besides the multi-line behaviour of
// "insertTab:".
var directBufferTable = map[string]view.BufferEventKind{
	"deleteBackward:": view.Backspace,
	"insertNewline:":  view.InsertNewline,
	"insertTab:":      view.InsertTab,
	"transpose:":      view.Transpose,
	"cut":             view.Cut,
	"undo":            view.Undo,
	"redo":            view.Redo,
	"toggle_comment":  view.ToggleComment,
	"indent":          view.Indent,
	"outdent":         view.Outdent,
}

// directViewTable names selectors that map straight onto a
// ViewEventKind with no parameters.
var directViewTable = map[string]view.ViewEventKind{
	"selectAll:":       view.SelectAll,
	"cancelOperation:": view.CollapseSelections,
	"copy":             view.Copy,
}

// eventForMessage decodes m's params (if any) and builds the view.Event
// the named selector denotes, or ok=false if the selector is unknown
//.
func eventForMessage(m rpcMessage, logger zerolog.Logger) (view.Event, bool) {
	switch m.Method {
	case "insert":
		var p insertParams
		if err := json.Unmarshal(m.Params, &p); err != nil {
			logger.Warn().Err(err).Str("method", m.Method).Msg("malformed params, dropping")
			return view.Event{}, false
		}
		return view.Event{Buffer: &view.BufferEvent{Kind: view.Insert, InsertText: p.Chars}}, true

	case "viewport_change":
		var p viewportChangeParams
		if err := json.Unmarshal(m.Params, &p); err != nil {
			logger.Warn().Err(err).Str("method", m.Method).Msg("malformed params, dropping")
			return view.Event{}, false
		}
		rect := view.Rect{X: p.X, Y: p.Y, Width: p.Width, Height: p.Height}
		return view.Event{ViewportChanged: &rect}, true

	case "gesture":
		var p gestureParams
		if err := json.Unmarshal(m.Params, &p); err != nil {
			logger.Warn().Err(err).Str("method", m.Method).Msg("malformed params, dropping")
			return view.Event{}, false
		}
		gt, gran, ok := decodeGestureType(p.Ty)
		if !ok {
			logger.Warn().Str("kind", p.Ty.Kind).Msg("unrecognized gesture type, dropping")
			return view.Event{}, false
		}
		return view.Event{View: &view.ViewEvent{
			Kind:         view.Gesture,
			GestureLine:  p.Line,
			GestureCol:   p.Col,
			GestureType:  gt,
			GestureGranu: gran,
			GestureMulti: p.Ty.Multi,
		}}, true
	}

	if kind, ok := directViewTable[m.Method]; ok {
		return view.Event{View: &view.ViewEvent{Kind: kind}}, true
	}
	if kind, ok := directBufferTable[m.Method]; ok {
		return view.Event{Buffer: &view.BufferEvent{Kind: kind}}, true
	}
	if mv, ok := selectorTable[m.Method]; ok {
		viewKind := view.Move
		if mv.modify {
			viewKind = view.ModifySelection
		}
		return view.Event{View: &view.ViewEvent{Kind: viewKind, Movement: mv.kind}}, true
	}
	if motion, ok := deleteMotionTable[m.Method]; ok {
		return view.Event{Buffer: &view.BufferEvent{Kind: view.DeleteByMovement, DeleteMotion: motion}}, true
	}

	logger.Warn().Str("method", m.Method).Msg("no event for selector, dropping")
	return view.Event{}, false
}

func decodeGestureType(p gestureTyParams) (selection.GestureType, selection.Granularity, bool) {
	gran, ok := decodeGranularity(p.Granularity)
	if !ok {
		gran = selection.Point
	}
	switch strings.ToLower(p.Kind) {
	case "select":
		return selection.Select, gran, true
	case "selectextend", "select_extend":
		return selection.SelectExtend, gran, true
	case "drag":
		return selection.Drag, selection.Point, true
	default:
		return 0, 0, false
	}
}

func decodeGranularity(s string) (selection.Granularity, bool) {
	switch strings.ToLower(s) {
	case "point", "":
		return selection.Point, true
	case "word":
		return selection.Word, true
	case "line":
		return selection.Line, true
	default:
		return 0, false
	}
}
