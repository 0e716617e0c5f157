package view

import (
	"github.com/xonecas/viewengine/internal/rope"
	"github.com/xonecas/viewengine/internal/selection"
	"github.com/xonecas/viewengine/internal/undo"
)

// HandleEvent is the engine's sole entry point: it mutates state per
// ev and returns the Update the host should apply.
func (e *Engine) HandleEvent(ev Event) Update {
	b := newUpdateBuilder()
	switch {
	case ev.View != nil:
		e.handleViewEvent(*ev.View, b)
	case ev.Buffer != nil:
		e.handleEdit(*ev.Buffer, b)
	case ev.ViewportChanged != nil:
		e.viewportChange(*ev.ViewportChanged, b)
	}
	return b.build()
}

func (e *Engine) handleViewEvent(ev ViewEvent, b *updateBuilder) {
	if ev.Kind == Copy {
		if s, ok := e.extractSelection(); ok {
			b.setPasteboard(s)
		}
		return
	}

	if newSel, ok := e.selectionForEvent(ev); ok {
		e.lastEdit = undo.Other
		e.undoStack.UpdateCurrentUndo(func(snap *undo.Snapshot[rope.Text]) { snap.SelBefore = newSel })
		e.computeScrollPoint(newSel, b)
		e.sel = newSel
	}
	b.invalLines(0, e.countLines())
}

func (e *Engine) selectionForEvent(ev ViewEvent) (selection.Selection, bool) {
	switch ev.Kind {
	case Move:
		return selection.Move(ev.Movement, e.sel, e.text, e.brks, false), true
	case ModifySelection:
		return selection.Move(ev.Movement, e.sel, e.text, e.brks, true), true
	case SelectAll:
		return selection.FromRegion(selection.Region{Start: 0, End: e.text.Len()}), true
	case CollapseSelections:
		r := e.sel.All()[0]
		return selection.FromRegion(selection.Region{Start: r.End, End: r.End}), true
	case Gesture:
		return e.handleGesture(ev), true
	default:
		return selection.Selection{}, false
	}
}

func (e *Engine) handleGesture(ev ViewEvent) selection.Selection {
	offset := e.lineColToOffset(ev.GestureLine, ev.GestureCol)
	g := selection.Gesture{Type: ev.GestureType, Granularity: ev.GestureGranu, Multi: ev.GestureMulti}
	return selection.SelectionForGesture(e.text, e.sel, offset, g)
}

func (e *Engine) lineColToOffset(line, col int) int {
	start := e.offsetOfLine(line)
	lineLen := e.offsetOfLine(line+1) - start
	if col > lineLen {
		col = lineLen
	}
	return start + col
}

// extractSelection concatenates the text of every non-caret region,
// in selection order, or reports ok=false if every region is a caret.
func (e *Engine) extractSelection() (string, bool) {
	var s string
	any := false
	for _, r := range e.sel.All() {
		if r.IsCaret() {
			continue
		}
		any = true
		s += e.text.Slice(r.Min(), r.Max())
	}
	return s, any
}

func (e *Engine) handleEdit(ev BufferEvent, b *updateBuilder) {
	if ev.Kind == Cut {
		s, ok := e.extractSelection()
		if !ok {
			return
		}
		b.setPasteboard(s)
	}

	thisEditType := editTypeFromEvent(ev)

	var editDeltas []rope.Delta
	switch ev.Kind {
	case Undo:
		snap, ok := e.undoStack.Undo()
		if !ok {
			return
		}
		e.text = snap.Text
		e.sel = snap.SelBefore.(selection.Selection)
		e.lastEdit = thisEditType
	case Redo:
		snap, ok := e.undoStack.Redo()
		if !ok {
			return
		}
		e.text = snap.Text
		e.sel = snap.SelAfter.(selection.Selection)
		e.lastEdit = thisEditType
	default:
		deltas := e.deltaForEvent(ev)
		if len(deltas) == 0 {
			return
		}
		newText, newSel := applyDeltas(e.text, e.sel, deltas)
		if thisEditType.BreaksUndoGroup(e.lastEdit) {
			e.undoStack.AddUndoGroup(undo.Snapshot[rope.Text]{Text: newText, SelBefore: newSel, SelAfter: newSel})
		} else {
			e.undoStack.UpdateCurrentUndo(func(snap *undo.Snapshot[rope.Text]) {
				snap.Text = newText
				snap.SelAfter = newSel
				snap.SelBefore = newSel
			})
		}
		e.text = newText
		e.sel = newSel
		editDeltas = deltas
		e.lastEdit = thisEditType
	}

	if len(editDeltas) > 0 {
		if indentDeltas := e.autoIndent(editDeltas, thisEditType); len(indentDeltas) > 0 {
			newText, newSel := applyDeltas(e.text, e.sel, indentDeltas)
			e.text = newText
			e.sel = newSel
		}
	}

	e.rewrapAll()
	e.updateSpans()

	if news := e.highlighter.TakeNewStyles(); len(news) > 0 {
		b.newStyles(news)
	}

	e.computeScrollPoint(e.sel, b)

	newSize := e.computeContentSize()
	if newSize != e.contentSize {
		e.contentSize = newSize
		b.contentSize(newSize)
	}

	b.invalLines(0, e.countLines())
}

func editTypeFromEvent(ev BufferEvent) undo.EditType {
	switch ev.Kind {
	case Insert, InsertTab:
		return undo.InsertChars
	case InsertNewline:
		return undo.InsertNewline
	case Indent, Outdent:
		return undo.Indent
	case Backspace, Cut, DeleteByMovement:
		return undo.Delete
	case Undo:
		return undo.Undo
	case Redo:
		return undo.Redo
	case Transpose:
		return undo.Transpose
	default:
		return undo.Other
	}
}

func (e *Engine) viewportChange(newFrame Rect, b *updateBuilder) {
	if e.config.WordWrap && newFrame.Width != e.frame.Width {
		e.frame = newFrame
		e.rewrapAll()
		b.invalLines(0, e.countLines())

		newSize := e.computeContentSize()
		if newSize != e.contentSize {
			e.contentSize = newSize
			b.contentSize(newSize)
		}
		return
	}
	e.frame = newFrame
}

func (e *Engine) computeScrollPoint(sel selection.Selection, b *updateBuilder) {
	end := sel.Last().End
	line := e.lineOfOffset(end)
	lineOff := e.offsetOfLine(line)
	b.scrollTo(LineCol{Line: line, Col: end - lineOff})
}
