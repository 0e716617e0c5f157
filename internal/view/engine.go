// Package view implements the view engine: the single-threaded,
// synchronous core that owns one document's text, selection, undo
// history, line breaks, and syntax spans, and turns one Event into
// one Update per call.
package view

import (
	"github.com/xonecas/viewengine/internal/breaks"
	"github.com/xonecas/viewengine/internal/engineconfig"
	"github.com/xonecas/viewengine/internal/rope"
	"github.com/xonecas/viewengine/internal/selection"
	"github.com/xonecas/viewengine/internal/spans"
	"github.com/xonecas/viewengine/internal/style"
	"github.com/xonecas/viewengine/internal/undo"
	"github.com/xonecas/viewengine/internal/widthcache"
)

// unboundedWidth stands in for "no soft-wrap": a viewWidth wide enough
// that only hard (newline) breaks are ever emitted.
const unboundedWidth = 1 << 30

// wholeDocumentLine is the reserved GetLine index that returns the
// entire document as a single line with no caret, selection, or
// styles.
const wholeDocumentLine = 6942069

// DragState holds a drag gesture's origin. The engine never sets its
// dragState field: Drag gestures leave the selection unchanged.
type DragState struct {
	Origin selection.Region
}

// Engine is one document's live view state.
type Engine struct {
	text        rope.Text
	sel         selection.Selection
	dragState   *DragState
	undoStack   *undo.Stack[rope.Text]
	lastEdit    undo.EditType
	config      engineconfig.BufferConfig
	brks        breaks.Breaks
	spansTbl    spans.Spans[style.ID]
	highlighter *style.Highlighter
	frame       Rect
	widthCache  *widthcache.Cache
	lineHeight  int
	contentSize widthcache.Size
}

// New returns an Engine over an empty document, using measure for all
// width queries and lang/theme for highlighting.
func New(measure widthcache.MeasureFunc, lang, theme string, cfg engineconfig.BufferConfig) *Engine {
	wc := widthcache.New(measure)
	sel := selection.New(0)
	e := &Engine{
		text:        rope.New(""),
		sel:         sel,
		undoStack:   undo.NewStack[rope.Text](cfg.UndoCapacityOrDefault()),
		lastEdit:    undo.Other,
		config:      cfg,
		highlighter: style.NewHighlighter(lang, theme),
		widthCache:  wc,
		lineHeight:  wc.LineHeight(),
	}
	e.undoStack.AddUndoGroup(undo.Snapshot[rope.Text]{Text: e.text, SelBefore: sel, SelAfter: sel})
	return e
}

// SetText replaces the document wholesale (used by hosts to open a
// file), rebuilding breaks and spans and resetting undo history.
func (e *Engine) SetText(text string) {
	e.text = rope.New(text)
	e.sel = selection.New(0)
	e.lastEdit = undo.Other
	e.undoStack = undo.NewStack[rope.Text](e.config.UndoCapacityOrDefault())
	e.undoStack.AddUndoGroup(undo.Snapshot[rope.Text]{Text: e.text, SelBefore: e.sel, SelAfter: e.sel})
	e.rewrapAll()
	e.updateSpans()
	e.contentSize = e.computeContentSize()
}

// Text returns the document's current contents.
func (e *Engine) Text() rope.Text { return e.text }

// Selection returns the current selection.
func (e *Engine) Selection() selection.Selection { return e.sel }

func (e *Engine) viewWidth() int {
	if e.config.WordWrap {
		return e.frame.Width
	}
	return unboundedWidth
}

func (e *Engine) rewrapAll() {
	if !e.config.WordWrap {
		e.brks = breaks.Empty()
		return
	}
	e.brks = rewrap(e.text, e.widthCache, e.frame.Width)
}

func (e *Engine) updateSpans() {
	e.spansTbl = e.highlighter.HighlightAll(e.text.String())
}

func (e *Engine) countLines() int {
	if e.config.WordWrap {
		return e.brks.Count() + 1
	}
	return e.text.CountLines()
}

func (e *Engine) computeContentSize() widthcache.Size {
	height := e.countLines() * e.lineHeight
	width := e.brks.MaxWidth()
	return widthcache.Size{Width: width, Height: height}
}

func (e *Engine) offsetOfLine(line int) int {
	if line >= e.countLines() {
		return e.text.Len()
	}
	if e.config.WordWrap {
		return e.brks.OffsetOfBreak(line)
	}
	return e.text.OffsetOfLine(line)
}

func (e *Engine) lineOfOffset(offset int) int {
	if offset > e.text.Len() {
		offset = e.text.Len()
	}
	if e.config.WordWrap {
		return e.brks.LineOfOffset(offset)
	}
	return e.text.LineOfOffset(offset)
}

func (e *Engine) getLineStr(line int) string {
	start := e.text.OffsetOfLine(line)
	end := e.text.OffsetOfLine(line + 1)
	return e.text.Slice(start, end)
}
