package view

import (
	"fmt"
	"testing"

	"github.com/hexops/gotextdiff"
	"github.com/hexops/gotextdiff/myers"
	"github.com/hexops/gotextdiff/span"

	"github.com/xonecas/viewengine/internal/engineconfig"
	"github.com/xonecas/viewengine/internal/selection"
	"github.com/xonecas/viewengine/internal/widthcache"
)

// assertText compares got against want, failing with a unified diff
// rather than two raw quoted strings when they disagree.
func assertText(t *testing.T, e *Engine, want string) {
	t.Helper()
	got := e.Text().String()
	if got == want {
		return
	}
	uri := span.URIFromPath("buffer")
	edits := myers.ComputeEdits(uri, want, got)
	t.Fatalf("text mismatch:\n%s", fmt.Sprint(gotextdiff.ToUnified("want", "got", want, edits)))
}

// testEngine uses the "python" language throughout: its indent/comment
// metadata comes from plain per-line regexes (internal/style's
// hashComment rule), which is deterministic and doesn't depend on a
// tree-sitter parse of incomplete source the way "go" metadata does.
func testEngine() *Engine {
	cfg := engineconfig.BufferConfig{TabSize: 4, TranslateTabsToSpaces: true, AutoIndent: true, UndoCapacity: 40}
	return New(widthcache.ReferenceMeasure, "python", "vulcan", cfg)
}

func insertText(e *Engine, s string) Update {
	return e.HandleEvent(Event{Buffer: &BufferEvent{Kind: Insert, InsertText: s}})
}

func TestInsertAppendsAndMovesCaret(t *testing.T) {
	e := testEngine()
	insertText(e, "hello")
	if e.Text().String() != "hello" {
		t.Fatalf("Text() = %q, want hello", e.Text().String())
	}
	if got := e.Selection().Last(); got.Start != 5 || got.End != 5 {
		t.Fatalf("caret = %+v, want caret@5", got)
	}
}

func TestUndoRestoresPriorText(t *testing.T) {
	e := testEngine()
	insertText(e, "hello")
	insertText(e, " world") // coalesces into the same InsertChars group
	e.HandleEvent(Event{Buffer: &BufferEvent{Kind: Backspace}}) // breaks the group
	e.HandleEvent(Event{Buffer: &BufferEvent{Kind: Undo}})
	if e.Text().String() != "hello world" {
		t.Fatalf("after undoing the backspace, Text() = %q, want %q", e.Text().String(), "hello world")
	}
	e.HandleEvent(Event{Buffer: &BufferEvent{Kind: Undo}})
	if e.Text().String() != "" {
		t.Fatalf("after undoing the coalesced insert group, Text() = %q, want empty", e.Text().String())
	}
}

func TestInsertCharsRunsCoalesceIntoOneUndoGroup(t *testing.T) {
	e := testEngine()
	insertText(e, "a")
	insertText(e, "b")
	insertText(e, "c")
	if e.undoStack.Len() != 2 { // initial empty snapshot + one coalesced group
		t.Fatalf("undoStack.Len() = %d, want 2", e.undoStack.Len())
	}
}

func TestBackspaceDeletesOneRune(t *testing.T) {
	e := testEngine()
	insertText(e, "abc")
	e.HandleEvent(Event{Buffer: &BufferEvent{Kind: Backspace}})
	if e.Text().String() != "ab" {
		t.Fatalf("Text() = %q, want ab", e.Text().String())
	}
}

func TestAutoIndentAfterNewlineIncreasesLevel(t *testing.T) {
	e := testEngine()
	insertText(e, "def f():")
	e.HandleEvent(Event{Buffer: &BufferEvent{Kind: InsertNewline}})
	line1 := e.GetLine(1)
	if line1 == nil {
		t.Fatalf("GetLine(1) = nil")
	}
	if got := leadingWhitespaceLen(line1.Text); got != 4 {
		t.Fatalf("line 1 leading whitespace = %d, want 4 (tab_size)", got)
	}
}

func TestToggleCommentAddsThenRemovesPrefix(t *testing.T) {
	e := testEngine()
	insertText(e, "x = 1")
	e.HandleEvent(Event{Buffer: &BufferEvent{Kind: ToggleComment}})
	line0 := e.GetLine(0)
	if line0 == nil || line0.Text != "# x = 1" {
		t.Fatalf("after toggle-comment, line = %+v, want # x = 1", line0)
	}
	e.HandleEvent(Event{Buffer: &BufferEvent{Kind: ToggleComment}})
	line0 = e.GetLine(0)
	if line0.Text != "x = 1" {
		t.Fatalf("after toggling comment off, line = %q, want x = 1", line0.Text)
	}
}

func TestGetLineWholeDocument(t *testing.T) {
	e := testEngine()
	insertText(e, "line one")
	l := e.GetLine(WholeDocumentLine)
	if l == nil || l.Text != "line one\n" {
		t.Fatalf("GetLine(WholeDocumentLine) = %+v, want text %q", l, "line one\n")
	}
}

func TestSelectAllThenDeleteClearsDocument(t *testing.T) {
	e := testEngine()
	insertText(e, "hello")
	e.HandleEvent(Event{View: &ViewEvent{Kind: SelectAll}})
	e.HandleEvent(Event{Buffer: &BufferEvent{Kind: Backspace}})
	if e.Text().String() != "" {
		t.Fatalf("Text() = %q, want empty after select-all + backspace", e.Text().String())
	}
}

func TestCopySetsPasteboardFromSelection(t *testing.T) {
	e := testEngine()
	insertText(e, "hello")
	e.sel = selection.FromRegion(selection.Region{Start: 0, End: 5})
	upd := e.HandleEvent(Event{View: &ViewEvent{Kind: Copy}})
	if upd.Pasteboard == nil || *upd.Pasteboard != "hello" {
		t.Fatalf("Pasteboard = %v, want hello", upd.Pasteboard)
	}
}

func TestTransposeSwapsRuneBeforeAndAfterCaret(t *testing.T) {
	e := testEngine()
	insertText(e, "ba")
	e.sel = selection.FromRegion(selection.Region{Start: 1, End: 1})
	e.HandleEvent(Event{Buffer: &BufferEvent{Kind: Transpose}})
	assertText(t, e, "ab")
}

func TestTransposeAtDocumentStartIsNoop(t *testing.T) {
	e := testEngine()
	insertText(e, "ab")
	e.sel = selection.FromRegion(selection.Region{Start: 0, End: 0})
	e.HandleEvent(Event{Buffer: &BufferEvent{Kind: Transpose}})
	assertText(t, e, "ab")
}
