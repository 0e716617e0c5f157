package view

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/xonecas/viewengine/internal/rope"
	"github.com/xonecas/viewengine/internal/selection"
)

// lineRange is a half-open range of line indices touched by an edit.
type lineRange struct {
	start, end int
}

// deltaForEvent computes the delta list for every buffer event except
// Undo/Redo (handled directly by handleEdit against the undo stack).
func (e *Engine) deltaForEvent(ev BufferEvent) []rope.Delta {
	switch ev.Kind {
	case DeleteByMovement:
		return e.deleteByMovement(ev.DeleteMotion)
	case Backspace, Cut:
		return e.deleteBackward()
	case Insert:
		return e.insertAtCarets(ev.InsertText)
	case InsertNewline:
		return e.insertAtCarets("\n")
	case InsertTab:
		return e.insertTab()
	case ToggleComment:
		return e.toggleComment()
	case Indent:
		return e.modifyIndent(true)
	case Outdent:
		return e.modifyIndent(false)
	case Transpose:
		return e.transpose()
	default:
		return nil
	}
}

// transpose swaps the rune before each caret with the one after
// it (Emacs/xi-editor transpose-chars), leaving the caret past the
// swapped pair. Carets with fewer than two neighbouring runes, and
// non-caret regions, are left untouched.
func (e *Engine) transpose() []rope.Delta {
	var out []rope.Delta
	for _, r := range e.sel.All() {
		if !r.IsCaret() {
			continue
		}
		off := r.Min()
		before := prevRune(e.text, off)
		if before == off {
			continue
		}
		after := off
		if off < e.text.Len() {
			after = nextRune(e.text, off)
		} else {
			// at end of document: swap the two runes before the caret.
			after = off
			off = before
			before = prevRune(e.text, before)
			if before == off {
				continue
			}
		}
		if after == off {
			continue
		}
		firstRune := e.text.Slice(before, off)
		secondRune := e.text.Slice(off, after)
		out = append(out, rope.Delta{Start: before, End: after, Insert: secondRune + firstRune})
	}
	return out
}

func nextRune(text rope.Text, off int) int {
	if off >= text.Len() {
		return off
	}
	s := text.Slice(off, min(text.Len(), off+4))
	_, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return off + 1
	}
	return off + n
}

// insertAtCarets replaces every selected region with text, or inserts
// it at each caret.
func (e *Engine) insertAtCarets(text string) []rope.Delta {
	out := make([]rope.Delta, 0, e.sel.Len())
	for _, r := range e.sel.All() {
		out = append(out, rope.Delta{Start: r.Min(), End: r.Max(), Insert: text})
	}
	return out
}

// insertTab indents multi-line selections, otherwise replaces each
// region with the configured tab text.
func (e *Engine) insertTab() []rope.Delta {
	for _, r := range e.sel.All() {
		if !r.IsCaret() && e.text.LineOfOffset(r.Min()) != e.text.LineOfOffset(r.Max()) {
			return e.modifyIndent(true)
		}
	}
	return e.insertAtCarets(e.tabText())
}

func (e *Engine) tabText() string {
	if e.config.TranslateTabsToSpaces {
		return spacesOf(e.config.TabSizeOrDefault())
	}
	return "\t"
}

// deleteBackward deletes the selection if non-caret, otherwise one
// rune (or a soft tab stop's worth of spaces) before each caret.
func (e *Engine) deleteBackward() []rope.Delta {
	out := make([]rope.Delta, 0, e.sel.Len())
	for _, r := range e.sel.All() {
		if !r.IsCaret() {
			out = append(out, rope.Delta{Start: r.Min(), End: r.Max()})
			continue
		}
		start := e.backspaceStart(r.Min())
		out = append(out, rope.Delta{Start: start, End: r.Min()})
	}
	return out
}

// backspaceStart returns where a backspace from off should delete
// from: back to the previous soft-tab stop when the run immediately
// before off is all spaces and translate_tabs_to_spaces is set,
// otherwise back one UTF-8 rune.
func (e *Engine) backspaceStart(off int) int {
	if e.config.TranslateTabsToSpaces {
		line := e.text.LineOfOffset(off)
		lineStart := e.text.OffsetOfLine(line)
		col := off - lineStart
		prefix := e.text.Slice(lineStart, off)
		if col > 0 && strings.TrimLeft(prefix, " ") == "" {
			tab := e.config.TabSizeOrDefault()
			back := col % tab
			if back == 0 {
				back = tab
			}
			return off - back
		}
	}
	return prevRune(e.text, off)
}

// deleteByMovement deletes the selection if non-caret, otherwise
// extends each caret by kind and deletes the extended range.
func (e *Engine) deleteByMovement(kind selection.Kind) []rope.Delta {
	out := make([]rope.Delta, 0, e.sel.Len())
	for _, r := range e.sel.All() {
		if !r.IsCaret() {
			out = append(out, rope.Delta{Start: r.Min(), End: r.Max()})
			continue
		}
		moved := selection.Move(kind, selection.FromRegion(r), e.text, e.brks, true).Last()
		out = append(out, rope.Delta{Start: moved.Min(), End: moved.Max()})
	}
	return out
}

// modifyIndent increases or decreases the indent of every line
// touched by the selection.
func (e *Engine) modifyIndent(increase bool) []rope.Delta {
	lines := e.linesForSelection()
	var out []rope.Delta
	seen := map[int]bool{}
	for _, lr := range lines {
		for n := lr.start; n < lr.end; n++ {
			if seen[n] {
				continue
			}
			seen[n] = true
			if increase {
				out = append(out, rope.Delta{Start: e.text.OffsetOfLine(n), End: e.text.OffsetOfLine(n), Insert: e.tabText()})
			} else if d, ok := e.outdentLine(n); ok {
				out = append(out, d)
			}
		}
	}
	return out
}

func (e *Engine) outdentLine(n int) (rope.Delta, bool) {
	start := e.text.OffsetOfLine(n)
	line := e.getLineStr(n)
	tab := e.config.TabSizeOrDefault()
	count := 0
	for count < len(line) && count < tab && (line[count] == ' ' || line[count] == '\t') {
		count++
	}
	if count == 0 {
		return rope.Delta{}, false
	}
	return rope.Delta{Start: start, End: start + count}, true
}

// linesForSelection returns the line ranges touched by each region of
// the selection, excluding a trailing line a region's end merely
// touches at column zero.
func (e *Engine) linesForSelection() []lineRange {
	out := make([]lineRange, 0, e.sel.Len())
	for _, r := range e.sel.All() {
		start := e.text.LineOfOffset(r.Min())
		end := e.text.LineOfOffset(r.Max())
		if end > start && r.Max() == e.text.OffsetOfLine(end) {
			end--
		}
		out = append(out, lineRange{start: start, end: end + 1})
	}
	return out
}

func spacesOf(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

func prevRune(text rope.Text, off int) int {
	if off <= 0 {
		return 0
	}
	start := off - 4
	if start < 0 {
		start = 0
	}
	s := text.Slice(start, off)
	_, n := utf8.DecodeLastRuneInString(s)
	if n == 0 {
		return off - 1
	}
	return off - n
}

// sortDeltasDescending sorts deltas back-to-front so applying them in
// order never invalidates an earlier delta's offsets.
func sortDeltasDescending(deltas []rope.Delta) []rope.Delta {
	out := append([]rope.Delta(nil), deltas...)
	sort.Slice(out, func(i, j int) bool { return out[i].Start > out[j].Start })
	return out
}

// applyDeltas applies every delta in deltas (assumed non-overlapping,
// each expressed in the pre-edit text's coordinates) to text and sel,
// back-to-front, and returns the result.
func applyDeltas(text rope.Text, sel selection.Selection, deltas []rope.Delta) (rope.Text, selection.Selection) {
	for _, d := range sortDeltasDescending(deltas) {
		if d.Empty() {
			continue
		}
		text = d.Apply(text)
		sel = sel.ApplyDelta(d, true, selection.DriftDefault)
	}
	return text, sel
}
