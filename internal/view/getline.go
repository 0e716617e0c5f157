package view

import (
	"github.com/xonecas/viewengine/internal/selection"
	"github.com/xonecas/viewengine/internal/spans"
	"github.com/xonecas/viewengine/internal/style"
)

// Line is a snapshot of one rendered line: its text, caret position
// (if any), selection extent within the line, and flattened style
// runs, as returned by get_line.
type Line struct {
	Text      string
	Caret     *int
	SelStart  int
	SelEnd    int
	StyleRuns []StyleRun
}

// StyleRun is one (start, length, style id) triplet within a Line.
type StyleRun struct {
	Start, Length int
	StyleID       style.ID
}

// WholeDocumentLine is the reserved GetLine index that returns the
// entire document as a single Line with no caret, selection, or
// styles.
const WholeDocumentLine = wholeDocumentLine

// GetLine returns the rendered snapshot of line idx, or nil if
// idx > count_lines. GetLine(WholeDocumentLine) returns the entire
// document instead.
func (e *Engine) GetLine(idx int) *Line {
	if idx == WholeDocumentLine {
		return e.wholeThing()
	}
	if idx > e.countLines() {
		return nil
	}

	start := e.offsetOfLine(idx)
	end := e.offsetOfLine(idx + 1)
	text := e.text.Slice(start, end)
	lineSpans := e.spansTbl.Subseq(start, end)

	regions := e.sel.RegionsInRange(start, end)
	var region *selection.Region
	if len(regions) > 0 {
		region = &regions[0]
	}

	var caret *int
	if region != nil {
		c := region.End
		atDocEnd := c == end && c == e.text.Len() && e.lineOfOffset(c) == idx
		if (c > start && c < end) ||
			(region.Affinity != selection.Upstream && c == start) ||
			(region.Affinity == selection.Upstream && c == end) ||
			atDocEnd {
			rel := c - start
			caret = &rel
		}
	}

	selStart, selEnd := 0, 0
	if region != nil {
		selStart = clampNonNeg(region.Min() - start)
		selEnd = region.Max() - start
		if selEnd > len(text) {
			selEnd = len(text)
		}
	}

	return &Line{
		Text:      text,
		Caret:     caret,
		SelStart:  selStart,
		SelEnd:    selEnd,
		StyleRuns: flattenRuns(lineSpans),
	}
}

func (e *Engine) wholeThing() *Line {
	return &Line{Text: e.text.String() + "\n"}
}

func flattenRuns(s spans.Spans[style.ID]) []StyleRun {
	all := s.All()
	out := make([]StyleRun, 0, len(all))
	for _, sp := range all {
		out = append(out, StyleRun{Start: sp.Start, Length: sp.Len(), StyleID: sp.Value})
	}
	return out
}

func clampNonNeg(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
