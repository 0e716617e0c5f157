package selection

import (
	"strings"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/v2/words"

	"github.com/xonecas/viewengine/internal/breaks"
	"github.com/xonecas/viewengine/internal/rope"
)

// Kind names a movement primitive.
type Kind int

const (
	Left Kind = iota
	Right
	Up
	Down
	WordLeft
	WordRight
	LineStart
	LineEnd
	ParagraphStart
	ParagraphEnd
	DocumentStart
	DocumentEnd
	PageUp
	PageDown
)

// PageSize is the number of visual lines a page up/down primitive
// moves by.
const PageSize = 20

// Move applies kind to every region of sel. When modify is true each
// region's anchor (Start) is preserved and only the active end (End)
// moves; otherwise the region collapses to a caret at its new
// position.
func Move(kind Kind, sel Selection, text rope.Text, brks breaks.Breaks, modify bool) Selection {
	out := make([]Region, sel.Len())
	for i, r := range sel.All() {
		newPos := moveOffset(kind, r.End, text, brks)
		if modify {
			out[i] = Region{Start: r.Start, End: newPos, Affinity: r.Affinity}
		} else {
			out[i] = Caret(newPos)
		}
	}
	return Selection{regions: out}
}

func moveOffset(kind Kind, off int, text rope.Text, brks breaks.Breaks) int {
	switch kind {
	case Left:
		return prevRune(text, off)
	case Right:
		return nextRune(text, off)
	case Up:
		return moveVisualLine(text, brks, off, -1)
	case Down:
		return moveVisualLine(text, brks, off, 1)
	case WordLeft:
		return wordBoundary(text, off, -1)
	case WordRight:
		return wordBoundary(text, off, 1)
	case LineStart:
		return lineStartOffset(text, off)
	case LineEnd:
		return lineEndOffset(text, off)
	case ParagraphStart:
		return paragraphBoundary(text, off, -1)
	case ParagraphEnd:
		return paragraphBoundary(text, off, 1)
	case DocumentStart:
		return 0
	case DocumentEnd:
		return text.Len()
	case PageUp:
		return moveVisualLines(text, brks, off, -PageSize)
	case PageDown:
		return moveVisualLines(text, brks, off, PageSize)
	default:
		return off
	}
}

func prevRune(text rope.Text, off int) int {
	if off <= 0 {
		return 0
	}
	// scan back up to 4 bytes for a rune start
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

func nextRune(text rope.Text, off int) int {
	if off >= text.Len() {
		return text.Len()
	}
	s := text.Slice(off, min(off+4, text.Len()))
	_, n := utf8.DecodeRuneInString(s)
	if n == 0 {
		return off + 1
	}
	return off + n
}

func lineStartOffset(text rope.Text, off int) int {
	line := text.LineOfOffset(off)
	return text.OffsetOfLine(line)
}

func lineEndOffset(text rope.Text, off int) int {
	line := text.LineOfOffset(off)
	next := text.OffsetOfLine(line + 1)
	if next >= text.Len() {
		return text.Len()
	}
	// next is just past the line's newline; back up over it
	if next > 0 && text.Slice(next-1, next) == "\n" {
		return next - 1
	}
	return next
}

// moveVisualLine moves by one visual row (soft-wrapped if brks has
// records, otherwise hard newline rows), preserving the byte column
// within the row as closely as possible.
func moveVisualLine(text rope.Text, brks breaks.Breaks, off int, dir int) int {
	return moveVisualLines(text, brks, off, dir)
}

func moveVisualLines(text rope.Text, brks breaks.Breaks, off int, delta int) int {
	if brks.Count() == 0 {
		return moveHardLines(text, off, delta)
	}
	curLine := brks.LineOfOffset(off)
	col := off - brks.OffsetOfBreak(curLine)
	target := curLine + delta
	total := brks.Count() + 1
	if target < 0 {
		return 0
	}
	if target >= total {
		return text.Len()
	}
	lineStart := brks.OffsetOfBreak(target)
	var lineLen int
	if target < brks.Count() {
		lineLen = brks.Records()[target].BaseLen
	} else {
		lineLen = text.Len() - lineStart
	}
	if col > lineLen {
		col = lineLen
	}
	return lineStart + col
}

func moveHardLines(text rope.Text, off int, delta int) int {
	curLine := text.LineOfOffset(off)
	col := off - text.OffsetOfLine(curLine)
	target := curLine + delta
	if target < 0 {
		target = 0
	}
	maxLine := text.CountLines() - 1
	if target > maxLine {
		target = maxLine
	}
	lineStart := text.OffsetOfLine(target)
	lineEnd := lineEndOffset(text, lineStart)
	lineLen := lineEnd - lineStart
	if col > lineLen {
		col = lineLen
	}
	return lineStart + col
}

func wordBoundary(text rope.Text, off int, dir int) int {
	full := text.String()
	var bounds []int
	seg := words.NewSegmenter([]byte(full))
	pos := 0
	bounds = append(bounds, 0)
	for seg.Next() {
		pos += len(seg.Bytes())
		bounds = append(bounds, pos)
	}
	if dir < 0 {
		best := 0
		for _, b := range bounds {
			if b < off {
				best = b
			}
		}
		return best
	}
	best := len(full)
	for i := len(bounds) - 1; i >= 0; i-- {
		if bounds[i] > off {
			best = bounds[i]
		}
	}
	return best
}

func paragraphBoundary(text rope.Text, off int, dir int) int {
	full := text.String()
	lines := strings.Split(full, "\n")
	offsets := make([]int, len(lines)+1)
	cum := 0
	for i, l := range lines {
		offsets[i] = cum
		cum += len(l) + 1
	}
	offsets[len(lines)] = text.Len()

	curLine := text.LineOfOffset(off)
	if dir < 0 {
		for i := curLine - 1; i >= 0; i-- {
			if strings.TrimSpace(lines[i]) == "" {
				return offsets[i]
			}
		}
		return 0
	}
	for i := curLine + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == "" {
			return offsets[i]
		}
	}
	return text.Len()
}
