package view

import (
	"sort"
	"strings"

	"github.com/xonecas/viewengine/internal/rope"
	"github.com/xonecas/viewengine/internal/undo"
)

// insertSite is one insert's position and length in the
// already-applied (post-edit) text.
type insertSite struct {
	offset, length int
}

// insertSites computes, for each non-empty-insert delta in deltas,
// where that insertion now lives in the text the deltas (applied
// back-to-front) produced.
func insertSites(deltas []rope.Delta) []insertSite {
	sorted := append([]rope.Delta(nil), deltas...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Start < sorted[j].Start })

	var out []insertSite
	shift := 0
	for _, d := range sorted {
		if d.Insert != "" {
			out = append(out, insertSite{offset: d.Start + shift, length: len(d.Insert)})
		}
		shift += len(d.Insert) - (d.End - d.Start)
	}
	return out
}

// autoIndent computes the follow-up delta that corrects indentation
// after an InsertNewline or InsertChars edit. It operates against
// e.text, which must already reflect the primary edit.
func (e *Engine) autoIndent(deltas []rope.Delta, editType undo.EditType) []rope.Delta {
	if editType != undo.InsertNewline && editType != undo.InsertChars {
		return nil
	}
	// metadata_for_line's Go variant reads a parse-tree index that
	// HighlightAll only refreshes after auto-indent runs; refresh it
	// against the post-edit text now so test_increase/test_decrease
	// see this edit instead of the previous one.
	e.highlighter.RefreshIndentIndex(e.text.String())
	var out []rope.Delta
	for _, site := range insertSites(deltas) {
		line := e.text.LineOfOffset(site.offset)
		switch editType {
		case undo.InsertNewline:
			if d, ok := e.indentAfterNewline(line + 1); ok {
				out = append(out, d)
			}
		case undo.InsertChars:
			end := site.offset + site.length
			inserted := e.text.Slice(site.offset, end)
			if strings.TrimSpace(inserted) != "" {
				if d, ok := e.indentAfterInsert(line); ok {
					out = append(out, d)
				}
			}
		}
	}
	return out
}

func (e *Engine) indentAfterNewline(newLineNum int) (rope.Delta, bool) {
	tabSize := e.config.TabSizeOrDefault()
	currentIndent := e.indentLevelOfLine(newLineNum)
	baseIndent := 0
	if prev, ok := e.previousNonblankLine(newLineNum); ok {
		baseIndent = e.indentLevelOfLine(prev)
	}

	increase := 0
	if e.testIncrease(newLineNum) {
		increase = tabSize
	}
	decrease := 0
	if e.testDecrease(newLineNum) {
		decrease = tabSize
	}
	finalLevel := baseIndent + increase - decrease
	if finalLevel == currentIndent {
		return rope.Delta{}, false
	}
	return e.setIndent(newLineNum, finalLevel), true
}

func (e *Engine) indentAfterInsert(line int) (rope.Delta, bool) {
	tabSize := e.config.TabSizeOrDefault()
	currentIndent := e.indentLevelOfLine(line)
	if line == 0 || currentIndent == 0 {
		return rope.Delta{}, false
	}

	justIncreased := e.testIncrease(line)
	decrease := e.testDecrease(line)
	if !decrease {
		return rope.Delta{}, false
	}

	indentLevel := 0
	if prev, ok := e.previousNonblankLine(line); ok {
		indentLevel = e.indentLevelOfLine(prev)
	}
	if !justIncreased {
		indentLevel -= tabSize
		if indentLevel < 0 {
			indentLevel = 0
		}
	}
	if indentLevel == currentIndent {
		return rope.Delta{}, false
	}
	return e.setIndent(line, indentLevel), true
}

func (e *Engine) setIndent(line, level int) rope.Delta {
	start := e.text.OffsetOfLine(line)
	lineText := e.getLineStr(line)
	editLen := leadingWhitespaceLen(lineText)

	var indentText string
	if e.config.TranslateTabsToSpaces {
		indentText = spacesOf(level)
	} else {
		tabSize := e.config.TabSizeOrDefault()
		indentText = strings.Repeat("\t", level/tabSize)
	}
	return rope.Delta{Start: start, End: start + editLen, Insert: indentText}
}

func (e *Engine) indentLevelOfLine(line int) int {
	tabSize := e.config.TabSizeOrDefault()
	text := e.getLineStr(line)
	level := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case ' ':
			level++
		case '\t':
			level += tabSize
		default:
			return level
		}
	}
	return level
}

func (e *Engine) previousNonblankLine(lineNum int) (int, bool) {
	for lineNum > 0 {
		lineNum--
		if strings.TrimSpace(e.getLineStr(lineNum)) != "" {
			return lineNum, true
		}
	}
	return 0, false
}

// testIncrease reports whether the line after the previous non-blank
// line should have its indent increased, per that previous line's
// indent-increase pattern.
func (e *Engine) testIncrease(line int) bool {
	prev, ok := e.previousNonblankLine(line)
	if !ok {
		return false
	}
	meta := e.highlighter.MetadataForLine(prev, e.getLineStr(prev))
	return meta.IncreaseIndent
}

// testDecrease reports whether line itself matches the
// indent-decrease pattern.
func (e *Engine) testDecrease(line int) bool {
	if line == 0 || line >= e.countLines() {
		return false
	}
	meta := e.highlighter.MetadataForLine(line, e.getLineStr(line))
	return meta.DecreaseIndent
}
