package view

import (
	"strings"

	"github.com/xonecas/viewengine/internal/rope"
)

// toggleComment builds the delta list for ToggleComment over every
// line range the selection touches.
func (e *Engine) toggleComment() []rope.Delta {
	var out []rope.Delta
	for _, lr := range e.linesForSelection() {
		out = append(out, e.toggleCommentLineRange(lr)...)
	}
	return out
}

func (e *Engine) toggleCommentLineRange(lr lineRange) []rope.Delta {
	commentStr := e.highlighter.MetadataForLine(lr.start, e.getLineStr(lr.start)).CommentPrefix
	if commentStr == "" {
		return nil
	}

	allCommented, sawNonBlank := true, false
	for n := lr.start; n < lr.end; n++ {
		trimmed := strings.TrimSpace(e.getLineStr(n))
		if trimmed == "" {
			continue
		}
		sawNonBlank = true
		if trimmed != strings.TrimSpace(commentStr) && !strings.HasPrefix(trimmed, commentStr) {
			allCommented = false
			break
		}
	}
	if sawNonBlank && allCommented {
		return e.removeComment(lr, commentStr)
	}
	return e.addComment(lr, commentStr)
}

func (e *Engine) removeComment(lr lineRange, commentStr string) []rope.Delta {
	var out []rope.Delta
	for n := lr.start; n < lr.end; n++ {
		offset := e.text.OffsetOfLine(n)
		line := e.getLineStr(n)
		trimmed := strings.TrimSpace(line)
		if idx := strings.Index(line, commentStr); idx >= 0 {
			out = append(out, rope.Delta{Start: offset + idx, End: offset + idx + len(commentStr)})
		} else if trimmed == strings.TrimSpace(commentStr) {
			out = append(out, rope.Delta{Start: offset, End: offset + len(strings.TrimSpace(commentStr))})
		}
	}
	return out
}

func (e *Engine) addComment(lr lineRange, commentStr string) []rope.Delta {
	lineOffset := -1
	for n := lr.start; n < lr.end; n++ {
		line := e.getLineStr(n)
		pos := leadingWhitespaceLen(line)
		if lineOffset < 0 || pos < lineOffset {
			lineOffset = pos
		}
	}
	if lineOffset < 0 {
		lineOffset = 0
	}

	var out []rope.Delta
	for n := lr.start; n < lr.end; n++ {
		line := e.getLineStr(n)
		if strings.HasPrefix(strings.TrimSpace(line), commentStr) {
			continue
		}
		offset := e.text.OffsetOfLine(n) + lineOffset
		out = append(out, rope.Delta{Start: offset, End: offset, Insert: commentStr})
	}
	return out
}

func leadingWhitespaceLen(line string) int {
	n := 0
	for n < len(line) && (line[n] == ' ' || line[n] == '\t') {
		n++
	}
	return n
}
