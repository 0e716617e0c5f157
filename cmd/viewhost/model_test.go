package main

import (
	"strings"
	"testing"

	"github.com/xonecas/viewengine/internal/style"
	"github.com/xonecas/viewengine/internal/view"
)

func TestRenderLinePadsToWidthAndMarksCaret(t *testing.T) {
	caret := 3
	l := &view.Line{Text: "abc", Caret: &caret}
	out := renderLine(l, map[style.ID]style.Style{}, 6)
	stripped := stripANSI(out)
	if stripped != "abc   " {
		t.Fatalf("stripped = %q, want %q", stripped, "abc   ")
	}
	if !strings.Contains(out, "\x1b[7m") {
		t.Fatalf("rendered = %q, want a reverse-video caret marker", out)
	}
}

func TestRenderLineAppliesStyleRun(t *testing.T) {
	l := &view.Line{Text: "ab", StyleRuns: []view.StyleRun{{Start: 0, Length: 1, StyleID: 1}}}
	styles := map[style.ID]style.Style{1: {FgRGBA: style.PackRGBA(1, 2, 3, 255)}}
	out := renderLine(l, styles, 2)
	if !strings.Contains(out, "\x1b[38;2;1;2;3m") {
		t.Fatalf("rendered = %q, want the interned style's foreground sequence", out)
	}
}
