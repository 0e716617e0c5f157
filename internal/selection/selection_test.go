package selection

import (
	"testing"

	"github.com/xonecas/viewengine/internal/breaks"
	"github.com/xonecas/viewengine/internal/rope"
)

func TestAddRegionMerges(t *testing.T) {
	s := New(0)
	s = s.AddRegion(Region{Start: 5, End: 10})
	s = s.AddRegion(Region{Start: 8, End: 12})
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (caret + merged range)", s.Len())
	}
	last := s.Last()
	if last.Min() != 5 || last.Max() != 12 {
		t.Fatalf("merged region = %+v, want [5,12)", last)
	}
}

func TestDeleteRangeNeverEmptiesWithKeepLast(t *testing.T) {
	s := New(0)
	s = s.AddRegion(Region{Start: 5, End: 10})
	s = s.DeleteRange(5, 10, true)
	s = s.DeleteRange(0, 0, true)
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 (never empty)", s.Len())
	}
}

func TestApplyDeltaDriftDefault(t *testing.T) {
	sel := New(5)
	d := rope.Delta{Start: 5, End: 5, Insert: "xyz"}
	out := sel.ApplyDelta(d, true, DriftDefault)
	if got := out.Last(); got.Start != 8 || got.End != 8 {
		t.Fatalf("caret after insert = %+v, want caret@8", got)
	}
}

func TestApplyDeltaShiftsAfterEdit(t *testing.T) {
	sel := FromRegion(Region{Start: 10, End: 15})
	d := rope.Delta{Start: 0, End: 0, Insert: "abc"}
	out := sel.ApplyDelta(d, true, DriftDefault)
	r := out.Last()
	if r.Start != 13 || r.End != 18 {
		t.Fatalf("region after prefix insert = %+v, want [13,18)", r)
	}
}

func TestMoveLineStartEnd(t *testing.T) {
	text := rope.New("hello\nworld")
	sel := New(8) // inside "world"
	sel = Move(LineStart, sel, text, breaks.Empty(), false)
	if got := sel.Last(); got.Start != 6 {
		t.Fatalf("LineStart = %+v, want caret@6", got)
	}
	sel = New(2)
	sel = Move(LineEnd, sel, text, breaks.Empty(), false)
	if got := sel.Last(); got.Start != 5 {
		t.Fatalf("LineEnd = %+v, want caret@5", got)
	}
}

func TestMoveLeftRight(t *testing.T) {
	text := rope.New("abc")
	sel := New(1)
	sel = Move(Right, sel, text, breaks.Empty(), false)
	if sel.Last().Start != 2 {
		t.Fatalf("Right = %+v, want caret@2", sel.Last())
	}
	sel = Move(Left, sel, text, breaks.Empty(), false)
	sel = Move(Left, sel, text, breaks.Empty(), false)
	if sel.Last().Start != 0 {
		t.Fatalf("Left Left = %+v, want caret@0", sel.Last())
	}
}

func TestGestureSelectWord(t *testing.T) {
	text := rope.New("hello world")
	sel := New(0)
	g := Gesture{Type: Select, Granularity: Word, Multi: false}
	out := SelectionForGesture(text, sel, 7, g) // inside "world"
	r := out.Last()
	if text.Slice(r.Min(), r.Max()) != "world" {
		t.Fatalf("word selection = %q, want %q", text.Slice(r.Min(), r.Max()), "world")
	}
}

func TestGestureTogglesOffMultiSelectButNeverEmpties(t *testing.T) {
	text := rope.New("a b c")
	sel := New(0)
	sel = sel.AddRegion(Caret(2))
	g := Gesture{Type: Select, Granularity: Point, Multi: true}
	out := SelectionForGesture(text, sel, 0, g)
	if out.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after toggling off one of two carets", out.Len())
	}
}
