package undo

import "testing"

func TestUndoRedoBasic(t *testing.T) {
	s := NewStack[string](40)
	s.AddUndoGroup(Snapshot[string]{Text: "a"})
	s.AddUndoGroup(Snapshot[string]{Text: "ab"})
	s.AddUndoGroup(Snapshot[string]{Text: "abc"})

	if got, ok := s.Current(); !ok || got.Text != "abc" {
		t.Fatalf("Current() = %+v, %v, want abc, true", got, ok)
	}
	snap, ok := s.Undo()
	if !ok || snap.Text != "ab" {
		t.Fatalf("Undo() = %+v, %v, want ab, true", snap, ok)
	}
	snap, ok = s.Undo()
	if !ok || snap.Text != "a" {
		t.Fatalf("Undo() = %+v, %v, want a, true", snap, ok)
	}
	if _, ok = s.Undo(); ok {
		t.Fatalf("Undo() at oldest entry should fail")
	}
	snap, ok = s.Redo()
	if !ok || snap.Text != "ab" {
		t.Fatalf("Redo() = %+v, %v, want ab, true", snap, ok)
	}
}

func TestAddUndoGroupDropsRedoFuture(t *testing.T) {
	s := NewStack[string](40)
	s.AddUndoGroup(Snapshot[string]{Text: "a"})
	s.AddUndoGroup(Snapshot[string]{Text: "ab"})
	s.AddUndoGroup(Snapshot[string]{Text: "abc"})
	s.Undo()
	s.Undo()
	// now at "a"; a new edit should drop "ab" and "abc" from the future
	s.AddUndoGroup(Snapshot[string]{Text: "ax"})
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (a, ax)", s.Len())
	}
	if _, ok := s.Redo(); ok {
		t.Fatalf("Redo() should fail after the redo future was overwritten")
	}
}

func TestEvictsOverCapacity(t *testing.T) {
	s := NewStack[int](3)
	for i := 0; i < 5; i++ {
		s.AddUndoGroup(Snapshot[int]{Text: i})
	}
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3 (capacity bound)", s.Len())
	}
	cur, _ := s.Current()
	if cur.Text != 4 {
		t.Fatalf("Current().Text = %d, want 4", cur.Text)
	}
	// the oldest two (0, 1) must have been evicted from the front.
	for i := 0; i < 2; i++ {
		s.Undo()
	}
	cur, _ = s.Current()
	if cur.Text != 2 {
		t.Fatalf("after 2 undos Current().Text = %d, want 2 (0 and 1 evicted)", cur.Text)
	}
}

func TestBreaksUndoGroup(t *testing.T) {
	cases := []struct {
		et, prev EditType
		want     bool
	}{
		{InsertChars, InsertChars, false},
		{InsertChars, Delete, true},
		{Other, Other, true},
		{Transpose, Transpose, true},
	}
	for _, c := range cases {
		if got := c.et.BreaksUndoGroup(c.prev); got != c.want {
			t.Fatalf("%v.BreaksUndoGroup(%v) = %v, want %v", c.et, c.prev, got, c.want)
		}
	}
}

func TestUpdateCurrentUndo(t *testing.T) {
	s := NewStack[string](40)
	s.AddUndoGroup(Snapshot[string]{Text: "a", SelAfter: 0})
	s.UpdateCurrentUndo(func(snap *Snapshot[string]) {
		snap.SelAfter = 5
	})
	cur, _ := s.Current()
	if cur.SelAfter != 5 {
		t.Fatalf("SelAfter = %v, want 5", cur.SelAfter)
	}
}
