package rope

import "testing"

func TestBasics(t *testing.T) {
	txt := New("hello\nworld\nfoo")
	if txt.Len() != 15 {
		t.Fatalf("Len() = %d, want 15", txt.Len())
	}
	if got := txt.String(); got != "hello\nworld\nfoo" {
		t.Fatalf("String() = %q", got)
	}
	if got := txt.CountLines(); got != 3 {
		t.Fatalf("CountLines() = %d, want 3", got)
	}
}

func TestLineOffsets(t *testing.T) {
	txt := New("one\ntwo\nthree")
	cases := []struct {
		offset, wantLine int
	}{
		{0, 0}, {3, 0}, {4, 1}, {7, 1}, {8, 2}, {12, 2},
	}
	for _, c := range cases {
		if got := txt.LineOfOffset(c.offset); got != c.wantLine {
			t.Errorf("LineOfOffset(%d) = %d, want %d", c.offset, got, c.wantLine)
		}
	}
	wantStarts := []int{0, 4, 8}
	for line, want := range wantStarts {
		if got := txt.OffsetOfLine(line); got != want {
			t.Errorf("OffsetOfLine(%d) = %d, want %d", line, got, want)
		}
	}
	if got := txt.OffsetOfLine(3); got != txt.Len() {
		t.Errorf("OffsetOfLine(3) = %d, want %d", got, txt.Len())
	}
}

func TestSliceAcrossLeafBoundary(t *testing.T) {
	big := ""
	for i := 0; i < 2000; i++ {
		big += "x"
	}
	txt := New(big)
	if got := txt.Slice(999, 1002); got != "xxx" {
		t.Fatalf("Slice across leaves = %q", got)
	}
}

func TestDeltaApplyAndSummary(t *testing.T) {
	txt := New("hello world")
	d := Delta{Start: 5, End: 6, Insert: ", "}
	newText := d.Apply(txt)
	if got := newText.String(); got != "hello, world" {
		t.Fatalf("Apply = %q", got)
	}
	start, end, newLen := d.Summary(txt.Len())
	if start != 5 || end != 7 || newLen != 12 {
		t.Fatalf("Summary = (%d,%d,%d), want (5,7,12)", start, end, newLen)
	}
}

func TestDeltaEmptyIsNoop(t *testing.T) {
	txt := New("abc")
	d := Delta{Start: 1, End: 1, Insert: ""}
	if !d.Empty() {
		t.Fatal("expected empty delta")
	}
	if got := d.Apply(txt).String(); got != "abc" {
		t.Fatalf("Apply of empty delta = %q", got)
	}
}
