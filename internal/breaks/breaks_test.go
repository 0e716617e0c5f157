package breaks

import "testing"

func TestBuilderAccumulates(t *testing.T) {
	b := NewBuilder()
	b.AddBreak(4, 6) // "one "
	b.AddBreak(4, 6) // "two "
	b.AddBreak(6, 8) // "three "
	b.AddBreak(4, 4) // "four"
	built := b.Build()

	if built.Count() != 4 {
		t.Fatalf("Count() = %d, want 4", built.Count())
	}
	if built.MaxWidth() != 8 {
		t.Fatalf("MaxWidth() = %d, want 8", built.MaxWidth())
	}
	if built.TotalBaseLen() != 18 {
		t.Fatalf("TotalBaseLen() = %d, want 18", built.TotalBaseLen())
	}
}

func TestLineOfOffset(t *testing.T) {
	b := NewBuilder()
	b.AddBreak(5, 5)
	b.AddBreak(5, 5)
	b.AddBreak(5, 5)
	built := b.Build()

	cases := []struct {
		offset, want int
	}{
		{0, 0}, {4, 0}, {5, 1}, {9, 1}, {10, 2}, {14, 2}, {15, 3},
	}
	for _, c := range cases {
		if got := built.LineOfOffset(c.offset); got != c.want {
			t.Errorf("LineOfOffset(%d) = %d, want %d", c.offset, got, c.want)
		}
	}
}
