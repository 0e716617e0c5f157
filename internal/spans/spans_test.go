package spans

import "testing"

func TestBuilderAddAndMerge(t *testing.T) {
	b := NewBuilder[int](10)
	b.Add(0, 3, 1)
	b.Add(3, 5, 1) // adjacent, same value: should merge
	b.Add(5, 8, 2)
	s := b.Build()
	all := s.All()
	if len(all) != 2 {
		t.Fatalf("got %d spans, want 2: %+v", len(all), all)
	}
	if all[0].Start != 0 || all[0].End != 5 || all[0].Value != 1 {
		t.Errorf("merged span wrong: %+v", all[0])
	}
	if all[1].Start != 5 || all[1].End != 8 || all[1].Value != 2 {
		t.Errorf("second span wrong: %+v", all[1])
	}
}

func TestSubseq(t *testing.T) {
	b := NewBuilder[string](10)
	b.Add(0, 4, "a")
	b.Add(4, 9, "b")
	s := b.Build()
	sub := s.Subseq(2, 6)
	all := sub.All()
	if len(all) != 2 {
		t.Fatalf("got %d spans, want 2: %+v", len(all), all)
	}
	if all[0].Start != 0 || all[0].End != 2 || all[0].Value != "a" {
		t.Errorf("first clipped span wrong: %+v", all[0])
	}
	if all[1].Start != 2 || all[1].End != 4 || all[1].Value != "b" {
		t.Errorf("second clipped span wrong: %+v", all[1])
	}
}

func TestEditSplice(t *testing.T) {
	b := NewBuilder[int](10)
	b.Add(0, 10, 1)
	s := b.Build()

	rb := NewBuilder[int](4)
	rb.Add(0, 4, 2)
	replacement := rb.Build()

	out := s.Edit(3, 5, replacement)
	if out.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", out.Len())
	}
	all := out.All()
	if len(all) != 3 {
		t.Fatalf("got %d spans, want 3: %+v", len(all), all)
	}
}
