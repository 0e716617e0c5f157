package linebreak

import (
	"testing"

	"github.com/xonecas/viewengine/internal/widthcache"
)

func lenMeasure(s string) widthcache.Size {
	return widthcache.Size{Width: len(s), Height: 1}
}

func TestRewrapTotalBaseLenMatchesText(t *testing.T) {
	cache := widthcache.New(lenMeasure)
	text := "one two three four five six seven eight"
	b := Rewrap(text, 0, cache, 8)
	if got := b.TotalBaseLen(); got != len(text) {
		t.Fatalf("TotalBaseLen() = %d, want %d", got, len(text))
	}
}

func TestRewrapNoWrapWhenWide(t *testing.T) {
	cache := widthcache.New(lenMeasure)
	text := "hello world"
	b := Rewrap(text, 0, cache, 100)
	if got := b.Count(); got != 1 {
		t.Fatalf("Count() = %d, want 1 (no wrap needed)", got)
	}
	if got := b.TotalBaseLen(); got != len(text) {
		t.Fatalf("TotalBaseLen() = %d, want %d", got, len(text))
	}
}

func TestRewrapLongWordOnItsOwnLine(t *testing.T) {
	cache := widthcache.New(lenMeasure)
	text := "superlongwordthatoverflows x"
	b := Rewrap(text, 0, cache, 5)
	records := b.Records()
	if len(records) == 0 {
		t.Fatal("expected at least one break record")
	}
	firstWordLen := len("superlongwordthatoverflows")
	if records[0].BaseLen != firstWordLen || records[0].Width != firstWordLen {
		t.Fatalf("first record = %+v, want BaseLen/Width = %d (long word alone)", records[0], firstWordLen)
	}
}

func TestRewrapHardBreakSplitsLines(t *testing.T) {
	cache := widthcache.New(lenMeasure)
	text := "ab\ncd"
	b := Rewrap(text, 0, cache, 100)
	if got := b.TotalBaseLen(); got != len(text) {
		t.Fatalf("TotalBaseLen() = %d, want %d", got, len(text))
	}
	if b.Count() < 2 {
		t.Fatalf("Count() = %d, want at least 2 (hard break mid-text)", b.Count())
	}
}
