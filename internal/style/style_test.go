package style

import "testing"

func TestTableInternsAndTracksNew(t *testing.T) {
	tbl := NewTable()
	a := Style{FgRGBA: PackRGBA(255, 0, 0, 255)}
	b := Style{FgRGBA: PackRGBA(0, 255, 0, 255)}

	id1 := tbl.Intern(a)
	id2 := tbl.Intern(b)
	id1Again := tbl.Intern(a)

	if id1 != id1Again {
		t.Fatalf("Intern(a) = %d then %d, want stable id", id1, id1Again)
	}
	if id1 == id2 {
		t.Fatalf("distinct styles got the same id %d", id1)
	}

	newStyles := tbl.TakeNewStyles()
	if len(newStyles) != 2 {
		t.Fatalf("TakeNewStyles() = %d entries, want 2", len(newStyles))
	}
	if more := tbl.TakeNewStyles(); more != nil {
		t.Fatalf("TakeNewStyles() after drain = %v, want nil", more)
	}
}

func TestHighlightAllCoversWholeText(t *testing.T) {
	h := NewHighlighter("go", "monokai")
	text := "package main\n\nfunc main() {}\n"
	sp := h.HighlightAll(text)
	if sp.Len() != len(text) {
		t.Fatalf("Spans.Len() = %d, want %d", sp.Len(), len(text))
	}
	if len(h.TakeNewStyles()) == 0 {
		t.Fatal("expected at least one newly minted style")
	}
}

func TestLanguageForPath(t *testing.T) {
	cases := map[string]string{
		"main.go": "go", "a.py": "python", "readme.md": "markdown", "x.unknownext": "text",
	}
	for path, want := range cases {
		if got := LanguageForPath(path); got != want {
			t.Errorf("LanguageForPath(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestMetadataForLineGoBraces(t *testing.T) {
	h := NewHighlighter("go", "monokai")
	text := "func f() {\n\tx := 1\n}\n"
	h.HighlightAll(text)

	m0 := h.MetadataForLine(0, "func f() {")
	if !m0.IncreaseIndent {
		t.Error("line 0 should increase indent (opens a block)")
	}
	m2 := h.MetadataForLine(2, "}")
	if !m2.DecreaseIndent {
		t.Error("line 2 should decrease indent (closes a block)")
	}
}
