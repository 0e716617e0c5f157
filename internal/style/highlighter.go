package style

import (
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	chromastyles "github.com/alecthomas/chroma/v2/styles"

	"github.com/xonecas/viewengine/internal/spans"
)

// Highlighter owns a lexer/theme pair and the session's style table.
// HighlightAll tokenises the whole document from scratch on every
// call; there is no incremental rework.
type Highlighter struct {
	Lang, Theme string
	table       *Table
	goIdx       *goIndentIndex
}

// NewHighlighter returns a Highlighter for lang and theme. Each
// HighlightAll call looks up lang's Chroma lexer and theme's Chroma
// style, falling back to plain text / a default theme if either is
// unknown.
func NewHighlighter(lang, theme string) *Highlighter {
	return &Highlighter{Lang: lang, Theme: theme, table: NewTable()}
}

// HighlightAll tokenises the whole document and returns a freshly
// built Spans of interned StyleIds.
func (h *Highlighter) HighlightAll(text string) spans.Spans[ID] {
	b := spans.NewBuilder[ID](len(text))

	if h.Lang == "go" {
		h.goIdx = buildGoIndentIndex([]byte(text))
	} else {
		h.goIdx = nil
	}

	lex := lexers.Get(h.Lang)
	if lex == nil {
		lex = lexers.Fallback
	}
	lex = chroma.Coalesce(lex)

	sty := chromastyles.Get(h.Theme)
	if sty == nil {
		sty = chromastyles.Fallback
	}

	it, err := lex.Tokenise(nil, text)
	if err != nil {
		return b.Build()
	}

	offset := 0
	for tok := it(); tok.Type != chroma.EOF; tok = it() {
		entry := sty.Get(tok.Type)
		id := h.table.Intern(styleFromEntry(entry))
		n := len(tok.Value)
		if n > 0 {
			b.Add(offset, offset+n, id)
			offset += n
		}
	}
	return b.Build()
}

// TakeNewStyles drains the session's pending-new-styles list; its
// result must be sent to the host before any span using those ids.
func (h *Highlighter) TakeNewStyles() []New {
	return h.table.TakeNewStyles()
}

// RefreshIndentIndex rebuilds the Go parse-tree indent index against
// text without touching the style table or spans. Callers that need
// metadata_for_line to reflect an edit before the next HighlightAll
// (auto-indent runs between the primary edit and rehighlight) call
// this first; every other language's metadata comes from per-line
// regexes and needs no such refresh.
func (h *Highlighter) RefreshIndentIndex(text string) {
	if h.Lang == "go" {
		h.goIdx = buildGoIndentIndex([]byte(text))
	} else {
		h.goIdx = nil
	}
}

func styleFromEntry(e chroma.StyleEntry) Style {
	var s Style
	if e.Colour.IsSet() {
		s.FgRGBA = PackRGBA(e.Colour.Red(), e.Colour.Green(), e.Colour.Blue(), 0xff)
	}
	if e.Background.IsSet() {
		s.BgRGBA = PackRGBA(e.Background.Red(), e.Background.Green(), e.Background.Blue(), 0xff)
	}
	s.Bold = e.Bold == chroma.Yes
	s.Italic = e.Italic == chroma.Yes
	s.Under = e.Underline == chroma.Yes
	return s
}
