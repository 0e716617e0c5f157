package style

// LineMetadata carries the per-language indent and comment hints that
// metadata_for_line returns for one line.
type LineMetadata struct {
	IncreaseIndent bool
	DecreaseIndent bool
	CommentPrefix  string
}

// MetadataForLine returns indent/comment hints for line n (0-indexed),
// whose text is lineText. For Go, hints come from the parse tree
// built during the most recent HighlightAll or RefreshIndentIndex;
// every other language
// falls back to the regex patterns in its indentRule.
func (h *Highlighter) MetadataForLine(n int, lineText string) LineMetadata {
	rule := ruleFor(h.Lang)
	meta := LineMetadata{CommentPrefix: rule.CommentPrefix}

	if h.Lang == "go" && h.goIdx != nil {
		meta.IncreaseIndent = h.goIdx.increase[n]
		meta.DecreaseIndent = h.goIdx.decrease[n]
		return meta
	}
	if rule.Increase != nil {
		meta.IncreaseIndent = rule.Increase.MatchString(lineText)
	}
	if rule.Decrease != nil {
		meta.DecreaseIndent = rule.Decrease.MatchString(lineText)
	}
	return meta
}
