package style

import (
	"path/filepath"
	"regexp"
	"strings"
)

// LanguageForPath returns the Chroma language identifier for a file
// path, defaulting to "text".
func LanguageForPath(path string) string {
	languageMap := map[string]string{
		".go": "go", ".py": "python", ".js": "javascript", ".ts": "typescript",
		".jsx": "jsx", ".tsx": "tsx", ".java": "java", ".c": "c", ".cpp": "cpp",
		".cc": "cpp", ".h": "c", ".hpp": "cpp", ".cs": "csharp", ".rb": "ruby",
		".php": "php", ".rs": "rust", ".swift": "swift", ".kt": "kotlin",
		".scala": "scala", ".sh": "bash", ".bash": "bash", ".zsh": "zsh",
		".json": "json", ".yaml": "yaml", ".yml": "yaml", ".toml": "toml",
		".html": "html", ".css": "css", ".md": "markdown", ".lua": "lua",
	}
	ext := strings.ToLower(filepath.Ext(path))
	if lang, ok := languageMap[ext]; ok {
		return lang
	}
	return "text"
}

// indentRule describes a language's indentation conventions: the
// line-comment prefix, the regex matching a line after which the
// next line's indent level increases, and the regex matching a line
// whose own indent level decreases.
type indentRule struct {
	CommentPrefix string
	Increase      *regexp.Regexp
	Decrease      *regexp.Regexp
}

var curlyBrace = indentRule{
	CommentPrefix: "// ",
	Increase:      regexp.MustCompile(`\{\s*$`),
	Decrease:      regexp.MustCompile(`^\s*\}`),
}

var hashComment = indentRule{
	CommentPrefix: "# ",
	Increase:      regexp.MustCompile(`:\s*$`),
	Decrease:      regexp.MustCompile(`^\s*(return|break|continue|pass|raise)\b`),
}

var languageRules = map[string]indentRule{
	"go":         curlyBrace,
	"c":          curlyBrace,
	"cpp":        curlyBrace,
	"java":       curlyBrace,
	"csharp":     curlyBrace,
	"javascript": curlyBrace,
	"typescript": curlyBrace,
	"jsx":        curlyBrace,
	"tsx":        curlyBrace,
	"rust":       curlyBrace,
	"swift":      curlyBrace,
	"kotlin":     curlyBrace,
	"scala":      curlyBrace,
	"python":     hashComment,
	"bash":       hashComment,
	"zsh":        hashComment,
	"ruby":       {CommentPrefix: "# ", Increase: regexp.MustCompile(`\b(do|then|def|class|module)\s*$`), Decrease: regexp.MustCompile(`^\s*end\b`)},
}

func ruleFor(lang string) indentRule {
	if r, ok := languageRules[lang]; ok {
		return r
	}
	return indentRule{CommentPrefix: "// "}
}

// LineCommentPrefix returns the line-comment marker for lang.
func LineCommentPrefix(lang string) string {
	return ruleFor(lang).CommentPrefix
}
