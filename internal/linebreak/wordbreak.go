package linebreak

import (
	"strings"

	"github.com/clipperhouse/uax29/v2/words"
)

// wordSeg is one UAX#29 word-boundary segment, located within the
// source text by byte offset.
type wordSeg struct {
	start, end int
	text       string
	hard       bool // segment contains a hard line break
}

// segment splits text into UAX#29 word-boundary segments starting at
// byte offset start. A segment containing a newline is marked hard;
// every other segment (word, run of spaces, punctuation run) is soft.
func segment(text string, start int) []wordSeg {
	rest := text[start:]
	var out []wordSeg
	seg := words.NewSegmenter([]byte(rest))
	offset := start
	for seg.Next() {
		b := seg.Bytes()
		s := string(b)
		out = append(out, wordSeg{
			start: offset,
			end:   offset + len(b),
			text:  s,
			hard:  strings.ContainsRune(s, '\n'),
		})
		offset += len(b)
	}
	return out
}
