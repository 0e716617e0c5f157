// Package linebreak computes soft/hard line breaks over a document by
// walking UAX#29 word boundaries against a caller-supplied view width.
package linebreak

import (
	"github.com/xonecas/viewengine/internal/breaks"
	"github.com/xonecas/viewengine/internal/widthcache"
)

// Rewrap builds a fresh Breaks sequence for text[start:], wrapping at
// viewWidth. The caller is responsible for slicing text down to the
// region being rewrapped; whole-document rebuild is the default, and
// callers may always choose that over incremental rework.
func Rewrap(text string, start int, cache *widthcache.Cache, viewWidth int) breaks.Breaks {
	segs := segment(text, start)
	b := breaks.NewBuilder()

	lineStart := start
	curWidth := 0
	pendingHard := false

	flush := func(end, width int) {
		b.AddBreak(end-lineStart, width)
		lineStart = end
		curWidth = 0
	}

	for _, seg := range segs {
		if pendingHard {
			flush(seg.start, curWidth)
			pendingHard = false
		}

		w := cache.Measure(seg.text).Width

		if !seg.hard {
			switch {
			case curWidth == 0 && w >= viewWidth:
				// long word on its own line
				flush(seg.end, w)
			case curWidth+w <= viewWidth:
				curWidth += w
			default:
				// overflow: break at the previous candidate position,
				// start a new line with this word
				flush(seg.start, curWidth)
				curWidth = w
			}
			continue
		}

		// hard candidate
		if curWidth > 0 && curWidth+w > viewWidth {
			// emit the soft break first; defer the hard break
			flush(seg.start, curWidth)
			curWidth = w
			pendingHard = true
		} else {
			flush(seg.end, curWidth+w)
		}
	}

	textLen := len(text)
	if pendingHard {
		flush(textLen, curWidth)
	} else if curWidth > 0 {
		// end-of-text trailing no-break record
		flush(textLen, curWidth)
	}

	return b.Build()
}
