package view

import (
	"github.com/xonecas/viewengine/internal/breaks"
	"github.com/xonecas/viewengine/internal/linebreak"
	"github.com/xonecas/viewengine/internal/rope"
	"github.com/xonecas/viewengine/internal/widthcache"
)

// rewrap builds a fresh Breaks over the whole document at viewWidth.
// Every call rewraps the whole document; Breaks has no splice
// operation for incremental rewrap.
func rewrap(text rope.Text, cache *widthcache.Cache, viewWidth int) breaks.Breaks {
	return linebreak.Rewrap(text.String(), 0, cache, viewWidth)
}
