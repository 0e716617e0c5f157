package widthcache

import "github.com/mattn/go-runewidth"

// ReferenceMeasure is a concrete MeasureFunc for tests and the
// terminal reference host (cmd/viewhost): one logical pixel per
// terminal cell, one cell-row per line, using go-runewidth for
// double-width/combining-aware column counts. The real width
// measurement is always host-owned; this exists because something
// concrete has to stand in for it outside of an actual windowed host.
func ReferenceMeasure(s string) Size {
	return Size{Width: runewidth.StringWidth(s), Height: 1}
}
