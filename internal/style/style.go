// Package style owns the Style/StyleId interning table and the
// syntax highlighter built on top of it.
package style

// RGBA packs r,g,b,a into a single word the same way the source this
// spec line of work descends from does: (a<<24)|(r<<16)|(g<<8)|b.
type RGBA = uint32

// ID uniquely names a Style for the life of a view, so the host only
// needs to be told about a given Style once.
type ID = uint32

// Style is the normalised, theme-independent description of how a
// span of text should render.
type Style struct {
	FgRGBA, BgRGBA      RGBA
	Italic, Bold, Under bool
}

// PackRGBA packs 8-bit channel values into an RGBA word.
func PackRGBA(r, g, b, a uint8) RGBA {
	return uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b)
}

// New is a newly minted (id, Style) pair not yet reported to the host.
type New struct {
	ID    ID
	Style Style
}
