// Package highlight renders interned style.Style values as ANSI
// truecolor escape sequences for a terminal host.
package highlight

import (
	"fmt"
	"strings"

	"github.com/xonecas/viewengine/internal/style"
)

// Reset is the ANSI sequence that clears every attribute set by SGR.
const Reset = "\x1b[0m"

// SGR renders a Style as an ANSI truecolor escape prefix: bold/italic/
// underline attributes followed by foreground and background
// truecolor sequences for whichever channel has a non-zero alpha.
// It operates directly on the engine's packed RGBA fields, for a host
// that already has one interned style per span.
func SGR(s style.Style) string {
	var b strings.Builder
	if s.Bold {
		b.WriteString("\x1b[1m")
	}
	if s.Italic {
		b.WriteString("\x1b[3m")
	}
	if s.Under {
		b.WriteString("\x1b[4m")
	}
	if r, g, bl, a := unpackRGBA(s.FgRGBA); a != 0 {
		fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm", r, g, bl)
	}
	if r, g, bl, a := unpackRGBA(s.BgRGBA); a != 0 {
		fmt.Fprintf(&b, "\x1b[48;2;%d;%d;%dm", r, g, bl)
	}
	return b.String()
}

func unpackRGBA(c style.RGBA) (r, g, b, a uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c), uint8(c >> 24)
}
