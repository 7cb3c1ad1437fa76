// Package render provides the buffering and frame-diff engine: pixel grids
// with double buffering, and a renderer that forwards only changed cells to
// an output target.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/solvreck/termgrid/geom"
)

// Color is the terminal palette color a pixel carries. The engine stores and
// forwards it without interpreting it; nil (via *Color) means "inherit the
// terminal default", resolved only at the output target.
type Color = tcell.Color

// Pixel is the atomic drawable unit: a glyph at a screen position with
// optional foreground and background colors.
type Pixel struct {
	Glyph rune
	Pos   geom.ScreenPos
	Fg    *Color
	Bg    *Color
}

// NewPixel creates a pixel. fg and bg may be nil to inherit the terminal
// default for that channel.
func NewPixel(glyph rune, pos geom.ScreenPos, fg, bg *Color) Pixel {
	return Pixel{Glyph: glyph, Pos: pos, Fg: fg, Bg: bg}
}

// Plain creates a pixel with no explicit colors.
func Plain(glyph rune, pos geom.ScreenPos) Pixel {
	return Pixel{Glyph: glyph, Pos: pos}
}

// Equal reports whether two pixels are identical, treating optional colors
// as a tri-state (unset vs set-to-value).
func (p Pixel) Equal(other Pixel) bool {
	return p.Glyph == other.Glyph &&
		p.Pos == other.Pos &&
		colorEqual(p.Fg, other.Fg) &&
		colorEqual(p.Bg, other.Bg)
}

func colorEqual(a, b *Color) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
