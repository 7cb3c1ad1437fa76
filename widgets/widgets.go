// Package widgets provides drawables that paint themselves into a pixel
// buffer at an offset, satisfying the render.Widget contract.
package widgets

import (
	"github.com/mattn/go-runewidth"

	"github.com/solvreck/termgrid/geom"
	"github.com/solvreck/termgrid/render"
)

// Text paints a single line of text left to right from the origin. Wide
// glyphs advance by their display width so following characters never
// overlap them.
type Text struct {
	Body string
	Fg   *render.Color
	Bg   *render.Color
}

var (
	_ render.Widget = (*Text)(nil)
	_ render.Widget = (*Border)(nil)
)

// NewText creates a text widget.
func NewText(body string, fg, bg *render.Color) *Text {
	return &Text{Body: body, Fg: fg, Bg: bg}
}

// Paint writes the text into the buffer. Runes past the right edge are
// clipped by the buffer.
func (t *Text) Paint(buf *render.PixelBuffer, origin geom.ScreenPos) {
	x := origin.X
	for _, r := range t.Body {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		buf.Write(render.NewPixel(r, geom.ScreenPos{X: x, Y: origin.Y}, t.Fg, t.Bg))
		x += uint16(w)
	}
}

// Border glyph positions within the construction string.
const (
	borderTL = iota
	borderTop
	borderTR
	borderRight
	borderBR
	borderBottom
	borderBL
	borderLeft
	borderGlyphs
)

// Border paints a frame around the buffer's extent, inset by the origin.
// It is built from an eight-glyph string ordered clockwise from the top
// left corner: tl, top, tr, right, br, bottom, bl, left.
type Border struct {
	glyphs [borderGlyphs]rune
	Fg     *render.Color
	Bg     *render.Color
}

// RoundedBorder is the glyph set for a border with rounded corners.
const RoundedBorder = "╭─╮│╯─╰│"

// NewBorder creates a border from an eight-glyph string. Shorter strings
// fall back to the rounded set.
func NewBorder(glyphs string, fg, bg *render.Color) *Border {
	runes := []rune(glyphs)
	if len(runes) < borderGlyphs {
		runes = []rune(RoundedBorder)
	}
	b := &Border{Fg: fg, Bg: bg}
	copy(b.glyphs[:], runes)
	return b
}

// Paint draws the frame along the edges of the region from origin to the
// buffer's bottom-right corner. Regions thinner than two cells are skipped.
func (b *Border) Paint(buf *render.PixelBuffer, origin geom.ScreenPos) {
	size := buf.Size()
	// Compare in int so an origin near the uint16 ceiling is skipped, not
	// wrapped into bounds.
	if int(origin.X)+2 > int(size.Width) || int(origin.Y)+2 > int(size.Height) {
		return
	}
	right := size.Width - 1
	bottom := size.Height - 1

	b.cell(buf, origin.X, origin.Y, borderTL)
	b.cell(buf, right, origin.Y, borderTR)
	b.cell(buf, origin.X, bottom, borderBL)
	b.cell(buf, right, bottom, borderBR)

	for x := origin.X + 1; x < right; x++ {
		b.cell(buf, x, origin.Y, borderTop)
		b.cell(buf, x, bottom, borderBottom)
	}
	for y := origin.Y + 1; y < bottom; y++ {
		b.cell(buf, origin.X, y, borderLeft)
		b.cell(buf, right, y, borderRight)
	}
}

func (b *Border) cell(buf *render.PixelBuffer, x, y uint16, glyph int) {
	buf.Write(render.NewPixel(b.glyphs[glyph], geom.ScreenPos{X: x, Y: y}, b.Fg, b.Bg))
}
