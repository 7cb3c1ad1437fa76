package render

import (
	"fmt"

	"github.com/solvreck/termgrid/geom"
)

// cell is one grid slot: an optional pixel.
type cell struct {
	px       Pixel
	occupied bool
}

// PixelBuffer is a fixed-size grid holding an optional colored glyph per
// cell. Dimensions are fixed at construction; writes outside the grid are
// silently clipped. Cells are stored flat, row-major.
type PixelBuffer struct {
	width  uint16
	height uint16
	cells  []cell
}

// NewPixelBuffer creates an empty buffer with the given dimensions.
func NewPixelBuffer(size geom.ScreenSize) *PixelBuffer {
	return &PixelBuffer{
		width:  size.Width,
		height: size.Height,
		cells:  make([]cell, int(size.Width)*int(size.Height)),
	}
}

// Size returns the buffer dimensions.
func (b *PixelBuffer) Size() geom.ScreenSize {
	return geom.ScreenSize{Width: b.width, Height: b.height}
}

func (b *PixelBuffer) inBounds(pos geom.ScreenPos) bool {
	return pos.X < b.width && pos.Y < b.height
}

func (b *PixelBuffer) index(pos geom.ScreenPos) int {
	return int(pos.Y)*int(b.width) + int(pos.X)
}

// Write stores the pixel at its position. Out-of-bounds pixels are dropped.
func (b *PixelBuffer) Write(px Pixel) {
	if !b.inBounds(px.Pos) {
		return
	}
	b.cells[b.index(px.Pos)] = cell{px: px, occupied: true}
}

// WriteMany writes the pixels in order; on overlapping positions the last
// write wins.
func (b *PixelBuffer) WriteMany(pixels []Pixel) {
	for _, px := range pixels {
		b.Write(px)
	}
}

// Cell returns the pixel at the position and whether the cell is occupied.
func (b *PixelBuffer) Cell(pos geom.ScreenPos) (Pixel, bool) {
	if !b.inBounds(pos) {
		return Pixel{}, false
	}
	c := b.cells[b.index(pos)]
	return c.px, c.occupied
}

// Clear resets every cell to empty using exponential copy.
func (b *PixelBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = cell{}
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// Change is one differing cell produced by Diff: the position and the new
// value. Blank means the cell became empty and should be erased.
type Change struct {
	Pos   geom.ScreenPos
	Pixel Pixel
	Blank bool
}

// Diff compares the buffer against another of identical dimensions and
// returns, in row-major order, every cell whose contents differ, carrying
// this buffer's value. Unequal dimensions are a contract violation and
// panic; the diff never truncates.
func (b *PixelBuffer) Diff(other *PixelBuffer) []Change {
	if b.width != other.width || b.height != other.height {
		panic(fmt.Sprintf("render: diff on mismatched buffers %dx%d vs %dx%d",
			b.width, b.height, other.width, other.height))
	}

	var changes []Change
	for i, c := range b.cells {
		o := other.cells[i]
		if c.occupied == o.occupied && (!c.occupied || c.px.Equal(o.px)) {
			continue
		}
		pos := geom.ScreenPos{
			X: uint16(i % int(b.width)),
			Y: uint16(i / int(b.width)),
		}
		changes = append(changes, Change{Pos: pos, Pixel: c.px, Blank: !c.occupied})
	}
	return changes
}
