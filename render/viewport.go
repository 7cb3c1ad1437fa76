package render

import (
	"github.com/solvreck/termgrid/geom"
)

// Widget is anything that can paint itself into a pixel buffer at an offset.
type Widget interface {
	Paint(buf *PixelBuffer, origin geom.ScreenPos)
}

// Viewport is a double-buffered drawing surface at a fixed screen placement.
// Game code draws into the active buffer in viewport-local coordinates
// (0,0 is the viewport's own top left); the renderer diffs active against
// previous and the two are swapped once per frame.
type Viewport struct {
	Position geom.ScreenPos
	Size     geom.ScreenSize

	active   *PixelBuffer
	previous *PixelBuffer
}

// NewViewport creates a viewport at a screen position with both buffers
// empty and sized identically.
func NewViewport(pos geom.ScreenPos, size geom.ScreenSize) *Viewport {
	return &Viewport{
		Position: pos,
		Size:     size,
		active:   NewPixelBuffer(size),
		previous: NewPixelBuffer(size),
	}
}

// DrawPixel writes a pixel into the active buffer.
func (v *Viewport) DrawPixel(px Pixel) {
	v.active.Write(px)
}

// DrawPixels writes pixels into the active buffer in order.
func (v *Viewport) DrawPixels(pixels []Pixel) {
	v.active.WriteMany(pixels)
}

// DrawWidget lets the widget paint into the active buffer, offset by origin.
func (v *Viewport) DrawWidget(w Widget, origin geom.ScreenPos) {
	w.Paint(v.active, origin)
}

// SwapBuffers makes the just-painted buffer the previous frame and clears
// the new active buffer, so each frame starts from a clean slate while the
// diff still sees the last fully rendered frame. The two buffers never
// alias.
func (v *Viewport) SwapBuffers() {
	v.active, v.previous = v.previous, v.active
	v.active.Clear()
}

// Resize rebuilds both buffers at the new size. Contents are discarded;
// the next render repaints every cell.
func (v *Viewport) Resize(size geom.ScreenSize) {
	v.Size = size
	v.active = NewPixelBuffer(size)
	v.previous = NewPixelBuffer(size)
}
