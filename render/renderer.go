package render

import (
	"fmt"

	"github.com/solvreck/termgrid/geom"
)

// Target is the output sink a renderer writes changed cells to. Positions
// are absolute screen coordinates. Implementations resolve nil colors to
// the terminal default.
type Target interface {
	// SetCell paints a glyph at an absolute position.
	SetCell(pos geom.ScreenPos, glyph rune, fg, bg *Color) error
	// ClearCell blanks the cell at an absolute position.
	ClearCell(pos geom.ScreenPos) error
	// Flush makes all writes since the last flush visible.
	Flush() error
}

// Renderer applies a viewport's pending changes to a target. It holds no
// per-frame state; the same renderer can drive any number of viewports.
type Renderer struct {
	target Target
}

// NewRenderer creates a renderer writing to the target.
func NewRenderer(target Target) *Renderer {
	return &Renderer{target: target}
}

// Render diffs the viewport's active buffer against its previous one and
// forwards each changed cell, translated to absolute coordinates, to the
// target. The first target failure aborts the remaining writes for this
// call; a partial frame may be left on the surface, the caller decides
// whether to retry next frame or shut down.
func (r *Renderer) Render(v *Viewport) error {
	for _, ch := range v.active.Diff(v.previous) {
		abs := ch.Pos.Translate(v.Position)
		if ch.Blank {
			if err := r.target.ClearCell(abs); err != nil {
				return fmt.Errorf("clear cell %d,%d: %w", abs.X, abs.Y, err)
			}
			continue
		}
		if err := r.target.SetCell(abs, ch.Pixel.Glyph, ch.Pixel.Fg, ch.Pixel.Bg); err != nil {
			return fmt.Errorf("set cell %d,%d: %w", abs.X, abs.Y, err)
		}
	}
	if err := r.target.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}
