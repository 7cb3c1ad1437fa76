package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
)

// Fade interpolates between two colors in Lab space, which keeps perceived
// brightness even across the ramp (plain RGB lerp dips through muddy
// midtones). t is clamped to [0,1]; 0 yields from, 1 yields to.
func Fade(from, to Color, t float64) Color {
	if t <= 0 {
		return from
	}
	if t >= 1 {
		return to
	}

	fr, fg, fb := from.RGB()
	tr, tg, tb := to.RGB()

	a := colorful.Color{R: float64(fr) / 255, G: float64(fg) / 255, B: float64(fb) / 255}
	b := colorful.Color{R: float64(tr) / 255, G: float64(tg) / 255, B: float64(tb) / 255}
	m := a.BlendLab(b, t).Clamped()

	return tcell.NewRGBColor(
		int32(m.R*255+0.5),
		int32(m.G*255+0.5),
		int32(m.B*255+0.5),
	)
}
