// worldwalk is a small scrolling-world demo: an @ walks a grass field while
// a dead-zone camera follows and a mob paces back and forth.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/solvreck/termgrid/camera"
	"github.com/solvreck/termgrid/events"
	"github.com/solvreck/termgrid/geom"
	"github.com/solvreck/termgrid/render"
	"github.com/solvreck/termgrid/terminal"
	"github.com/solvreck/termgrid/widgets"
)

const (
	fps            = 20
	statusHeight   = 3
	worldTop       = 4
	deadZone       = 5
	grassRadius    = 12
	mobRange       = 10
	mobLegSeconds  = 4.0
	trailLength    = 6
	sampleRate     = beep.SampleRate(44100)
	blipFreq       = 880
	blipDurationMs = 40
)

var (
	colorPlayer = tcell.ColorYellow
	colorMob    = tcell.ColorRed
	colorGrass  = tcell.ColorGreen
	colorFrame  = tcell.ColorWhite
	colorStatus = tcell.ColorRed
	trailFrom   = tcell.ColorWhite
	trailTo     = tcell.ColorGreen
)

type mob struct {
	pos   geom.WorldPos
	base  int64
	tween *gween.Tween
	back  bool
}

func newMob(pos geom.WorldPos) *mob {
	return &mob{
		pos:   pos,
		base:  pos.X,
		tween: gween.New(0, mobRange, mobLegSeconds, ease.InOutQuad),
	}
}

// update advances the mob along its pacing leg, reversing at each end.
func (m *mob) update(dt float32) {
	offset, done := m.tween.Update(dt)
	m.pos.X = m.base + int64(offset+0.5)
	if done {
		if m.back {
			m.tween = gween.New(0, mobRange, mobLegSeconds, ease.InOutQuad)
		} else {
			m.tween = gween.New(mobRange, 0, mobLegSeconds, ease.InOutQuad)
		}
		m.back = !m.back
	}
}

type game struct {
	target   *terminal.Target
	renderer *render.Renderer

	world  *render.Viewport
	status *render.Viewport
	cam    *camera.Tracking

	player geom.WorldPos
	mob    *mob
	grass  []geom.WorldPos
	trail  []geom.WorldPos

	frame *widgets.Border
	audio bool
}

func newGame(target *terminal.Target) *game {
	g := &game{
		target:   target,
		renderer: render.NewRenderer(target),
		player:   geom.ZeroWorldPos(),
		mob:      newMob(geom.NewWorldPos(-2, -6)),
		frame:    widgets.NewBorder(widgets.RoundedBorder, &colorFrame, nil),
	}
	g.layout(target.Size())
	g.grass = grassField(g.player, grassRadius)

	if err := g.initAudio(); err != nil {
		// Non-fatal, the demo runs silently without a speaker.
		log.Printf("audio init failed: %v", err)
	}
	return g
}

// layout builds the viewports and camera for the current terminal size.
// The screen is cleared so a shrink leaves no stale glyphs outside the new
// viewports; both previous buffers start empty and would never erase them.
func (g *game) layout(size geom.ScreenSize) {
	g.target.Clear()
	worldSize := geom.NewScreenSize(size.Width/2, size.Height/2)
	g.world = render.NewViewport(geom.NewScreenPos(0, worldTop), worldSize)
	g.status = render.NewViewport(geom.ZeroScreenPos(), geom.NewScreenSize(size.Width, statusHeight))
	g.cam = camera.FromViewport(g.player, g.world).WithDeadZone(deadZone, deadZone, deadZone, deadZone)
}

func (g *game) initAudio() error {
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	g.audio = true
	return nil
}

func (g *game) blip() {
	if !g.audio {
		return
	}
	sine, err := generators.SineTone(sampleRate, blipFreq)
	if err != nil {
		return
	}
	speaker.Play(beep.Take(sampleRate.N(blipDurationMs*time.Millisecond), sine))
}

func (g *game) movePlayer(dx, dy int64) {
	g.trail = append(g.trail, g.player)
	if len(g.trail) > trailLength {
		g.trail = g.trail[1:]
	}
	g.player.X += dx
	g.player.Y += dy
	g.blip()
}

// tick draws one frame and pushes the delta to the terminal.
func (g *game) tick() error {
	g.mob.update(1.0 / fps)
	g.cam.Track(g.player)

	for _, pos := range g.grass {
		g.world.DrawPixel(render.NewPixel('w', g.cam.ToScreen(pos), &colorGrass, nil))
	}
	for i, pos := range g.trail {
		shade := render.Fade(trailFrom, trailTo, float64(i+1)/float64(len(g.trail)+1))
		g.world.DrawPixel(render.NewPixel('·', g.cam.ToScreen(pos), &shade, nil))
	}
	g.world.DrawPixel(render.NewPixel('&', g.cam.ToScreen(g.mob.pos), &colorMob, nil))
	g.world.DrawPixel(render.NewPixel('@', g.cam.ToScreen(g.player), &colorPlayer, nil))
	g.world.DrawWidget(g.frame, geom.ZeroScreenPos())

	line := fmt.Sprintf("player x %d | y %d  camera x %d | y %d",
		g.player.X, g.player.Y, g.cam.Position().X, g.cam.Position().Y)
	g.status.DrawWidget(g.frame, geom.ZeroScreenPos())
	g.status.DrawWidget(widgets.NewText(line, &colorStatus, nil), geom.NewScreenPos(1, 1))

	if err := g.renderer.Render(g.status); err != nil {
		return err
	}
	if err := g.renderer.Render(g.world); err != nil {
		return err
	}
	g.status.SwapBuffers()
	g.world.SwapBuffers()
	return nil
}

func (g *game) run() error {
	stop := make(chan struct{})
	defer close(stop)

	for ev := range events.Stream(g.target.Screen(), events.Fps(fps), stop) {
		switch ev := ev.(type) {
		case events.Tick:
			if err := g.tick(); err != nil {
				return err
			}
		case events.Key:
			switch {
			case ev.Code == tcell.KeyEscape || ev.Code == tcell.KeyCtrlC:
				return nil
			case ev.Code == tcell.KeyLeft:
				g.movePlayer(-1, 0)
			case ev.Code == tcell.KeyRight:
				g.movePlayer(1, 0)
			case ev.Code == tcell.KeyUp:
				g.movePlayer(0, -1)
			case ev.Code == tcell.KeyDown:
				g.movePlayer(0, 1)
			}
		case events.Resize:
			g.layout(geom.NewScreenSize(ev.Width, ev.Height))
		}
	}
	return nil
}

// grassField returns world positions in a square around the center.
func grassField(center geom.WorldPos, radius int64) []geom.WorldPos {
	var field []geom.WorldPos
	for x := center.X - radius; x < center.X+radius; x += 2 {
		for y := center.Y - radius; y < center.Y+radius; y += 2 {
			field = append(field, geom.NewWorldPos(x, y))
		}
	}
	return field
}

// closeAudio shuts the speaker down once; safe to call again afterwards.
func (g *game) closeAudio() {
	if g.audio {
		speaker.Close()
		g.audio = false
	}
}

func main() {
	target, err := terminal.New()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer target.Fini()

	g := newGame(target)
	defer g.closeAudio()

	if err := g.run(); err != nil {
		// os.Exit skips the defers; release audio and the terminal here.
		g.closeAudio()
		target.Fini()
		fmt.Fprintf(os.Stderr, "render failed: %v\n", err)
		os.Exit(1)
	}
}
