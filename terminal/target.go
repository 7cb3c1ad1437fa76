// Package terminal provides the tcell-backed output target: raw-mode
// lifecycle and per-cell writes for the render package's diff output.
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/solvreck/termgrid/geom"
	"github.com/solvreck/termgrid/render"
)

// Target writes cells to a tcell screen. New acquires the screen and enters
// raw mode; Fini must be released on every exit path, normally via defer.
type Target struct {
	screen tcell.Screen
}

var _ render.Target = (*Target)(nil)

// New allocates the process terminal and puts it into raw mode.
func New() (*Target, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("terminal init: %w", err)
	}
	return &Target{screen: screen}, nil
}

// NewFor wraps an already-initialized screen. Used with tcell's simulation
// screen in tests and for alternate backends.
func NewFor(screen tcell.Screen) *Target {
	return &Target{screen: screen}
}

// Screen exposes the underlying tcell screen, e.g. for the event stream.
func (t *Target) Screen() tcell.Screen {
	return t.screen
}

// Size returns the current terminal dimensions.
func (t *Target) Size() geom.ScreenSize {
	w, h := t.screen.Size()
	return geom.ScreenSize{Width: uint16(w), Height: uint16(h)}
}

// SetCell paints a glyph at an absolute position. Nil colors resolve to the
// terminal default for that channel.
func (t *Target) SetCell(pos geom.ScreenPos, glyph rune, fg, bg *render.Color) error {
	style := tcell.StyleDefault
	if fg != nil {
		style = style.Foreground(*fg)
	}
	if bg != nil {
		style = style.Background(*bg)
	}
	t.screen.SetContent(int(pos.X), int(pos.Y), glyph, nil, style)
	return nil
}

// ClearCell blanks the cell at an absolute position.
func (t *Target) ClearCell(pos geom.ScreenPos) error {
	t.screen.SetContent(int(pos.X), int(pos.Y), ' ', nil, tcell.StyleDefault)
	return nil
}

// Clear blanks the entire screen on the next flush. Callers rebuilding
// their viewports after a resize use it so cells outside the new layout do
// not keep stale glyphs.
func (t *Target) Clear() {
	t.screen.Clear()
}

// Flush makes all pending writes visible.
func (t *Target) Flush() error {
	t.screen.Show()
	return nil
}

// Fini leaves raw mode and restores the terminal.
func (t *Target) Fini() {
	t.screen.Fini()
}
