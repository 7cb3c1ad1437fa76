// Package events turns a tcell screen into a lazy stream of tick, key, and
// resize events. Consumption is pull-based: the channel blocks between
// events, and ticks arrive at a steady cadence independent of key activity.
package events

import (
	"time"

	"github.com/gdamore/tcell/v2"
)

// backlog bounds the raw tcell event queue so a burst of input never blocks
// the poll goroutine.
const backlog = 100

// Event is one of Tick, Key, or Resize.
type Event interface {
	event()
}

// Tick marks a frame boundary. It carries no payload.
type Tick struct{}

// Key is a single key action.
type Key struct {
	Code tcell.Key
	Rune rune
	Mods tcell.ModMask
}

// Resize reports new terminal dimensions.
type Resize struct {
	Width, Height uint16
}

func (Tick) event()   {}
func (Key) event()    {}
func (Resize) event() {}

// Model selects how the stream paces frame ticks.
type Model struct {
	fps int
}

// Fps delivers ticks at the given frame rate.
func Fps(n int) Model {
	return Model{fps: n}
}

const defaultFps = 60

// Stream produces events from the screen until stop is closed or the screen
// is finalized, then closes the returned channel. The stream owns a single
// goroutine pair; no other concurrency touches the consumer's state.
func Stream(screen tcell.Screen, model Model, stop <-chan struct{}) <-chan Event {
	fps := model.fps
	if fps <= 0 {
		fps = defaultFps
	}

	raw := make(chan tcell.Event, backlog)
	go func() {
		defer close(raw)
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case raw <- ev:
			case <-stop:
				return
			}
		}
	}()

	out := make(chan Event)
	go func() {
		defer close(out)
		ticker := time.NewTicker(time.Second / time.Duration(fps))
		defer ticker.Stop()

		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				select {
				case out <- Tick{}:
				case <-stop:
					return
				}
			case ev, ok := <-raw:
				if !ok {
					return
				}
				converted, ok := convert(ev)
				if !ok {
					continue
				}
				select {
				case out <- converted:
				case <-stop:
					return
				}
			}
		}
	}()

	return out
}

func convert(ev tcell.Event) (Event, bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return Key{Code: ev.Key(), Rune: ev.Rune(), Mods: ev.Modifiers()}, true
	case *tcell.EventResize:
		w, h := ev.Size()
		return Resize{Width: uint16(w), Height: uint16(h)}, true
	default:
		return nil, false
	}
}
