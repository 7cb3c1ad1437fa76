package events

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func simScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Expected simulation screen to init, got %v", err)
	}
	t.Cleanup(screen.Fini)
	return screen
}

// waitFor drains the stream until an event of the wanted kind arrives.
func waitFor[T Event](t *testing.T, stream <-chan Event) T {
	t.Helper()
	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev, ok := <-stream:
			if !ok {
				t.Fatal("Expected stream to stay open")
			}
			if want, isWant := ev.(T); isWant {
				return want
			}
		case <-deadline:
			var zero T
			t.Fatalf("Timed out waiting for %T", zero)
			return zero
		}
	}
}

func TestStreamDeliversTicks(t *testing.T) {
	screen := simScreen(t)
	stop := make(chan struct{})
	defer close(stop)

	stream := Stream(screen, Fps(100), stop)

	waitFor[Tick](t, stream)
	waitFor[Tick](t, stream)
}

func TestStreamConvertsKeyEvents(t *testing.T) {
	screen := simScreen(t)
	stop := make(chan struct{})
	defer close(stop)

	stream := Stream(screen, Fps(100), stop)
	screen.InjectKey(tcell.KeyRune, 'a', tcell.ModAlt)

	key := waitFor[Key](t, stream)
	if key.Code != tcell.KeyRune || key.Rune != 'a' || key.Mods != tcell.ModAlt {
		t.Errorf("Expected rune 'a' with alt, got %+v", key)
	}
}

func TestStreamConvertsResizeEvents(t *testing.T) {
	screen := simScreen(t)
	stop := make(chan struct{})
	defer close(stop)

	stream := Stream(screen, Fps(100), stop)
	screen.SetSize(100, 40)

	// The screen posts an initial resize on init; scan until the new
	// dimensions come through.
	deadline := time.After(2 * time.Second)
	for {
		resize := waitFor[Resize](t, stream)
		if resize.Width == 100 && resize.Height == 40 {
			return
		}
		select {
		case <-deadline:
			t.Fatalf("Timed out waiting for 100x40 resize, last got %+v", resize)
		default:
		}
	}
}

func TestStreamClosesOnStop(t *testing.T) {
	screen := simScreen(t)
	stop := make(chan struct{})

	stream := Stream(screen, Fps(100), stop)
	waitFor[Tick](t, stream)
	close(stop)

	deadline := time.After(2 * time.Second)
	for {
		select {
		case _, ok := <-stream:
			if !ok {
				return
			}
		case <-deadline:
			t.Fatal("Expected stream to close after stop")
		}
	}
}
