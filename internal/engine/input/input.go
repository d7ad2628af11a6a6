// Package input adapts SDL2 keyboard and mouse state to the rig's
// InputSource and reports window events.
package input

import (
	"fmt"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/flycam/internal/config"
	"github.com/Faultbox/flycam/internal/rig"
)

// EventType identifies a processed window event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
)

// Event represents a processed input event.
type Event struct {
	Type   EventType
	Key    sdl.Scancode
	Width  int
	Height int
}

// Window is the part of the window the input layer needs.
type Window interface {
	GetSize() (int, int)
	WarpMouse(x, y int)
}

// Bindings maps each rig action to a physical key.
type Bindings map[rig.Action]sdl.Scancode

// BindingsFromConfig resolves the configured SDL key names.
func BindingsFromConfig(c config.ControlsConfig) (Bindings, error) {
	names := map[rig.Action]string{
		rig.ActionForward:     c.Forward,
		rig.ActionBack:        c.Back,
		rig.ActionStrafeLeft:  c.StrafeLeft,
		rig.ActionStrafeRight: c.StrafeRight,
		rig.ActionAscend:      c.Ascend,
		rig.ActionDescend:     c.Descend,
	}

	b := make(Bindings, len(names))
	for action, name := range names {
		sc := sdl.GetScancodeFromName(name)
		if sc == sdl.SCANCODE_UNKNOWN {
			return nil, fmt.Errorf("unknown key %q for %s", name, action)
		}
		b[action] = sc
	}
	return b, nil
}

// Input polls SDL and answers the rig's per-frame queries.
type Input struct {
	win      Window
	bindings Bindings
	keys     []uint8
	events   []Event
}

// New creates an input handler for win.
func New(win Window, bindings Bindings) *Input {
	return &Input{
		win:      win,
		bindings: bindings,
		events:   make([]Event, 0, 16),
	}
}

// Update polls pending SDL events and snapshots the keyboard.
// Returns true if the application should quit.
func (i *Input) Update() bool {
	i.events = i.events[:0]
	quit := false

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			i.events = append(i.events, Event{Type: EventQuit})
			quit = true

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED {
				i.events = append(i.events, Event{
					Type:   EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			t := EventKeyUp
			if e.Type == sdl.KEYDOWN {
				t = EventKeyDown
			}
			i.events = append(i.events, Event{Type: t, Key: e.Keysym.Scancode})
		}
	}

	// The returned slice is owned by SDL and stays current across pumps.
	i.keys = sdl.GetKeyboardState()
	return quit
}

// Events returns the events from the last Update.
func (i *Input) Events() []Event {
	return i.events
}

// IsKeyPressed reports whether scancode went down during the last Update.
func (i *Input) IsKeyPressed(scancode sdl.Scancode) bool {
	for _, e := range i.events {
		if e.Type == EventKeyDown && e.Key == scancode {
			return true
		}
	}
	return false
}

// IsKeyDown reports whether the key bound to a is held.
func (i *Input) IsKeyDown(a rig.Action) bool {
	sc, ok := i.bindings[a]
	if !ok || int(sc) >= len(i.keys) {
		return false
	}
	return i.keys[sc] != 0
}

// CursorPos returns the cursor position in window coordinates.
func (i *Input) CursorPos() (float64, float64) {
	x, y, _ := sdl.GetMouseState()
	return float64(x), float64(y)
}

// SetCursorPos warps the cursor inside the window.
func (i *Input) SetCursorPos(x, y float64) {
	i.win.WarpMouse(int(x), int(y))
}

// ViewportSize returns the window size the cursor is measured against.
func (i *Input) ViewportSize() (int, int) {
	return i.win.GetSize()
}

var _ rig.InputSource = (*Input)(nil)
