package controls

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

// Hub drains the SDL event queue at most once per poll interval and
// delivers the translated signals to every registered controller.
type Hub struct {
	controllers []Controller
	interval    time.Duration
	lastPoll    time.Time
}

// NewHub returns a hub with the given minimum time between polls.
func NewHub(interval time.Duration) *Hub {
	return &Hub{interval: interval}
}

// Register adds a controller to the fan-out list.
func (h *Hub) Register(c Controller) {
	h.controllers = append(h.controllers, c)
}

// Poll drains pending SDL events and delivers them. Calls inside the
// poll interval are no-ops so a fast frame loop doesn't starve the
// event queue lock.
func (h *Hub) Poll() {
	now := time.Now()
	if now.Sub(h.lastPoll) < h.interval {
		return
	}
	h.lastPoll = now

	var events []sdl.Event
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		events = append(events, event)
	}
	signals := Translate(events)
	if len(signals) == 0 {
		return
	}

	for _, c := range h.controllers {
		c.Deliver(signals)
	}
}

// Translate converts raw SDL events to signals. Repeated keyboard
// events for the same key within one batch collapse to the final
// state, so holding a key doesn't flood the mailboxes.
func Translate(events []sdl.Event) []Signal {
	var signals []Signal
	keyState := make(map[sdl.Scancode]bool)
	keyOrder := make([]sdl.Scancode, 0, 8)

	for _, event := range events {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			signals = append(signals, Signal{Kind: Quit})

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			code := e.Keysym.Scancode
			if _, seen := keyState[code]; !seen {
				keyOrder = append(keyOrder, code)
			}
			keyState[code] = e.Type == sdl.KEYDOWN

		case *sdl.MouseMotionEvent:
			signals = append(signals, Signal{
				Kind: MouseMoved,
				DX:   float32(e.XRel),
				DY:   float32(e.YRel),
			})

		case *sdl.MouseWheelEvent:
			signals = append(signals, Signal{
				Kind: MouseScrolled,
				DY:   float32(e.Y),
			})
		}
	}

	for _, code := range keyOrder {
		kind := KeyReleased
		if keyState[code] {
			kind = KeyPressed
		}
		signals = append(signals, Signal{Kind: kind, Key: code})
	}

	return signals
}
