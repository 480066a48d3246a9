// Package controls translates SDL events into signals and fans them
// out to per-entity controllers.
package controls

import "github.com/veandco/go-sdl2/sdl"

// Kind discriminates signal variants.
type Kind int

const (
	KeyPressed Kind = iota
	KeyReleased
	MouseMoved
	MouseScrolled
	Quit
)

// Signal is one input event. Key is set for the key variants; DX and
// DY carry relative mouse motion or wheel travel.
type Signal struct {
	Kind Kind
	Key  sdl.Scancode
	DX   float32
	DY   float32
}

// Controller receives a batch of signals into its mailbox. Delivery
// must not mutate shared state; controllers act on their mailbox when
// their owner applies them.
type Controller interface {
	Deliver(signals []Signal)
}
