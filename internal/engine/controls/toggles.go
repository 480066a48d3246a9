package controls

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/torvik/glint/internal/engine/camera"
	"github.com/torvik/glint/internal/engine/lighting"
)

// toggle counts key presses for one scancode in a mailbox.
type toggle struct {
	key     sdl.Scancode
	mailbox []Signal
}

func (t *toggle) Deliver(signals []Signal) {
	t.mailbox = append(t.mailbox, signals...)
}

// drain consumes the mailbox and reports whether the state flipped.
func (t *toggle) drain() bool {
	presses := 0
	for _, s := range t.mailbox {
		if s.Kind == KeyPressed && s.Key == t.key {
			presses++
		}
	}
	t.mailbox = t.mailbox[:0]
	return presses%2 == 1
}

// FlashlightController toggles the spotlight with F and keeps it
// glued to the camera.
type FlashlightController struct {
	toggle
}

// NewFlashlightController returns a controller listening for F.
func NewFlashlightController() *FlashlightController {
	return &FlashlightController{toggle{key: sdl.SCANCODE_F}}
}

// Apply drains the mailbox, flips the spotlight if F was pressed an
// odd number of times, and refreshes its pose from the camera.
func (f *FlashlightController) Apply(spot *lighting.Spot, cam *camera.Camera) {
	if f.drain() {
		spot.Enabled = !spot.Enabled
	}
	spot.Follow(cam.Position, cam.Direction())
}

// ScreenController toggles post-processing: G for gamma correction,
// E for edge detection.
type ScreenController struct {
	Gamma bool
	Edges bool

	mailbox []Signal
}

// NewScreenController returns a controller with the given initial
// gamma state.
func NewScreenController(gamma bool) *ScreenController {
	return &ScreenController{Gamma: gamma}
}

// Deliver queues signals for the next Update.
func (s *ScreenController) Deliver(signals []Signal) {
	s.mailbox = append(s.mailbox, signals...)
}

// Update drains the mailbox and flips the toggles.
func (s *ScreenController) Update() {
	for _, sig := range s.mailbox {
		if sig.Kind != KeyPressed {
			continue
		}
		switch sig.Key {
		case sdl.SCANCODE_G:
			s.Gamma = !s.Gamma
		case sdl.SCANCODE_E:
			s.Edges = !s.Edges
		}
	}
	s.mailbox = s.mailbox[:0]
}

// SceneController toggles the normal visualization overlay with N.
type SceneController struct {
	ShowNormals bool

	toggle
}

// NewSceneController returns a controller listening for N.
func NewSceneController() *SceneController {
	return &SceneController{toggle: toggle{key: sdl.SCANCODE_N}}
}

// Update drains the mailbox and flips the overlay.
func (s *SceneController) Update() {
	if s.drain() {
		s.ShowNormals = !s.ShowNormals
	}
}

// QuitController latches when the window closes or Escape is pressed.
// The run loop checks Done at the frame boundary, so shutdown is
// always cooperative.
type QuitController struct {
	Done bool

	mailbox []Signal
}

// NewQuitController returns a quit latch.
func NewQuitController() *QuitController {
	return &QuitController{}
}

// Deliver queues signals for the next Update.
func (q *QuitController) Deliver(signals []Signal) {
	q.mailbox = append(q.mailbox, signals...)
}

// Update drains the mailbox. Once Done latches it stays set.
func (q *QuitController) Update() {
	for _, s := range q.mailbox {
		if s.Kind == Quit || (s.Kind == KeyPressed && s.Key == sdl.SCANCODE_ESCAPE) {
			q.Done = true
		}
	}
	q.mailbox = q.mailbox[:0]
}
