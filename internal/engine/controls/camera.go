package controls

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/torvik/glint/internal/engine/camera"
)

// CameraController turns signals into camera movement. Held keys
// produce continuous motion scaled by frame time; mouse and wheel
// deltas accumulate between applications and reset once consumed.
type CameraController struct {
	MoveSpeed         float32
	MouseSensitivity  float32
	ScrollSensitivity float32
	InvertY           bool

	mailbox  []Signal
	held     map[sdl.Scancode]bool
	deltaYaw float32
	deltaPit float32
	deltaFOV float32
}

// NewCameraController returns a controller with the given tuning.
func NewCameraController(moveSpeed, mouseSens, scrollSens float32, invertY bool) *CameraController {
	return &CameraController{
		MoveSpeed:         moveSpeed,
		MouseSensitivity:  mouseSens,
		ScrollSensitivity: scrollSens,
		InvertY:           invertY,
		held:              make(map[sdl.Scancode]bool),
	}
}

// Deliver queues signals for the next Apply.
func (c *CameraController) Deliver(signals []Signal) {
	c.mailbox = append(c.mailbox, signals...)
}

// Apply drains the mailbox and moves the camera. dt is the frame time
// in seconds. Rotation and zoom deltas are consumed; key state
// persists so held keys keep moving the camera on later frames.
func (c *CameraController) Apply(cam *camera.Camera, dt float32) {
	for _, s := range c.mailbox {
		switch s.Kind {
		case KeyPressed:
			c.held[s.Key] = true
		case KeyReleased:
			delete(c.held, s.Key)
		case MouseMoved:
			c.deltaYaw += s.DX * c.MouseSensitivity
			pitch := -s.DY * c.MouseSensitivity
			if c.InvertY {
				pitch = -pitch
			}
			c.deltaPit += pitch
		case MouseScrolled:
			c.deltaFOV -= s.DY * c.ScrollSensitivity
		}
	}
	c.mailbox = c.mailbox[:0]

	step := c.MoveSpeed * dt
	if c.held[sdl.SCANCODE_W] {
		cam.TranslateForward(step)
	}
	if c.held[sdl.SCANCODE_S] {
		cam.TranslateForward(-step)
	}
	if c.held[sdl.SCANCODE_D] {
		cam.Translate(mgl32.Vec3{step, 0, 0})
	}
	if c.held[sdl.SCANCODE_A] {
		cam.Translate(mgl32.Vec3{-step, 0, 0})
	}
	if c.held[sdl.SCANCODE_SPACE] {
		cam.TranslateVertical(step)
	}
	if c.held[sdl.SCANCODE_LCTRL] {
		cam.TranslateVertical(-step)
	}

	if c.deltaYaw != 0 || c.deltaPit != 0 {
		cam.Rotate(c.deltaYaw, c.deltaPit)
		c.deltaYaw = 0
		c.deltaPit = 0
	}
	if c.deltaFOV != 0 {
		cam.ChangeFOV(c.deltaFOV)
		c.deltaFOV = 0
	}
}
