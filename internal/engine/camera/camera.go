// Package camera provides the free-flight camera used by the demo.
package camera

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Pitch is kept just shy of the poles so the view direction never
// collapses onto the world up axis.
const maxPitch = float32(gomath.Pi/2) - 0.01

// FOV limits in radians.
const (
	minFOV = float32(10 * gomath.Pi / 180)
	maxFOV = float32(120 * gomath.Pi / 180)
)

var worldUp = mgl32.Vec3{0, 1, 0}

// Camera is a yaw/pitch fly camera. Angles are stored in radians.
type Camera struct {
	Position mgl32.Vec3

	Yaw   float32
	Pitch float32
	Roll  float32
	FOV   float32
}

// New returns a camera at pos aimed at the world origin.
func New(pos mgl32.Vec3) *Camera {
	c := &Camera{
		Position: pos,
		FOV:      mgl32.DegToRad(45),
	}

	dir := pos.Mul(-1)
	if dir.Len() > 0 {
		dir = dir.Normalize()
		c.Yaw = float32(gomath.Atan2(float64(dir.Z()), float64(dir.X())))
		c.Pitch = clampPitch(float32(gomath.Asin(float64(dir.Y()))))
	}
	return c
}

// Direction returns the unit view direction derived from yaw and pitch.
func (c *Camera) Direction() mgl32.Vec3 {
	cosPitch := float32(gomath.Cos(float64(c.Pitch)))
	return mgl32.Vec3{
		float32(gomath.Cos(float64(c.Yaw))) * cosPitch,
		float32(gomath.Sin(float64(c.Pitch))),
		float32(gomath.Sin(float64(c.Yaw))) * cosPitch,
	}
}

// Right returns the camera's right axis.
func (c *Camera) Right() mgl32.Vec3 {
	return c.Direction().Cross(worldUp).Normalize()
}

// Up returns the camera's up axis.
func (c *Camera) Up() mgl32.Vec3 {
	return c.Right().Cross(c.Direction())
}

// Rotate adjusts yaw and pitch by the given deltas in degrees.
// Pitch is clamped short of straight up and straight down.
func (c *Camera) Rotate(yawDeg, pitchDeg float32) {
	c.Yaw += mgl32.DegToRad(yawDeg)
	c.Pitch = clampPitch(c.Pitch + mgl32.DegToRad(pitchDeg))
}

// Translate moves along the camera axes: x right, y up, z forward.
func (c *Camera) Translate(offset mgl32.Vec3) {
	c.Position = c.Position.
		Add(c.Right().Mul(offset.X())).
		Add(c.Up().Mul(offset.Y())).
		Add(c.Direction().Mul(offset.Z()))
}

// TranslateForward moves along the horizontal heading, ignoring pitch.
// This is the ground-walk movement used by the keyboard controller.
func (c *Camera) TranslateForward(dist float32) {
	heading := mgl32.Vec3{
		float32(gomath.Cos(float64(c.Yaw))),
		0,
		float32(gomath.Sin(float64(c.Yaw))),
	}
	c.Position = c.Position.Add(heading.Mul(dist))
}

// TranslateVertical moves along world up.
func (c *Camera) TranslateVertical(dist float32) {
	c.Position = c.Position.Add(worldUp.Mul(dist))
}

// ChangeFOV adjusts the field of view by delta degrees, clamped to
// [10, 120] degrees.
func (c *Camera) ChangeFOV(deltaDeg float32) {
	c.FOV += mgl32.DegToRad(deltaDeg)
	if c.FOV < minFOV {
		c.FOV = minFOV
	}
	if c.FOV > maxFOV {
		c.FOV = maxFOV
	}
}

// ViewMatrix returns the right-handed view matrix.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Direction()), worldUp)
}

// Invert returns a copy of the camera looking back at itself: pitch
// reflected, yaw turned half a circle. Used for the mirror view.
func (c *Camera) Invert() *Camera {
	mirror := *c
	mirror.Rotate(180, mgl32.RadToDeg(-2*c.Pitch))
	return &mirror
}

func clampPitch(p float32) float32 {
	if p > maxPitch {
		return maxPitch
	}
	if p < -maxPitch {
		return -maxPitch
	}
	return p
}
