package shadow

import "github.com/go-gl/mathgl/mgl32"

// Bounds is the axis-aligned box the shadow map must cover.
type Bounds struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Center returns the center of the box.
func (b Bounds) Center() mgl32.Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

// Radius returns the half-diagonal of the box.
func (b Bounds) Radius() float32 {
	return b.Max.Sub(b.Min).Mul(0.5).Len()
}

// LightMatrix builds the view-projection matrix of the depth pass for
// a directional light. lightDir points from the scene toward the
// light. The orthographic volume is sized from the scene bounds with
// a little padding against edge artifacts.
func LightMatrix(lightDir mgl32.Vec3, bounds Bounds) mgl32.Mat4 {
	center := bounds.Center()
	radius := bounds.Radius()
	if radius == 0 {
		radius = 1
	}

	dir := lightDir.Normalize()
	lightDistance := radius * 2
	lightPos := center.Add(dir.Mul(lightDistance))

	// Pick an up vector that is not parallel to the light direction.
	up := mgl32.Vec3{0, 1, 0}
	if dir.Y() > 0.99 || dir.Y() < -0.99 {
		up = mgl32.Vec3{0, 0, 1}
	}

	view := mgl32.LookAtV(lightPos, center, up)

	padding := radius * 0.1
	halfSize := radius + padding
	proj := mgl32.Ortho(-halfSize, halfSize, -halfSize, halfSize,
		0.1, lightDistance+radius+padding)

	return proj.Mul4(view)
}
