// Package lighting holds the light sources uploaded to the object shader.
package lighting

import "github.com/go-gl/mathgl/mgl32"

// MaxPointLights is the point light array size in the object shader.
const MaxPointLights = 4

// Attenuation holds the distance falloff terms of a positional light.
type Attenuation struct {
	Constant  float32
	Linear    float32
	Quadratic float32
}

// Directional is a light at infinity, shining along Direction.
// It also drives the shadow pass.
type Directional struct {
	Direction mgl32.Vec3
	Ambient   mgl32.Vec3
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
}

// Point is a positional light with distance falloff.
type Point struct {
	Position    mgl32.Vec3
	Attenuation Attenuation
	Ambient     mgl32.Vec3
	Diffuse     mgl32.Vec3
	Specular    mgl32.Vec3
}

// Spot is a cone light, typically attached to the camera as a
// flashlight. Inner and Outer are the cone half-angles in radians;
// fragments between the two fade out smoothly.
type Spot struct {
	Position    mgl32.Vec3
	Direction   mgl32.Vec3
	Attenuation Attenuation
	Inner       float32
	Outer       float32
	Enabled     bool

	ambient  mgl32.Vec3
	diffuse  mgl32.Vec3
	specular mgl32.Vec3
}

// NewSpot returns a spotlight with the given colors and cone angles
// in degrees, initially disabled.
func NewSpot(ambient, diffuse, specular mgl32.Vec3, innerDeg, outerDeg float32) *Spot {
	return &Spot{
		Attenuation: Attenuation{Constant: 1, Linear: 0.09, Quadratic: 0.032},
		Inner:       mgl32.DegToRad(innerDeg),
		Outer:       mgl32.DegToRad(outerDeg),
		ambient:     ambient,
		diffuse:     diffuse,
		specular:    specular,
	}
}

// SetColors replaces the spotlight colors.
func (s *Spot) SetColors(ambient, diffuse, specular mgl32.Vec3) {
	s.ambient = ambient
	s.diffuse = diffuse
	s.specular = specular
}

// Ambient returns the ambient color, or zero while the light is off.
func (s *Spot) Ambient() mgl32.Vec3 {
	if !s.Enabled {
		return mgl32.Vec3{}
	}
	return s.ambient
}

// Diffuse returns the diffuse color, or zero while the light is off.
func (s *Spot) Diffuse() mgl32.Vec3 {
	if !s.Enabled {
		return mgl32.Vec3{}
	}
	return s.diffuse
}

// Specular returns the specular color, or zero while the light is off.
func (s *Spot) Specular() mgl32.Vec3 {
	if !s.Enabled {
		return mgl32.Vec3{}
	}
	return s.specular
}

// Follow places the spotlight at the camera pose.
func (s *Spot) Follow(pos, dir mgl32.Vec3) {
	s.Position = pos
	s.Direction = dir
}

// Lights aggregates everything the object shader needs per frame.
type Lights struct {
	Sun    Directional
	Points []Point
	Torch  *Spot
}

// AddPoint appends a point light, dropping it if the shader array is
// already full.
func (l *Lights) AddPoint(p Point) bool {
	if len(l.Points) >= MaxPointLights {
		return false
	}
	l.Points = append(l.Points, p)
	return true
}
