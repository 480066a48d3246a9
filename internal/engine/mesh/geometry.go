// Package mesh provides geometry builders and GPU mesh wrappers.
package mesh

import "github.com/go-gl/mathgl/mgl32"

// Vertex is the interleaved vertex layout shared by all meshes.
type Vertex struct {
	Position mgl32.Vec3
	Normal   mgl32.Vec3
	TexCoord mgl32.Vec2
}

// Geometry is mesh data before GPU upload.
type Geometry struct {
	Vertices []Vertex
	Indices  []uint32
}

// quad appends four corner vertices sharing one normal, ordered
// bottom-left, bottom-right, top-right, top-left as seen from outside,
// plus the two counter-clockwise triangles covering them.
func (g *Geometry) quad(bl, br, tr, tl, normal mgl32.Vec3, uvMax float32) {
	base := uint32(len(g.Vertices))
	g.Vertices = append(g.Vertices,
		Vertex{Position: bl, Normal: normal, TexCoord: mgl32.Vec2{0, 0}},
		Vertex{Position: br, Normal: normal, TexCoord: mgl32.Vec2{uvMax, 0}},
		Vertex{Position: tr, Normal: normal, TexCoord: mgl32.Vec2{uvMax, uvMax}},
		Vertex{Position: tl, Normal: normal, TexCoord: mgl32.Vec2{0, uvMax}},
	)
	g.Indices = append(g.Indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}

// Cube builds an axis-aligned cube centered at the origin. Each face
// gets its own four vertices so normals stay flat: 24 vertices,
// 36 indices.
func Cube(side float32) Geometry {
	h := side / 2
	var g Geometry

	// +Z
	g.quad(
		mgl32.Vec3{-h, -h, h}, mgl32.Vec3{h, -h, h},
		mgl32.Vec3{h, h, h}, mgl32.Vec3{-h, h, h},
		mgl32.Vec3{0, 0, 1}, 1)
	// -Z
	g.quad(
		mgl32.Vec3{h, -h, -h}, mgl32.Vec3{-h, -h, -h},
		mgl32.Vec3{-h, h, -h}, mgl32.Vec3{h, h, -h},
		mgl32.Vec3{0, 0, -1}, 1)
	// +X
	g.quad(
		mgl32.Vec3{h, -h, h}, mgl32.Vec3{h, -h, -h},
		mgl32.Vec3{h, h, -h}, mgl32.Vec3{h, h, h},
		mgl32.Vec3{1, 0, 0}, 1)
	// -X
	g.quad(
		mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{-h, -h, h},
		mgl32.Vec3{-h, h, h}, mgl32.Vec3{-h, h, -h},
		mgl32.Vec3{-1, 0, 0}, 1)
	// +Y
	g.quad(
		mgl32.Vec3{-h, h, h}, mgl32.Vec3{h, h, h},
		mgl32.Vec3{h, h, -h}, mgl32.Vec3{-h, h, -h},
		mgl32.Vec3{0, 1, 0}, 1)
	// -Y
	g.quad(
		mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{h, -h, -h},
		mgl32.Vec3{h, -h, h}, mgl32.Vec3{-h, -h, h},
		mgl32.Vec3{0, -1, 0}, 1)

	return g
}

// Square builds a ground plane in XZ facing up. uvRepeat tiles the
// texture across the plane.
func Square(side, uvRepeat float32) Geometry {
	h := side / 2
	var g Geometry
	g.quad(
		mgl32.Vec3{-h, 0, h}, mgl32.Vec3{h, 0, h},
		mgl32.Vec3{h, 0, -h}, mgl32.Vec3{-h, 0, -h},
		mgl32.Vec3{0, 1, 0}, uvRepeat)
	return g
}

// CanvasQuad builds a fullscreen quad in normalized device
// coordinates, used by the screen compositor.
func CanvasQuad() Geometry {
	var g Geometry
	g.quad(
		mgl32.Vec3{-1, -1, 0}, mgl32.Vec3{1, -1, 0},
		mgl32.Vec3{1, 1, 0}, mgl32.Vec3{-1, 1, 0},
		mgl32.Vec3{0, 0, 1}, 1)
	return g
}
