package mesh

import (
	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/torvik/glint/internal/engine/shader"
	"github.com/torvik/glint/internal/engine/texture"
)

// skyboxPositions is a position-only cube, wound so the inside faces
// are visible. Face culling stays off during the sky pass anyway.
var skyboxPositions = []float32{
	// -Z
	-1, -1, -1, 1, 1, -1, 1, -1, -1,
	1, 1, -1, -1, -1, -1, -1, 1, -1,
	// +Z
	-1, -1, 1, 1, -1, 1, 1, 1, 1,
	1, 1, 1, -1, 1, 1, -1, -1, 1,
	// -X
	-1, 1, 1, -1, 1, -1, -1, -1, -1,
	-1, -1, -1, -1, -1, 1, -1, 1, 1,
	// +X
	1, 1, 1, 1, -1, -1, 1, 1, -1,
	1, -1, -1, 1, 1, 1, 1, -1, 1,
	// -Y
	-1, -1, -1, 1, -1, -1, 1, -1, 1,
	1, -1, 1, -1, -1, 1, -1, -1, -1,
	// +Y
	-1, 1, -1, 1, 1, 1, 1, 1, -1,
	1, 1, 1, -1, 1, -1, -1, 1, 1,
}

// Skybox draws a cubemap as the scene background. Its vertex shader
// forces depth to the far plane, so it renders after opaque geometry
// with DepthFunc LEQUAL and only fills uncovered pixels.
type Skybox struct {
	vao, vbo uint32
	cubemap  *texture.CubeMap
}

// NewSkybox uploads the cube and takes ownership of the cubemap.
func NewSkybox(cubemap *texture.CubeMap) *Skybox {
	s := &Skybox{cubemap: cubemap}

	gl.GenVertexArrays(1, &s.vao)
	gl.GenBuffers(1, &s.vbo)
	gl.BindVertexArray(s.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(skyboxPositions)*4,
		gl.Ptr(skyboxPositions), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 12, 0)
	gl.BindVertexArray(0)

	return s
}

// Draw renders the sky. The caller must have the skybox program bound
// with a rotation-only view matrix uploaded.
func (s *Skybox) Draw(p *shader.Program, b *texture.Binder) {
	gl.DepthFunc(gl.LEQUAL)

	unit := b.Bind(gl.TEXTURE_CUBE_MAP, s.cubemap.ID)
	p.SetInt("skybox", unit)

	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 36)
	gl.BindVertexArray(0)

	gl.DepthFunc(gl.LESS)
}

// Destroy frees the GPU resources including the cubemap.
func (s *Skybox) Destroy() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
		gl.DeleteBuffers(1, &s.vbo)
		s.vao, s.vbo = 0, 0
	}
	if s.cubemap != nil {
		s.cubemap.Destroy()
	}
}
