package shader

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// MatricesBinding is the binding point of the shared matrix block.
const MatricesBinding = 0

// std140 layout: view at byte 0, projection at byte 64.
const uniformBufferSize = 128

// UniformBuffer shares the view and projection matrices across all
// programs that declare the Matrices block.
type UniformBuffer struct {
	id uint32
}

// NewUniformBuffer allocates the buffer and ties it to the binding
// point.
func NewUniformBuffer() *UniformBuffer {
	u := &UniformBuffer{}
	gl.GenBuffers(1, &u.id)
	gl.BindBuffer(gl.UNIFORM_BUFFER, u.id)
	gl.BufferData(gl.UNIFORM_BUFFER, uniformBufferSize, nil, gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
	gl.BindBufferBase(gl.UNIFORM_BUFFER, MatricesBinding, u.id)
	return u
}

// SetView uploads the view matrix.
func (u *UniformBuffer) SetView(m mgl32.Mat4) {
	u.upload(0, m)
}

// SetProjection uploads the projection matrix.
func (u *UniformBuffer) SetProjection(m mgl32.Mat4) {
	u.upload(64, m)
}

func (u *UniformBuffer) upload(offset int, m mgl32.Mat4) {
	gl.BindBuffer(gl.UNIFORM_BUFFER, u.id)
	gl.BufferSubData(gl.UNIFORM_BUFFER, offset, 64, gl.Ptr(&m[0]))
	gl.BindBuffer(gl.UNIFORM_BUFFER, 0)
}

// Destroy frees the GPU buffer.
func (u *UniformBuffer) Destroy() {
	if u.id != 0 {
		gl.DeleteBuffers(1, &u.id)
		u.id = 0
	}
}
