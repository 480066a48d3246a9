package mesh

import (
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/torvik/glint/internal/engine/shader"
	"github.com/torvik/glint/internal/engine/texture"
)

// Instance attribute layout: a mat4 model matrix in locations 3-6 and
// a mat3 normal matrix in locations 7-9, advancing once per instance.
const (
	InstanceFloats = 16 + 9
	InstanceStride = InstanceFloats * 4
)

// Drawable is anything a scene object can render.
type Drawable interface {
	Draw(p *shader.Program, b *texture.Binder)
	DrawInstanced(p *shader.Program, b *texture.Binder, count int32)
	SetupInstanceAttributes()
	CullFaces() bool
	Destroy()
}

// Mesh is uploaded geometry with an optional material.
type Mesh struct {
	vao, vbo, ebo uint32
	indexCount    int32
	material      *texture.Material
	cullFaces     bool
}

// NewMesh uploads geometry. cullFaces should be false for open
// surfaces like the ground plane that are visible from both sides.
func NewMesh(g Geometry, mat *texture.Material, cullFaces bool) *Mesh {
	m := &Mesh{
		indexCount: int32(len(g.Indices)),
		material:   mat,
		cullFaces:  cullFaces,
	}

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)

	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(g.Vertices)*int(unsafe.Sizeof(Vertex{})),
		gl.Ptr(g.Vertices), gl.STATIC_DRAW)

	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4,
		gl.Ptr(g.Indices), gl.STATIC_DRAW)

	stride := int32(unsafe.Sizeof(Vertex{}))
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride,
		unsafe.Offsetof(Vertex{}.Normal))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride,
		unsafe.Offsetof(Vertex{}.TexCoord))

	gl.BindVertexArray(0)
	return m
}

// Material returns the mesh material, which may be nil.
func (m *Mesh) Material() *texture.Material {
	return m.material
}

// CullFaces reports whether back-face culling applies to this mesh.
func (m *Mesh) CullFaces() bool {
	return m.cullFaces
}

// Draw renders one instance using the currently bound program.
func (m *Mesh) Draw(p *shader.Program, b *texture.Binder) {
	m.bindMaterial(p, b)
	m.withCulling(func() {
		gl.BindVertexArray(m.vao)
		gl.DrawElements(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil)
		gl.BindVertexArray(0)
	})
}

// DrawInstanced renders count instances. The instance buffer must
// already be attached via SetupInstanceAttributes.
func (m *Mesh) DrawInstanced(p *shader.Program, b *texture.Binder, count int32) {
	m.bindMaterial(p, b)
	m.withCulling(func() {
		gl.BindVertexArray(m.vao)
		gl.DrawElementsInstanced(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, nil, count)
		gl.BindVertexArray(0)
	})
}

// SetupInstanceAttributes wires the buffer currently bound to
// GL_ARRAY_BUFFER as per-instance model and normal matrices.
func (m *Mesh) SetupInstanceAttributes() {
	gl.BindVertexArray(m.vao)

	// mat4 occupies four consecutive vec4 attribute slots.
	for i := uint32(0); i < 4; i++ {
		loc := 3 + i
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointerWithOffset(loc, 4, gl.FLOAT, false, InstanceStride,
			uintptr(i*16))
		gl.VertexAttribDivisor(loc, 1)
	}
	// mat3 likewise takes three vec3 slots.
	for i := uint32(0); i < 3; i++ {
		loc := 7 + i
		gl.EnableVertexAttribArray(loc)
		gl.VertexAttribPointerWithOffset(loc, 3, gl.FLOAT, false, InstanceStride,
			uintptr(64+i*12))
		gl.VertexAttribDivisor(loc, 1)
	}

	gl.BindVertexArray(0)
}

// Destroy frees the GPU buffers. The material is owned by the caller.
func (m *Mesh) Destroy() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteBuffers(1, &m.ebo)
		m.vao, m.vbo, m.ebo = 0, 0, 0
	}
}

func (m *Mesh) bindMaterial(p *shader.Program, b *texture.Binder) {
	if m.material != nil && p != nil {
		p.SetMaterial(m.material, b)
	}
}

func (m *Mesh) withCulling(draw func()) {
	if !m.cullFaces {
		gl.Disable(gl.CULL_FACE)
		defer gl.Enable(gl.CULL_FACE)
	}
	draw()
}
