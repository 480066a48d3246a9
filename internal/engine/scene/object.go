package scene

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/torvik/glint/internal/engine/mesh"
	"github.com/torvik/glint/internal/engine/shader"
	"github.com/torvik/glint/internal/engine/spatial"
	"github.com/torvik/glint/internal/engine/texture"
)

// Object is a drawable with one or more instance transforms. Edits
// mark the object dirty; Sync uploads the packed instance buffer once
// per frame before the object draws.
type Object struct {
	drawable  mesh.Drawable
	instances []spatial.Transform

	instanceVBO uint32
	capacity    int
	dirty       bool

	outlined     bool
	outlineColor mgl32.Vec4
}

// NewObject wraps a drawable. With no transforms given it gets a
// single identity instance.
func NewObject(d mesh.Drawable, transforms ...spatial.Transform) *Object {
	if len(transforms) == 0 {
		transforms = []spatial.Transform{spatial.NewTransform()}
	}

	o := &Object{
		drawable:  d,
		instances: transforms,
		dirty:     true,
	}
	o.allocate(len(transforms))
	return o
}

// allocate sizes the instance buffer and rewires the vertex
// attributes to it.
func (o *Object) allocate(count int) {
	if o.instanceVBO == 0 {
		gl.GenBuffers(1, &o.instanceVBO)
	}
	o.capacity = count

	gl.BindBuffer(gl.ARRAY_BUFFER, o.instanceVBO)
	gl.BufferData(gl.ARRAY_BUFFER, count*mesh.InstanceStride, nil, gl.DYNAMIC_DRAW)
	o.drawable.SetupInstanceAttributes()
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// InstanceCount returns the number of instances.
func (o *Object) InstanceCount() int {
	return len(o.instances)
}

// Instance returns a copy of instance i.
func (o *Object) Instance(i int) spatial.Transform {
	return o.instances[i]
}

// Mutate edits instance i in place and marks the buffer stale.
func (o *Object) Mutate(i int, fn func(*spatial.Transform)) {
	fn(&o.instances[i])
	o.dirty = true
}

// MutateAll edits every instance and marks the buffer stale.
func (o *Object) MutateAll(fn func(int, *spatial.Transform)) {
	for i := range o.instances {
		fn(i, &o.instances[i])
	}
	o.dirty = true
}

// AddInstances appends transforms, keeping insertion order.
func (o *Object) AddInstances(transforms ...spatial.Transform) {
	o.instances = append(o.instances, transforms...)
	o.dirty = true
}

// SetOutline enables the stencil outline in the given color.
func (o *Object) SetOutline(color mgl32.Vec4) {
	o.outlined = true
	o.outlineColor = color
}

// Outlined reports whether the object draws an outline.
func (o *Object) Outlined() bool {
	return o.outlined
}

// Position returns the translation of the first instance, used for
// depth sorting.
func (o *Object) Position() mgl32.Vec3 {
	return o.instances[0].Position()
}

// Sync uploads the instance buffer if any transform changed since the
// last upload. Growth past the allocated capacity reallocates the
// buffer and rebinds the attributes.
func (o *Object) Sync() {
	if !o.dirty {
		return
	}
	o.dirty = false

	if len(o.instances) > o.capacity {
		o.allocate(len(o.instances))
	}

	data := packInstances(o.instances)
	gl.BindBuffer(gl.ARRAY_BUFFER, o.instanceVBO)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(data)*4, gl.Ptr(data))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Draw renders all instances with the given program.
func (o *Object) Draw(p *shader.Program, b *texture.Binder) {
	o.drawable.DrawInstanced(p, b, int32(len(o.instances)))
}

// DrawDepth renders all instances without touching materials, for
// the shadow pass.
func (o *Object) DrawDepth() {
	o.drawable.DrawInstanced(nil, nil, int32(len(o.instances)))
}

// DrawOutline redraws the object slightly inflated in a flat color
// wherever the stencil buffer is not marked by the object itself.
// Depth testing is off so the outline shows through occluders.
func (o *Object) DrawOutline(p *shader.Program, b *texture.Binder) {
	gl.StencilFunc(gl.NOTEQUAL, 1, 0xFF)
	gl.StencilMask(0x00)
	gl.Disable(gl.DEPTH_TEST)

	p.SetFloat("outlineScale", 1.1)
	p.SetVec4("outlineColor", o.outlineColor)
	o.drawable.DrawInstanced(p, b, int32(len(o.instances)))

	gl.StencilMask(0xFF)
	gl.StencilFunc(gl.ALWAYS, 1, 0xFF)
	gl.Enable(gl.DEPTH_TEST)
}

// Destroy frees the instance buffer and the drawable.
func (o *Object) Destroy() {
	if o.instanceVBO != 0 {
		gl.DeleteBuffers(1, &o.instanceVBO)
		o.instanceVBO = 0
	}
	if o.drawable != nil {
		o.drawable.Destroy()
	}
}
