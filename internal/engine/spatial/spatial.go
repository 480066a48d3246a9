// Package spatial provides model-space transforms for scene objects.
package spatial

import "github.com/go-gl/mathgl/mgl32"

// Transform carries a model matrix together with its normal matrix
// (inverse-transpose of the upper-left 3x3), recomputed lazily.
type Transform struct {
	model  mgl32.Mat4
	normal mgl32.Mat3
	dirty  bool
}

// NewTransform returns an identity transform.
func NewTransform() Transform {
	return Transform{
		model:  mgl32.Ident4(),
		normal: mgl32.Ident3(),
	}
}

// Model returns the model matrix.
func (t *Transform) Model() mgl32.Mat4 {
	return t.model
}

// SetModel replaces the model matrix wholesale.
func (t *Transform) SetModel(m mgl32.Mat4) {
	t.model = m
	t.dirty = true
}

// Normal returns the normal matrix, recomputing it if the model
// matrix changed since the last call.
func (t *Transform) Normal() mgl32.Mat3 {
	if t.dirty {
		t.normal = t.model.Mat3().Inv().Transpose()
		t.dirty = false
	}
	return t.normal
}

// Position returns the translation component.
func (t *Transform) Position() mgl32.Vec3 {
	return t.model.Col(3).Vec3()
}

// Translate moves the transform by offset in world space.
func (t *Transform) Translate(offset mgl32.Vec3) {
	col := t.model.Col(3)
	t.model.SetCol(3, col.Add(offset.Vec4(0)))
	t.dirty = true
}

// Rotate rotates by angle degrees around axis, keeping the current
// translation fixed.
func (t *Transform) Rotate(angleDeg float32, axis mgl32.Vec3) {
	t.ApplyRotation(mgl32.HomogRotate3D(mgl32.DegToRad(angleDeg), axis.Normalize()))
}

// ApplyRotation applies a prebuilt rotation matrix to the linear part
// of the transform. The translation column stays untouched.
func (t *Transform) ApplyRotation(rot mgl32.Mat4) {
	pos := t.model.Col(3)
	t.model.SetCol(3, mgl32.Vec4{0, 0, 0, 1})
	t.model = rot.Mul4(t.model)
	t.model.SetCol(3, pos)
	t.dirty = true
}

// Scale scales the linear part of the transform per axis, keeping the
// current translation fixed.
func (t *Transform) Scale(factors mgl32.Vec3) {
	t.ApplyScaling(mgl32.Scale3D(factors.X(), factors.Y(), factors.Z()))
}

// ApplyScaling applies a prebuilt scaling matrix the same way
// ApplyRotation does.
func (t *Transform) ApplyScaling(scale mgl32.Mat4) {
	pos := t.model.Col(3)
	t.model.SetCol(3, mgl32.Vec4{0, 0, 0, 1})
	t.model = scale.Mul4(t.model)
	t.model.SetCol(3, pos)
	t.dirty = true
}
