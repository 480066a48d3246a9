package shadow

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-4

func TestBoundsCenterRadius(t *testing.T) {
	b := Bounds{
		Min: mgl32.Vec3{-2, 0, -2},
		Max: mgl32.Vec3{2, 4, 2},
	}

	if got := b.Center(); !got.ApproxEqualThreshold(mgl32.Vec3{0, 2, 0}, eps) {
		t.Errorf("expected center (0,2,0), got %v", got)
	}

	// Half-diagonal of a 4x4x4 box.
	want := mgl32.Vec3{2, 2, 2}.Len()
	if got := b.Radius(); got < want-eps || got > want+eps {
		t.Errorf("expected radius %f, got %f", want, got)
	}
}

func TestLightMatrixContainsScene(t *testing.T) {
	b := Bounds{
		Min: mgl32.Vec3{-5, 0, -5},
		Max: mgl32.Vec3{5, 3, 5},
	}
	m := LightMatrix(mgl32.Vec3{1, 2, 0.5}, b)

	// Every corner of the bounds must land inside clip space.
	corners := []mgl32.Vec3{
		{b.Min.X(), b.Min.Y(), b.Min.Z()},
		{b.Max.X(), b.Min.Y(), b.Min.Z()},
		{b.Min.X(), b.Max.Y(), b.Min.Z()},
		{b.Min.X(), b.Min.Y(), b.Max.Z()},
		{b.Max.X(), b.Max.Y(), b.Min.Z()},
		{b.Max.X(), b.Min.Y(), b.Max.Z()},
		{b.Min.X(), b.Max.Y(), b.Max.Z()},
		{b.Max.X(), b.Max.Y(), b.Max.Z()},
	}
	for _, c := range corners {
		clip := m.Mul4x1(c.Vec4(1))
		for axis := 0; axis < 3; axis++ {
			if clip[axis] < -clip.W()-eps || clip[axis] > clip.W()+eps {
				t.Errorf("corner %v outside light clip space: %v", c, clip)
			}
		}
	}
}

func TestLightMatrixVerticalLight(t *testing.T) {
	b := Bounds{
		Min: mgl32.Vec3{-1, 0, -1},
		Max: mgl32.Vec3{1, 1, 1},
	}

	// A straight-down light must not degenerate.
	m := LightMatrix(mgl32.Vec3{0, 1, 0}, b)

	clip := m.Mul4x1(b.Center().Vec4(1))
	if clip.W() == 0 {
		t.Fatal("degenerate light matrix for vertical light")
	}
	for axis := 0; axis < 3; axis++ {
		if clip[axis] < -clip.W() || clip[axis] > clip.W() {
			t.Errorf("scene center outside clip space: %v", clip)
		}
	}
}
