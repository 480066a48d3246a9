package spatial

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-5

func near(a, b float32) bool {
	d := a - b
	return d < eps && d > -eps
}

func vec3Near(a, b mgl32.Vec3) bool {
	return near(a.X(), b.X()) && near(a.Y(), b.Y()) && near(a.Z(), b.Z())
}

func TestNewTransformIdentity(t *testing.T) {
	tr := NewTransform()

	if tr.Model() != mgl32.Ident4() {
		t.Errorf("expected identity model matrix, got %v", tr.Model())
	}
	if tr.Normal() != mgl32.Ident3() {
		t.Errorf("expected identity normal matrix, got %v", tr.Normal())
	}
	if tr.Position() != (mgl32.Vec3{}) {
		t.Errorf("expected zero position, got %v", tr.Position())
	}
}

func TestTranslateAccumulates(t *testing.T) {
	tr := NewTransform()
	tr.Translate(mgl32.Vec3{1, 2, 3})
	tr.Translate(mgl32.Vec3{-4, 0, 1})

	if !vec3Near(tr.Position(), mgl32.Vec3{-3, 2, 4}) {
		t.Errorf("expected position (-3,2,4), got %v", tr.Position())
	}
}

func TestRotatePreservesTranslation(t *testing.T) {
	tr := NewTransform()
	tr.Translate(mgl32.Vec3{5, -1, 2})

	tr.Rotate(73, mgl32.Vec3{0, 1, 0})
	tr.Rotate(-15, mgl32.Vec3{1, 1, 0})

	if !vec3Near(tr.Position(), mgl32.Vec3{5, -1, 2}) {
		t.Errorf("rotation moved the translation: %v", tr.Position())
	}
}

func TestScalePreservesTranslation(t *testing.T) {
	tr := NewTransform()
	tr.Translate(mgl32.Vec3{5, -1, 2})

	tr.Scale(mgl32.Vec3{2, 3, 0.5})

	if !vec3Near(tr.Position(), mgl32.Vec3{5, -1, 2}) {
		t.Errorf("scaling moved the translation: %v", tr.Position())
	}
}

func TestRotateTransformsAxes(t *testing.T) {
	tr := NewTransform()
	tr.Rotate(90, mgl32.Vec3{0, 1, 0})

	// A 90 degree yaw sends +X to -Z.
	x := tr.Model().Mul4x1(mgl32.Vec4{1, 0, 0, 0}).Vec3()
	if !vec3Near(x, mgl32.Vec3{0, 0, -1}) {
		t.Errorf("expected +X to map to -Z, got %v", x)
	}
}

func TestNormalMatrixPureRotation(t *testing.T) {
	tr := NewTransform()
	tr.Rotate(30, mgl32.Vec3{1, 2, 3})

	// For a pure rotation the normal matrix equals the rotation itself.
	want := tr.Model().Mat3()
	got := tr.Normal()
	for i := range want {
		if d := want[i] - got[i]; d > eps || d < -eps {
			t.Fatalf("normal matrix differs from rotation at %d: %v vs %v", i, got, want)
		}
	}
}

func TestNormalMatrixNonUniformScale(t *testing.T) {
	tr := NewTransform()
	tr.Scale(mgl32.Vec3{2, 1, 1})

	// Scaling x by 2 scales x-normals by 1/2.
	n := tr.Normal().Mul3x1(mgl32.Vec3{1, 0, 0})
	if !vec3Near(n, mgl32.Vec3{0.5, 0, 0}) {
		t.Errorf("expected normal (0.5,0,0), got %v", n)
	}
}

func TestNormalMatrixTracksUpdates(t *testing.T) {
	tr := NewTransform()
	_ = tr.Normal() // prime the cache

	tr.Scale(mgl32.Vec3{2, 2, 2})
	n := tr.Normal().Mul3x1(mgl32.Vec3{0, 1, 0})
	if !vec3Near(n, mgl32.Vec3{0, 0.5, 0}) {
		t.Errorf("normal matrix not recomputed after scale: %v", n)
	}
}

func TestSetModel(t *testing.T) {
	tr := NewTransform()
	m := mgl32.Translate3D(1, 2, 3)
	tr.SetModel(m)

	if tr.Model() != m {
		t.Errorf("expected model %v, got %v", m, tr.Model())
	}
	if !vec3Near(tr.Position(), mgl32.Vec3{1, 2, 3}) {
		t.Errorf("expected position (1,2,3), got %v", tr.Position())
	}
}
