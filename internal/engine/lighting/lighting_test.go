package lighting

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSpotDisabledReturnsZeroColors(t *testing.T) {
	s := NewSpot(
		mgl32.Vec3{0.1, 0.1, 0.1},
		mgl32.Vec3{0.8, 0.8, 0.8},
		mgl32.Vec3{1, 1, 1},
		12.5, 15,
	)

	if s.Enabled {
		t.Fatal("spotlight should start disabled")
	}
	if s.Ambient() != (mgl32.Vec3{}) {
		t.Errorf("disabled ambient should be zero, got %v", s.Ambient())
	}
	if s.Diffuse() != (mgl32.Vec3{}) {
		t.Errorf("disabled diffuse should be zero, got %v", s.Diffuse())
	}
	if s.Specular() != (mgl32.Vec3{}) {
		t.Errorf("disabled specular should be zero, got %v", s.Specular())
	}
}

func TestSpotEnabledReturnsColors(t *testing.T) {
	s := NewSpot(
		mgl32.Vec3{0.1, 0.2, 0.3},
		mgl32.Vec3{0.4, 0.5, 0.6},
		mgl32.Vec3{0.7, 0.8, 0.9},
		12.5, 15,
	)
	s.Enabled = true

	if s.Ambient() != (mgl32.Vec3{0.1, 0.2, 0.3}) {
		t.Errorf("unexpected ambient %v", s.Ambient())
	}
	if s.Diffuse() != (mgl32.Vec3{0.4, 0.5, 0.6}) {
		t.Errorf("unexpected diffuse %v", s.Diffuse())
	}
	if s.Specular() != (mgl32.Vec3{0.7, 0.8, 0.9}) {
		t.Errorf("unexpected specular %v", s.Specular())
	}
}

func TestSpotToggleTwiceRestores(t *testing.T) {
	s := NewSpot(
		mgl32.Vec3{0.1, 0.1, 0.1},
		mgl32.Vec3{1, 1, 1},
		mgl32.Vec3{1, 1, 1},
		12.5, 15,
	)
	s.Enabled = true
	want := s.Diffuse()

	s.Enabled = !s.Enabled
	s.Enabled = !s.Enabled

	if s.Diffuse() != want {
		t.Errorf("double toggle changed diffuse: %v vs %v", s.Diffuse(), want)
	}

	// The cone is untouched by toggling.
	if s.Inner >= s.Outer {
		t.Errorf("inner cone angle %f should be below outer %f", s.Inner, s.Outer)
	}
}

func TestSpotFollow(t *testing.T) {
	s := NewSpot(mgl32.Vec3{}, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1}, 12.5, 15)

	pos := mgl32.Vec3{1, 2, 3}
	dir := mgl32.Vec3{0, 0, 1}
	s.Follow(pos, dir)

	if s.Position != pos {
		t.Errorf("expected position %v, got %v", pos, s.Position)
	}
	if s.Direction != dir {
		t.Errorf("expected direction %v, got %v", dir, s.Direction)
	}
}

func TestAddPointRespectsShaderLimit(t *testing.T) {
	var l Lights

	for i := 0; i < MaxPointLights; i++ {
		if !l.AddPoint(Point{Position: mgl32.Vec3{float32(i), 0, 0}}) {
			t.Fatalf("light %d rejected before the limit", i)
		}
	}
	if l.AddPoint(Point{}) {
		t.Error("light accepted past the shader array size")
	}
	if len(l.Points) != MaxPointLights {
		t.Errorf("expected %d lights, got %d", MaxPointLights, len(l.Points))
	}
}
