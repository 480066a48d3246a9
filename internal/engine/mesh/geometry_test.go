package mesh

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const eps = 1e-6

func TestCubeShape(t *testing.T) {
	g := Cube(2)

	if len(g.Vertices) != 24 {
		t.Errorf("expected 24 vertices, got %d", len(g.Vertices))
	}
	if len(g.Indices) != 36 {
		t.Errorf("expected 36 indices, got %d", len(g.Indices))
	}

	for i, v := range g.Vertices {
		// Every corner sits on the cube surface.
		for axis := 0; axis < 3; axis++ {
			c := v.Position[axis]
			if c != 1 && c != -1 {
				t.Errorf("vertex %d coordinate %d = %f, want ±1", i, axis, c)
			}
		}

		// Normals are unit length and axis-aligned.
		n := v.Normal
		if d := n.Len() - 1; d > eps || d < -eps {
			t.Errorf("vertex %d normal %v is not unit length", i, n)
		}

		// Normals point outward: positive dot with the corner offset.
		if n.Dot(v.Position) <= 0 {
			t.Errorf("vertex %d normal %v points inward at %v", i, n, v.Position)
		}
	}

	// All indices reference valid vertices.
	for _, idx := range g.Indices {
		if int(idx) >= len(g.Vertices) {
			t.Fatalf("index %d out of range", idx)
		}
	}
}

func TestCubeWindingCCW(t *testing.T) {
	g := Cube(2)

	for i := 0; i+2 < len(g.Indices); i += 3 {
		a := g.Vertices[g.Indices[i]].Position
		b := g.Vertices[g.Indices[i+1]].Position
		c := g.Vertices[g.Indices[i+2]].Position

		// Triangle cross product must agree with the face normal,
		// otherwise back-face culling eats the face.
		n := g.Vertices[g.Indices[i]].Normal
		cross := b.Sub(a).Cross(c.Sub(a))
		if cross.Dot(n) <= 0 {
			t.Errorf("triangle %d wound clockwise relative to its normal", i/3)
		}
	}
}

func TestSquareFacesUp(t *testing.T) {
	g := Square(10, 5)

	if len(g.Vertices) != 4 {
		t.Errorf("expected 4 vertices, got %d", len(g.Vertices))
	}
	if len(g.Indices) != 6 {
		t.Errorf("expected 6 indices, got %d", len(g.Indices))
	}

	for i, v := range g.Vertices {
		if v.Normal != (mgl32.Vec3{0, 1, 0}) {
			t.Errorf("vertex %d normal %v, want (0,1,0)", i, v.Normal)
		}
		if v.Position.Y() != 0 {
			t.Errorf("vertex %d not on the ground plane: %v", i, v.Position)
		}
	}

	// UV tiling reaches the repeat factor.
	var maxU float32
	for _, v := range g.Vertices {
		if v.TexCoord.X() > maxU {
			maxU = v.TexCoord.X()
		}
	}
	if maxU != 5 {
		t.Errorf("expected uv repeat 5, got %f", maxU)
	}
}

func TestCanvasQuadCoversNDC(t *testing.T) {
	g := CanvasQuad()

	if len(g.Vertices) != 4 || len(g.Indices) != 6 {
		t.Fatalf("expected 4/6, got %d/%d", len(g.Vertices), len(g.Indices))
	}

	seen := map[mgl32.Vec2]bool{}
	for _, v := range g.Vertices {
		if v.Position.Z() != 0 {
			t.Errorf("canvas vertex off the z=0 plane: %v", v.Position)
		}
		seen[mgl32.Vec2{v.Position.X(), v.Position.Y()}] = true
	}
	for _, corner := range []mgl32.Vec2{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
		if !seen[corner] {
			t.Errorf("missing NDC corner %v", corner)
		}
	}
}
