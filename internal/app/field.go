package app

import (
	gomath "math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/torvik/glint/internal/engine/spatial"
)

// fieldTransforms scatters count cube transforms over a disc of the
// given radius, each with a random spin and size.
func fieldTransforms(rng *rand.Rand, count int, radius float32) []spatial.Transform {
	transforms := make([]spatial.Transform, 0, count)
	for i := 0; i < count; i++ {
		t := spatial.NewTransform()

		size := 0.4 + rng.Float32()*0.8
		t.Scale(mgl32.Vec3{size, size, size})

		t.Rotate(rng.Float32()*360, randomAxis(rng))

		angle := rng.Float64() * 2 * gomath.Pi
		dist := float32(rng.Float64()) * radius
		t.Translate(mgl32.Vec3{
			dist * float32(gomath.Cos(angle)),
			size/2 + rng.Float32()*3,
			dist * float32(gomath.Sin(angle)),
		})

		transforms = append(transforms, t)
	}
	return transforms
}

func randomAxis(rng *rand.Rand) mgl32.Vec3 {
	axis := mgl32.Vec3{
		rng.Float32()*2 - 1,
		rng.Float32()*2 - 1,
		rng.Float32()*2 - 1,
	}
	if axis.Len() < 0.01 {
		return mgl32.Vec3{0, 1, 0}
	}
	return axis.Normalize()
}
