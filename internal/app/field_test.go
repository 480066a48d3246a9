package app

import (
	"image/color"
	gomath "math"
	"math/rand"
	"testing"
)

func rgba(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

func TestFieldTransformsCount(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	transforms := fieldTransforms(rng, 32, 10)
	if len(transforms) != 32 {
		t.Fatalf("len = %d, want 32", len(transforms))
	}
}

func TestFieldTransformsWithinRadius(t *testing.T) {
	const radius = 8.0
	rng := rand.New(rand.NewSource(42))
	transforms := fieldTransforms(rng, 100, radius)

	for i := range transforms {
		pos := transforms[i].Position()
		horizontal := gomath.Hypot(float64(pos.X()), float64(pos.Z()))
		if horizontal > radius+1e-3 {
			t.Errorf("instance %d at horizontal distance %v, radius %v", i, horizontal, radius)
		}
		if pos.Y() <= 0 {
			t.Errorf("instance %d below ground: y = %v", i, pos.Y())
		}
	}
}

func TestFieldTransformsDeterministic(t *testing.T) {
	a := fieldTransforms(rand.New(rand.NewSource(7)), 10, 5)
	b := fieldTransforms(rand.New(rand.NewSource(7)), 10, 5)

	for i := range a {
		if a[i].Model() != b[i].Model() {
			t.Errorf("instance %d differs across identical seeds", i)
		}
	}
}

func TestCheckerImage(t *testing.T) {
	img := checkerImage(8, 2, rgba(255, 0, 0), rgba(0, 0, 255))

	if got := img.RGBAAt(0, 0); got != rgba(255, 0, 0) {
		t.Errorf("corner = %v, want red", got)
	}
	// Adjacent cell flips color.
	if got := img.RGBAAt(4, 0); got != rgba(0, 0, 255) {
		t.Errorf("next cell = %v, want blue", got)
	}
	if got := img.RGBAAt(4, 4); got != rgba(255, 0, 0) {
		t.Errorf("diagonal cell = %v, want red", got)
	}
}
