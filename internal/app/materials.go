package app

import (
	"image"
	"image/color"

	"github.com/torvik/glint/internal/engine/texture"
)

// checkerImage builds a two-tone checkerboard for the ground plane.
func checkerImage(size, squares int, a, b color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	cell := size / squares
	if cell < 1 {
		cell = 1
	}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/cell+y/cell)%2 == 0 {
				img.SetRGBA(x, y, a)
			} else {
				img.SetRGBA(x, y, b)
			}
		}
	}
	return img
}

// floorMaterial is a checkerboard with a dull specular response.
func floorMaterial() *texture.Material {
	img := checkerImage(512, 8,
		color.RGBA{R: 170, G: 170, B: 175, A: 255},
		color.RGBA{R: 70, G: 70, B: 80, A: 255})
	diffuse := texture.NewFromImage(img, true)
	specular := texture.NewSolid(40, 40, 40, 255, false)
	return texture.NewMaterial(diffuse, specular, 16)
}

// crateMaterial is a warm solid with a tight highlight.
func crateMaterial() *texture.Material {
	diffuse := texture.NewSolid(168, 116, 62, 255, true)
	specular := texture.NewSolid(90, 90, 90, 255, false)
	return texture.NewMaterial(diffuse, specular, 64)
}

// accentMaterial is the outlined showcase cube.
func accentMaterial() *texture.Material {
	diffuse := texture.NewSolid(60, 110, 180, 255, true)
	specular := texture.NewSolid(200, 200, 200, 255, false)
	return texture.NewMaterial(diffuse, specular, 128)
}
