// Package texture provides GPU texture loading and binding utilities.
package texture

import (
	"fmt"
	"image"
	"image/draw"
	"os"

	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// Texture2D is a sampled 2D texture.
type Texture2D struct {
	ID     uint32
	Width  int32
	Height int32
}

// NewFromFile loads and uploads an image file. Color textures should
// pass srgb=true so the samplers decode to linear light; data textures
// (specular maps) pass false.
func NewFromFile(path string, srgb bool) (*Texture2D, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening texture %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding texture %s: %w", path, err)
	}

	return NewFromImage(img, srgb), nil
}

// NewFromImage uploads a decoded image.
func NewFromImage(img image.Image, srgb bool) *Texture2D {
	rgba := toRGBA(img)
	w := int32(rgba.Rect.Dx())
	h := int32(rgba.Rect.Dy())

	t := &Texture2D{Width: w, Height: h}
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat(srgb), w, h, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t
}

// NewSolid returns a 1x1 texture of a single color, used as a
// fallback when a material has no image maps.
func NewSolid(r, g, b, a uint8, srgb bool) *Texture2D {
	pix := []uint8{r, g, b, a}

	t := &Texture2D{Width: 1, Height: 1}
	gl.GenTextures(1, &t.ID)
	gl.BindTexture(gl.TEXTURE_2D, t.ID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat(srgb), 1, 1, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return t
}

// Destroy frees the GPU texture.
func (t *Texture2D) Destroy() {
	if t.ID != 0 {
		gl.DeleteTextures(1, &t.ID)
		t.ID = 0
	}
}

// CubeMap is a six-faced environment texture.
type CubeMap struct {
	ID uint32
}

// NewCubeMap loads the six face images in the order
// right, left, top, bottom, front, back.
func NewCubeMap(faces [6]string) (*CubeMap, error) {
	c := &CubeMap{}
	gl.GenTextures(1, &c.ID)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, c.ID)

	for i, path := range faces {
		f, err := os.Open(path)
		if err != nil {
			c.Destroy()
			return nil, fmt.Errorf("opening cubemap face %s: %w", path, err)
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			c.Destroy()
			return nil, fmt.Errorf("decoding cubemap face %s: %w", path, err)
		}

		rgba := toRGBA(img)
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.SRGB_ALPHA,
			int32(rgba.Rect.Dx()), int32(rgba.Rect.Dy()), 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(rgba.Pix))
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	return c, nil
}

// Destroy frees the GPU texture.
func (c *CubeMap) Destroy() {
	if c.ID != 0 {
		gl.DeleteTextures(1, &c.ID)
		c.ID = 0
	}
}

// Multisample is the color attachment of the MSAA framebuffer.
type Multisample struct {
	ID      uint32
	Samples int32
}

// NewMultisample allocates a multisampled RGBA texture.
func NewMultisample(width, height, samples int32) *Multisample {
	m := &Multisample{Samples: samples}
	gl.GenTextures(1, &m.ID)
	gl.BindTexture(gl.TEXTURE_2D_MULTISAMPLE, m.ID)
	gl.TexImage2DMultisample(gl.TEXTURE_2D_MULTISAMPLE, samples, gl.RGBA8,
		width, height, true)
	gl.BindTexture(gl.TEXTURE_2D_MULTISAMPLE, 0)
	return m
}

// Destroy frees the GPU texture.
func (m *Multisample) Destroy() {
	if m.ID != 0 {
		gl.DeleteTextures(1, &m.ID)
		m.ID = 0
	}
}

func internalFormat(srgb bool) int32 {
	if srgb {
		return gl.SRGB_ALPHA
	}
	return gl.RGBA
}

// toRGBA converts any decoded image to tightly packed RGBA.
func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == rgba.Rect.Dx()*4 {
		return rgba
	}
	rgba := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}
