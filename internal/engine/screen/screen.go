// Package screen renders scenes into a multisampled offscreen target
// and composites the result with post-processing.
package screen

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/torvik/glint/internal/engine/framebuffer"
	"github.com/torvik/glint/internal/engine/mesh"
	"github.com/torvik/glint/internal/engine/scene"
	"github.com/torvik/glint/internal/engine/shader"
	"github.com/torvik/glint/internal/engine/shaders"
	"github.com/torvik/glint/internal/engine/texture"
)

// Screen owns one offscreen render target and the compositor pass
// that resolves it. The fullscreen view and the picture-in-picture
// mirror are each a Screen.
type Screen struct {
	// Gamma applies 2.2 gamma correction during the final composite.
	Gamma bool
	// Edges replaces the image with a Sobel edge visualization.
	Edges bool

	fbo        *framebuffer.Framebuffer
	canvas     *mesh.Mesh
	program    *shader.Program
	clearColor mgl32.Vec4
}

// New creates a screen with its own multisampled framebuffer.
func New(width, height, samples int32, gamma bool) (*Screen, error) {
	fbo, err := framebuffer.New(width, height, samples)
	if err != nil {
		return nil, err
	}

	program, err := shader.New(shaders.ScreenVertexShader, shaders.ScreenFragmentShader)
	if err != nil {
		fbo.Destroy()
		return nil, fmt.Errorf("screen program: %w", err)
	}

	return &Screen{
		Gamma:      gamma,
		fbo:        fbo,
		canvas:     mesh.NewMesh(mesh.CanvasQuad(), nil, false),
		program:    program,
		clearColor: mgl32.Vec4{0.1, 0.1, 0.1, 1},
	}, nil
}

// SetClearColor sets the background color of the offscreen target.
func (s *Screen) SetClearColor(c mgl32.Vec4) {
	s.clearColor = c
}

// Resize reallocates the offscreen target.
func (s *Screen) Resize(width, height int32) {
	s.fbo.Resize(width, height)
}

// DrawOnFramebuffer renders the scene into the offscreen target. The
// binder resets so every pass starts from texture unit zero.
func (s *Screen) DrawOnFramebuffer(sc *scene.Scene, ub *shader.UniformBuffer, binder *texture.Binder) {
	binder.Reset()

	restore := s.fbo.BindWithViewport()
	s.fbo.Clear(s.clearColor.X(), s.clearColor.Y(), s.clearColor.Z(), s.clearColor.W())

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)

	w, h := s.fbo.Size()
	sc.Compose(ub, binder, float32(w)/float32(h))

	restore()
}

// DrawOnScreen composites the offscreen target onto the default
// framebuffer, resolving the multisampled color and applying the
// gamma and edge toggles.
func (s *Screen) DrawOnScreen(binder *texture.Binder, width, height int32) {
	binder.Reset()
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, width, height)
	s.composite(binder, mgl32.Ident4(), s.Gamma)
}

// DrawOnAnother composites this screen into another screen's target,
// scaled and offset in clip space. Gamma stays off so the destination
// applies it exactly once on final presentation.
func (s *Screen) DrawOnAnother(dst *Screen, binder *texture.Binder, scale, offset mgl32.Vec2) {
	binder.Reset()
	restore := dst.fbo.BindWithViewport()

	transform := mgl32.Translate3D(offset.X(), offset.Y(), 0).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), 1))
	s.composite(binder, transform, false)

	restore()
}

func (s *Screen) composite(binder *texture.Binder, transform mgl32.Mat4, gamma bool) {
	gl.Disable(gl.DEPTH_TEST)

	s.program.Use()
	s.program.SetMat4("transform", transform)
	s.program.SetInt("samples", s.fbo.Samples())
	s.program.SetBool("gammaOn", gamma)
	s.program.SetBool("edgesOn", s.Edges)

	unit := binder.Bind(gl.TEXTURE_2D_MULTISAMPLE, s.fbo.ColorTexture())
	s.program.SetInt("screenTexture", unit)

	s.canvas.Draw(nil, nil)

	gl.Enable(gl.DEPTH_TEST)
}

// Destroy frees the framebuffer, canvas, and program.
func (s *Screen) Destroy() {
	if s.fbo != nil {
		s.fbo.Destroy()
		s.fbo = nil
	}
	if s.canvas != nil {
		s.canvas.Destroy()
		s.canvas = nil
	}
	if s.program != nil {
		s.program.Destroy()
		s.program = nil
	}
}
