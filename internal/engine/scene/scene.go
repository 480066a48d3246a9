// Package scene composes shadow, skybox, opaque, and outline passes
// over a shared set of instanced objects.
package scene

import (
	"fmt"
	"sort"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/torvik/glint/internal/engine/camera"
	"github.com/torvik/glint/internal/engine/lighting"
	"github.com/torvik/glint/internal/engine/mesh"
	"github.com/torvik/glint/internal/engine/shader"
	"github.com/torvik/glint/internal/engine/shaders"
	"github.com/torvik/glint/internal/engine/shadow"
	"github.com/torvik/glint/internal/engine/texture"
)

// Params are the runtime rendering toggles.
type Params struct {
	ShowNormals bool
}

// Programs holds the shader programs of the scene passes.
type Programs struct {
	Object  *shader.Program
	Outline *shader.Program
	Skybox  *shader.Program
	Shadow  *shader.Program
	Normals *shader.Program
}

// LoadPrograms compiles every scene program and ties the ones that
// consume the shared matrices to the uniform block binding.
func LoadPrograms() (*Programs, error) {
	p := &Programs{}

	var err error
	if p.Object, err = shader.New(shaders.ObjectVertexShader, shaders.ObjectFragmentShader); err != nil {
		return nil, fmt.Errorf("object program: %w", err)
	}
	if p.Outline, err = shader.New(shaders.OutlineVertexShader, shaders.OutlineFragmentShader); err != nil {
		p.Destroy()
		return nil, fmt.Errorf("outline program: %w", err)
	}
	if p.Skybox, err = shader.New(shaders.SkyboxVertexShader, shaders.SkyboxFragmentShader); err != nil {
		p.Destroy()
		return nil, fmt.Errorf("skybox program: %w", err)
	}
	if p.Shadow, err = shader.New(shaders.ShadowVertexShader, shaders.ShadowFragmentShader); err != nil {
		p.Destroy()
		return nil, fmt.Errorf("shadow program: %w", err)
	}
	if p.Normals, err = shader.NewWithGeometry(shaders.NormalsVertexShader,
		shaders.NormalsGeometryShader, shaders.NormalsFragmentShader); err != nil {
		p.Destroy()
		return nil, fmt.Errorf("normals program: %w", err)
	}

	p.Object.BindUniformBlock("Matrices", shader.MatricesBinding)
	p.Outline.BindUniformBlock("Matrices", shader.MatricesBinding)
	p.Normals.BindUniformBlock("Matrices", shader.MatricesBinding)

	return p, nil
}

// Destroy frees all compiled programs.
func (p *Programs) Destroy() {
	for _, prog := range []*shader.Program{p.Object, p.Outline, p.Skybox, p.Shadow, p.Normals} {
		if prog != nil {
			prog.Destroy()
		}
	}
}

// Scene owns the object list, lights, and render passes for one
// camera. Mirrored views share everything except the camera.
type Scene struct {
	Objects  []*Object
	Skyboxes []*mesh.Skybox
	Camera   *camera.Camera
	Lights   *lighting.Lights
	Params   *Params
	Bounds   shadow.Bounds

	programs  *Programs
	shadowMap *shadow.Map

	lightSpace mgl32.Mat4
}

// New builds a scene around a camera. The shadow map resolution comes
// from configuration.
func New(cam *camera.Camera, lights *lighting.Lights, shadowResolution int32) (*Scene, error) {
	programs, err := LoadPrograms()
	if err != nil {
		return nil, err
	}

	shadowMap, err := shadow.NewMap(shadowResolution)
	if err != nil {
		programs.Destroy()
		return nil, err
	}

	return &Scene{
		Camera:    cam,
		Lights:    lights,
		Params:    &Params{},
		programs:  programs,
		shadowMap: shadowMap,
	}, nil
}

// Add appends objects to the scene.
func (s *Scene) Add(objects ...*Object) {
	s.Objects = append(s.Objects, objects...)
}

// AddSkybox appends a skybox.
func (s *Scene) AddSkybox(sb *mesh.Skybox) {
	s.Skyboxes = append(s.Skyboxes, sb)
}

// Mirrored returns a view of the same scene through another camera.
// Objects, lights, programs, and the shadow map are shared; only the
// viewpoint differs, so the mirror never re-uploads geometry.
func (s *Scene) Mirrored(cam *camera.Camera) *Scene {
	mirror := *s
	mirror.Camera = cam
	return &mirror
}

// Compose renders every pass into the currently bound framebuffer:
// the shadow depth pass, the skybox, then opaque objects back to
// front with outlines interleaved.
func (s *Scene) Compose(ub *shader.UniformBuffer, binder *texture.Binder, aspect float32) {
	for _, o := range s.Objects {
		o.Sync()
	}

	s.shadowPass()
	s.skyboxPass(binder, aspect)
	s.opaquePass(ub, binder, aspect)
}

// shadowPass renders object depth from the light's point of view and
// keeps the light-space matrix for the opaque pass.
func (s *Scene) shadowPass() {
	toLight := s.Lights.Sun.Direction.Mul(-1)
	s.lightSpace = shadow.LightMatrix(toLight, s.Bounds)

	restore := s.saveFramebuffer()
	s.shadowMap.Bind()

	s.programs.Shadow.Use()
	s.programs.Shadow.SetMat4("lightSpace", s.lightSpace)
	for _, o := range s.Objects {
		o.DrawDepth()
	}

	s.shadowMap.Unbind()
	restore()
}

// skyboxPass draws the background with a rotation-only view so the
// sky stays anchored to the horizon.
func (s *Scene) skyboxPass(binder *texture.Binder, aspect float32) {
	if len(s.Skyboxes) == 0 {
		return
	}

	gl.Disable(gl.CULL_FACE)
	gl.StencilMask(0x00)

	view := s.Camera.ViewMatrix().Mat3().Mat4()
	projection := mgl32.Perspective(s.Camera.FOV, aspect, 0.1, 100)

	s.programs.Skybox.Use()
	s.programs.Skybox.SetMat4("view", view)
	s.programs.Skybox.SetMat4("projection", projection)
	for _, sb := range s.Skyboxes {
		sb.Draw(s.programs.Skybox, binder)
	}

	gl.StencilMask(0xFF)
	gl.Enable(gl.CULL_FACE)
}

// opaquePass draws objects back to front. Each object writes stencil
// reference 1 while drawing; outlined objects immediately redraw
// inflated where their own stencil marks are absent.
func (s *Scene) opaquePass(ub *shader.UniformBuffer, binder *texture.Binder, aspect float32) {
	ub.SetView(s.Camera.ViewMatrix())
	ub.SetProjection(mgl32.Perspective(s.Camera.FOV, aspect, 0.1, 100))

	obj := s.programs.Object
	obj.Use()
	obj.SetLights(s.Lights)
	obj.SetVec3("viewPos", s.Camera.Position)
	obj.SetMat4("lightSpace", s.lightSpace)
	obj.SetInt("shadowMap", s.shadowMap.BindTexture(binder))

	gl.Enable(gl.STENCIL_TEST)
	gl.StencilOp(gl.KEEP, gl.KEEP, gl.REPLACE)
	gl.StencilFunc(gl.ALWAYS, 1, 0xFF)
	gl.StencilMask(0xFF)

	for _, o := range sortBackToFront(s.Objects, s.Camera.Position) {
		obj.Use()
		o.Draw(obj, binder)

		if s.Params.ShowNormals {
			s.programs.Normals.Use()
			o.Draw(nil, binder)
		}

		if o.Outlined() {
			s.programs.Outline.Use()
			o.DrawOutline(s.programs.Outline, binder)
		}
	}

	gl.Disable(gl.STENCIL_TEST)
}

// sortBackToFront orders objects by decreasing camera distance in a
// fresh slice, leaving the shared object list untouched.
func sortBackToFront(objects []*Object, from mgl32.Vec3) []*Object {
	sorted := make([]*Object, len(objects))
	copy(sorted, objects)
	sort.SliceStable(sorted, func(i, j int) bool {
		di := sorted[i].Position().Sub(from).Len()
		dj := sorted[j].Position().Sub(from).Len()
		return di > dj
	})
	return sorted
}

func (s *Scene) saveFramebuffer() func() {
	var prevFBO int32
	gl.GetIntegerv(gl.FRAMEBUFFER_BINDING, &prevFBO)
	return func() {
		gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(prevFBO))
	}
}

// Destroy frees scene-owned GPU resources. Objects and skyboxes are
// owned by the primary scene; mirrored views must not call Destroy.
func (s *Scene) Destroy() {
	for _, o := range s.Objects {
		o.Destroy()
	}
	s.Objects = nil
	for _, sb := range s.Skyboxes {
		sb.Destroy()
	}
	s.Skyboxes = nil
	if s.programs != nil {
		s.programs.Destroy()
	}
	if s.shadowMap != nil {
		s.shadowMap.Destroy()
	}
}
