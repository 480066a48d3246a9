package shader

import (
	"fmt"
	gomath "math"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/torvik/glint/internal/engine/lighting"
	"github.com/torvik/glint/internal/engine/texture"
)

// SetMaterial uploads a material, allocating texture units from the
// binder for every map.
func (p *Program) SetMaterial(m *texture.Material, b *texture.Binder) {
	for i, t := range m.Diffuse {
		unit := b.Bind(gl.TEXTURE_2D, t.ID)
		p.SetInt(fmt.Sprintf("material.diffuse[%d]", i), unit)
	}
	for i, t := range m.Specular {
		unit := b.Bind(gl.TEXTURE_2D, t.ID)
		p.SetInt(fmt.Sprintf("material.specular[%d]", i), unit)
	}
	p.SetFloat("material.shininess", m.Shininess)
	p.SetInt("material.loadedDiffuse", int32(len(m.Diffuse)))
	p.SetInt("material.loadedSpecular", int32(len(m.Specular)))
}

// SetDirectional uploads the directional light.
func (p *Program) SetDirectional(d lighting.Directional) {
	p.SetVec3("dirLight.direction", d.Direction)
	p.SetVec3("dirLight.ambient", d.Ambient)
	p.SetVec3("dirLight.diffuse", d.Diffuse)
	p.SetVec3("dirLight.specular", d.Specular)
}

// SetPointLights uploads the point light array and its length.
func (p *Program) SetPointLights(points []lighting.Point) {
	for i, pt := range points {
		prefix := fmt.Sprintf("pointLights[%d].", i)
		p.SetVec3(prefix+"position", pt.Position)
		p.SetFloat(prefix+"constant", pt.Attenuation.Constant)
		p.SetFloat(prefix+"linear", pt.Attenuation.Linear)
		p.SetFloat(prefix+"quadratic", pt.Attenuation.Quadratic)
		p.SetVec3(prefix+"ambient", pt.Ambient)
		p.SetVec3(prefix+"diffuse", pt.Diffuse)
		p.SetVec3(prefix+"specular", pt.Specular)
	}
	p.SetInt("pointLightCount", int32(len(points)))
}

// SetSpot uploads the spotlight. A disabled spotlight contributes
// nothing because its color getters return zero.
func (p *Program) SetSpot(s *lighting.Spot) {
	p.SetVec3("spotLight.position", s.Position)
	p.SetVec3("spotLight.direction", s.Direction)
	p.SetFloat("spotLight.constant", s.Attenuation.Constant)
	p.SetFloat("spotLight.linear", s.Attenuation.Linear)
	p.SetFloat("spotLight.quadratic", s.Attenuation.Quadratic)
	p.SetVec3("spotLight.ambient", s.Ambient())
	p.SetVec3("spotLight.diffuse", s.Diffuse())
	p.SetVec3("spotLight.specular", s.Specular())
	p.SetFloat("spotLight.innerCos", cos32(s.Inner))
	p.SetFloat("spotLight.outerCos", cos32(s.Outer))
}

func cos32(x float32) float32 {
	return float32(gomath.Cos(float64(x)))
}

// SetLights uploads the whole light set in one call.
func (p *Program) SetLights(l *lighting.Lights) {
	p.SetDirectional(l.Sun)
	p.SetPointLights(l.Points)
	if l.Torch != nil {
		p.SetSpot(l.Torch)
	}
}
