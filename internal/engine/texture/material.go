package texture

// MaxMaps is the number of diffuse and specular map slots in the
// object shader.
const MaxMaps = 1

// Material groups the texture maps and shininess of a surface.
type Material struct {
	Diffuse   []*Texture2D
	Specular  []*Texture2D
	Shininess float32
}

// NewMaterial returns a material with the given maps. Nil maps are
// allowed; the shader setter substitutes nothing for them and the
// loaded counts reflect that.
func NewMaterial(diffuse, specular *Texture2D, shininess float32) *Material {
	m := &Material{Shininess: shininess}
	if diffuse != nil {
		m.Diffuse = append(m.Diffuse, diffuse)
	}
	if specular != nil {
		m.Specular = append(m.Specular, specular)
	}
	return m
}

// Destroy frees all maps owned by the material.
func (m *Material) Destroy() {
	for _, t := range m.Diffuse {
		t.Destroy()
	}
	for _, t := range m.Specular {
		t.Destroy()
	}
	m.Diffuse = nil
	m.Specular = nil
}
