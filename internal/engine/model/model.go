// Package model imports Wavefront OBJ models as drawable meshes.
package model

import (
	"fmt"
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/udhos/gwob"

	"github.com/torvik/glint/internal/engine/mesh"
	"github.com/torvik/glint/internal/engine/texture"
)

const defaultShininess = 32

// Model is an imported OBJ: one mesh per group, with materials
// resolved from the companion MTL library.
type Model struct {
	Meshes []*mesh.Mesh

	materials []*texture.Material
}

// Load reads an OBJ file and its material library. The MTL file is
// expected next to the OBJ with the same base name; texture paths in
// the library resolve relative to the OBJ directory.
func Load(objPath string) (*Model, error) {
	obj, err := gwob.NewObjFromFile(objPath, &gwob.ObjParserOptions{})
	if err != nil {
		return nil, fmt.Errorf("parsing obj %s: %w", objPath, err)
	}

	mtlPath := objPath[:len(objPath)-len(filepath.Ext(objPath))] + ".mtl"
	mtlLib, err := gwob.ReadMaterialLibFromFile(mtlPath, nil)
	if err != nil {
		return nil, fmt.Errorf("parsing mtl %s: %w", mtlPath, err)
	}

	m := &Model{}
	loader := newMaterialLoader(filepath.Dir(objPath), mtlLib)

	for _, group := range obj.Groups {
		geometry := groupGeometry(group, obj)
		if len(geometry.Indices) == 0 {
			continue
		}

		mat, err := loader.load(group.Usemtl)
		if err != nil {
			m.Destroy()
			return nil, err
		}
		m.Meshes = append(m.Meshes, mesh.NewMesh(geometry, mat, true))
	}

	m.materials = loader.owned
	return m, nil
}

// Destroy frees all meshes and materials.
func (m *Model) Destroy() {
	for _, msh := range m.Meshes {
		msh.Destroy()
	}
	m.Meshes = nil
	for _, mat := range m.materials {
		mat.Destroy()
	}
	m.materials = nil
}

// groupGeometry converts one OBJ group into the engine vertex layout.
// gwob interleaves coordinates into a single strided array; the stride
// offsets locate each attribute.
func groupGeometry(group *gwob.Group, obj *gwob.Obj) mesh.Geometry {
	var g mesh.Geometry

	floatsPerVertex := obj.StrideSize / 4

	for i := group.IndexBegin; i < group.IndexBegin+group.IndexCount; i++ {
		index := obj.Indices[i]
		base := index * floatsPerVertex

		v := mesh.Vertex{
			Position: mgl32.Vec3{
				obj.Coord[base+obj.StrideOffsetPosition],
				obj.Coord[base+obj.StrideOffsetPosition+1],
				obj.Coord[base+obj.StrideOffsetPosition+2],
			},
		}

		if obj.TextCoordFound {
			t := base + obj.StrideOffsetTexture/4
			// OBJ texture space is bottom-up.
			v.TexCoord = mgl32.Vec2{obj.Coord[t], 1 - obj.Coord[t+1]}
		}
		if obj.NormCoordFound {
			n := base + obj.StrideOffsetNormal/4
			v.Normal = mgl32.Vec3{obj.Coord[n], obj.Coord[n+1], obj.Coord[n+2]}
		}

		g.Vertices = append(g.Vertices, v)
		g.Indices = append(g.Indices, uint32(len(g.Vertices)-1))
	}

	return g
}

// materialLoader turns MTL entries into engine materials, caching
// image textures by path so shared maps upload once.
type materialLoader struct {
	dir      string
	lib      gwob.MaterialLib
	textures map[string]*texture.Texture2D
	owned    []*texture.Material
}

func newMaterialLoader(dir string, lib gwob.MaterialLib) *materialLoader {
	return &materialLoader{
		dir:      dir,
		lib:      lib,
		textures: make(map[string]*texture.Texture2D),
	}
}

func (l *materialLoader) load(name string) (*texture.Material, error) {
	entry, ok := l.lib.Lib[name]
	if !ok {
		mat := texture.NewMaterial(texture.NewSolid(128, 128, 128, 255, true), nil, defaultShininess)
		l.owned = append(l.owned, mat)
		return mat, nil
	}

	diffuse, err := l.textureOrColor(entry.MapKd, entry.Kd, true)
	if err != nil {
		return nil, err
	}
	specular, err := l.textureOrColor(entry.MapKs, entry.Ks, false)
	if err != nil {
		return nil, err
	}

	shininess := entry.Ns
	if shininess <= 0 {
		shininess = defaultShininess
	}

	mat := texture.NewMaterial(diffuse, specular, shininess)
	l.owned = append(l.owned, mat)
	return mat, nil
}

// textureOrColor loads the image map when the entry names one and
// falls back to a 1x1 solid of the material color otherwise.
func (l *materialLoader) textureOrColor(mapPath string, color [3]float32, srgb bool) (*texture.Texture2D, error) {
	if mapPath == "" {
		r, g, b := colorBytes(color)
		return texture.NewSolid(r, g, b, 255, srgb), nil
	}

	full := filepath.Join(l.dir, mapPath)
	if t, ok := l.textures[full]; ok {
		return t, nil
	}

	t, err := texture.NewFromFile(full, srgb)
	if err != nil {
		return nil, err
	}
	l.textures[full] = t
	return t, nil
}

// colorBytes quantizes a 0..1 material color to texel bytes.
func colorBytes(c [3]float32) (uint8, uint8, uint8) {
	return quantize(c[0]), quantize(c[1]), quantize(c[2])
}

func quantize(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
