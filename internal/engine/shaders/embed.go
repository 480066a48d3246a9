// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// ObjectVertexShader is the vertex shader for instanced scene objects.
//
//go:embed object.vert
var ObjectVertexShader string

// ObjectFragmentShader shades scene objects with Blinn-Phong lighting
// and shadow mapping.
//
//go:embed object.frag
var ObjectFragmentShader string

// OutlineVertexShader inflates object silhouettes for the stencil
// outline pass.
//
//go:embed outline.vert
var OutlineVertexShader string

// OutlineFragmentShader is the flat-color outline fragment shader.
//
//go:embed outline.frag
var OutlineFragmentShader string

// SkyboxVertexShader is the vertex shader for the cubemap background.
//
//go:embed skybox.vert
var SkyboxVertexShader string

// SkyboxFragmentShader is the fragment shader for the cubemap background.
//
//go:embed skybox.frag
var SkyboxFragmentShader string

// ShadowVertexShader is the vertex shader for the depth-only shadow pass.
//
//go:embed shadow.vert
var ShadowVertexShader string

// ShadowFragmentShader is the fragment shader for the depth-only shadow pass.
//
//go:embed shadow.frag
var ShadowFragmentShader string

// NormalsVertexShader is the vertex shader for the normal visualization overlay.
//
//go:embed normals.vert
var NormalsVertexShader string

// NormalsGeometryShader extrudes one line per vertex normal.
//
//go:embed normals.geom
var NormalsGeometryShader string

// NormalsFragmentShader is the fragment shader for the normal visualization overlay.
//
//go:embed normals.frag
var NormalsFragmentShader string

// ScreenVertexShader is the vertex shader for the compositor canvas.
//
//go:embed screen.vert
var ScreenVertexShader string

// ScreenFragmentShader resolves the multisampled scene texture and
// applies gamma correction and optional edge detection.
//
//go:embed screen.frag
var ScreenFragmentShader string
