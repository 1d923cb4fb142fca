package gpudata

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/swgpu/internal/texture"
)

// UniformType tags the variant carried by a Uniform slot.
type UniformType uint8

const (
	UniformEmpty UniformType = iota
	UniformFloat
	UniformInt
	UniformUInt
	UniformVec2
	UniformVec3
	UniformVec4
	UniformMat4
)

// Uniform is a tagged union over scalar, vector, matrix and integer uniform
// values, read-only for the duration of Execute. Like Attribute, it's a
// discriminated struct rather than an interface so uniform tables can live
// in a flat, preallocated array.
type Uniform struct {
	Type UniformType

	Float float32
	Int   int32
	UInt  uint32
	Vec2  mgl32.Vec2
	Vec3  mgl32.Vec3
	Vec4  mgl32.Vec4
	Mat4  mgl32.Mat4
}

// ShaderInterface is the read-only view over uniforms and textures passed
// to every vertex and fragment shader invocation. Shaders may read from it
// but must never mutate the memory it points into.
type ShaderInterface struct {
	Uniforms []Uniform
	Textures []Texture
}

// Uniform returns the uniform at the given id, or the zero Uniform
// (UniformEmpty) if id is out of range.
func (si ShaderInterface) Uniform(id int) Uniform {
	if id < 0 || id >= len(si.Uniforms) {
		return Uniform{}
	}
	return si.Uniforms[id]
}

// Texture returns the texture at the given id, or the zero Texture (nil
// data, which samples to black/opaque) if id is out of range.
func (si ShaderInterface) Texture(id int) Texture {
	if id < 0 || id >= len(si.Textures) {
		return Texture{}
	}
	return si.Textures[id]
}

// Sample performs nearest-neighbor sampling of the texture at id, wrapping
// uv with fract(). Sampling an out-of-range id behaves like sampling an
// empty texture: (0, 0, 0, 1).
func (si ShaderInterface) Sample(id int, uv mgl32.Vec2) mgl32.Vec4 {
	tex := si.Texture(id)
	return texture.Sample(tex.Data, tex.Width, tex.Height, tex.Channels, uv.X(), uv.Y())
}

// VertexShaderFunc is the vertex-shader ABI. It must be pure: given the
// same InVertex and ShaderInterface it must always populate the same
// gl_Position and output attributes. The core does not enforce purity, it
// only relies on it — see spec §4.4.
type VertexShaderFunc func(out *OutVertex, in InVertex, si ShaderInterface)

// FragmentShaderFunc is the fragment-shader ABI. It must be pure and must
// populate OutFragment.Color (clamping happens downstream, in the blend
// stage).
type FragmentShaderFunc func(out *OutFragment, in InFragment, si ShaderInterface)

// Program bundles a vertex/fragment shader pair with the declaration of
// which attribute slots are carried from vertex to fragment, and at what
// type (vs2fs in spec terms). VS2FS[k] gives the type of attribute slot k;
// AttributeEmpty means the slot isn't forwarded.
type Program struct {
	VertexShader   VertexShaderFunc
	FragmentShader FragmentShaderFunc
	VS2FS          [MaxAttributes]AttributeType
}
