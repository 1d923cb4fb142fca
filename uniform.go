package swgpu

import "github.com/gogpu/swgpu/internal/gpudata"

// UniformType tags the variant carried by a Uniform slot.
type UniformType = gpudata.UniformType

const (
	UniformEmpty = gpudata.UniformEmpty
	UniformFloat = gpudata.UniformFloat
	UniformInt   = gpudata.UniformInt
	UniformUInt  = gpudata.UniformUInt
	UniformVec2  = gpudata.UniformVec2
	UniformVec3  = gpudata.UniformVec3
	UniformVec4  = gpudata.UniformVec4
	UniformMat4  = gpudata.UniformMat4
)

// Uniform is a tagged union over scalar, vector, matrix and integer uniform
// values, read-only for the duration of Execute. Like Attribute, it's a
// discriminated struct rather than an interface so uniform tables can live
// in a flat, preallocated array.
type Uniform = gpudata.Uniform

// ShaderInterface is the read-only view over uniforms and textures passed
// to every vertex and fragment shader invocation. Shaders may read from it
// but must never mutate the memory it points into.
type ShaderInterface = gpudata.ShaderInterface
