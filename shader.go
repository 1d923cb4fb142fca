package swgpu

import "github.com/gogpu/swgpu/internal/gpudata"

// VertexShaderFunc is the vertex-shader ABI. It must be pure: given the
// same InVertex and ShaderInterface it must always populate the same
// gl_Position and output attributes. The core does not enforce purity, it
// only relies on it — see spec §4.4.
type VertexShaderFunc = gpudata.VertexShaderFunc

// FragmentShaderFunc is the fragment-shader ABI. It must be pure and must
// populate OutFragment.Color (clamping happens downstream, in the blend
// stage).
type FragmentShaderFunc = gpudata.FragmentShaderFunc

// Program bundles a vertex/fragment shader pair with the declaration of
// which attribute slots are carried from vertex to fragment, and at what
// type (vs2fs in spec terms). VS2FS[k] gives the type of attribute slot k;
// AttributeEmpty means the slot isn't forwarded.
type Program = gpudata.Program
