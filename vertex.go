package swgpu

import "github.com/gogpu/swgpu/internal/gpudata"

// Attribute is a tagged union over the eight attribute variants a vertex or
// fragment slot can carry. See gpudata.Attribute for the rationale behind
// using a discriminated struct instead of an interface here.
type Attribute = gpudata.Attribute

// InVertex is the per-vertex input handed to the vertex shader: the
// resolved vertex/draw ids plus whichever attributes the VAO bound.
type InVertex = gpudata.InVertex

// OutVertex is the per-vertex output the vertex shader populates: clip-space
// position plus any attributes it chooses to pass through to the fragment
// stage (per the owning Program's VS2FS declaration).
type OutVertex = gpudata.OutVertex

// InFragment is the per-fragment input handed to the fragment shader:
// interpolated screen-space coordinates plus interpolated attributes.
type InFragment = gpudata.InFragment

// OutFragment is the per-fragment output the fragment shader populates.
type OutFragment = gpudata.OutFragment
