// Package assembly implements vertex shader invocation, primitive assembly,
// clip-space normalization, viewport mapping and backface culling: the
// stages between the typed attribute reader and the rasterizer.
package assembly

import "github.com/gogpu/swgpu/internal/gpudata"

// Vertex is a processed vertex after perspective divide and viewport
// mapping: X and Y are pixel-space coordinates, Z is depth in [0, 1], and W
// is the clip-space w the vertex shader returned (kept around for
// perspective-correct attribute interpolation downstream).
type Vertex struct {
	X, Y, Z float32
	W       float32

	Attributes [gpudata.MaxAttributes]gpudata.Attribute
}

// InvokeVertexShader runs prog's vertex shader over a freshly zeroed
// OutVertex. A nil vertex shader leaves the OutVertex zeroed, which
// Transform then turns into a degenerate (w=0) vertex — dropped downstream
// rather than mishandled.
func InvokeVertexShader(prog gpudata.Program, in gpudata.InVertex, si gpudata.ShaderInterface) gpudata.OutVertex {
	var out gpudata.OutVertex
	if prog.VertexShader != nil {
		prog.VertexShader(&out, in, si)
	}
	return out
}

// Transform applies the perspective divide to out.Position and maps the
// result from NDC into the [0, width] x [0, height] x [0, 1] viewport. A
// clip-space w of exactly zero produces Inf/NaN coordinates rather than
// panicking; HasZeroW flags such vertices so the caller can drop the
// triangle as degenerate geometry.
func Transform(out gpudata.OutVertex, width, height int) Vertex {
	w := out.Position.W()
	x := out.Position.X() / w
	y := out.Position.Y() / w
	z := out.Position.Z() / w

	return Vertex{
		X:          (x + 1) / 2 * float32(width),
		Y:          (y + 1) / 2 * float32(height),
		Z:          (z + 1) / 2,
		W:          w,
		Attributes: out.Attributes,
	}
}

// HasZeroW reports whether any of a triangle's three vertices carries a
// clip-space w of exactly zero, the divide-by-zero case spec'd as
// degenerate geometry to be silently dropped.
func HasZeroW(a, b, c Vertex) bool {
	return a.W == 0 || b.W == 0 || c.W == 0
}

// SignedArea computes the signed 2D cross product of a triangle's
// post-viewport vertex positions. Positive means counter-clockwise
// (front-facing by convention), negative clockwise, zero degenerate.
func SignedArea(a, b, c Vertex) float32 {
	return (b.X-a.X)*(c.Y-a.Y) - (c.X-a.X)*(b.Y-a.Y)
}

// ShouldCull reports whether a triangle with the given signed area should
// be dropped: always for a degenerate (zero-area) triangle, and for
// clockwise-winding triangles when backfaceCulling is enabled.
func ShouldCull(area float32, backfaceCulling bool) bool {
	if area == 0 {
		return true
	}
	return backfaceCulling && area < 0
}
