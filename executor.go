package swgpu

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/swgpu/internal/assembly"
	"github.com/gogpu/swgpu/internal/attribute"
	"github.com/gogpu/swgpu/internal/blend"
	"github.com/gogpu/swgpu/internal/gpudata"
	"github.com/gogpu/swgpu/internal/raster"
)

// Execute walks cb front to back exactly once against mem, mutating fb in
// place. It is total: every input produces a defined framebuffer, and
// Execute never returns an error — out-of-range resource ids and malformed
// commands are skipped rather than reported, per the pipeline's error
// handling contract.
func Execute(fb *Framebuffer, mem *GPUMemory, cb CommandBuffer) {
	var drawID uint32

	for _, cmd := range cb.commands {
		switch cmd.kind {
		case commandClear:
			execClear(fb, cmd.clear)
		case commandDraw:
			execDraw(fb, mem, cmd.draw, drawID)
			drawID++
		}
	}
}

func execClear(fb *Framebuffer, cmd ClearCommand) {
	if fb.Width <= 0 || fb.Height <= 0 {
		Logger().Warn("swgpu: clear against zero-dimensional framebuffer, skipping",
			"width", fb.Width, "height", fb.Height)
		return
	}

	if cmd.ClearColor {
		r := blend.ToByte(cmd.Color.X())
		g := blend.ToByte(cmd.Color.Y())
		b := blend.ToByte(cmd.Color.Z())
		a := blend.ToByte(cmd.Color.W())
		for i := 0; i < fb.Width*fb.Height; i++ {
			fb.Color[i*4+0] = r
			fb.Color[i*4+1] = g
			fb.Color[i*4+2] = b
			fb.Color[i*4+3] = a
		}
	}

	if cmd.ClearDepth {
		for i := range fb.Depth {
			fb.Depth[i] = cmd.Depth
		}
	}
}

func execDraw(fb *Framebuffer, mem *GPUMemory, cmd DrawCommand, drawID uint32) {
	if fb.Width <= 0 || fb.Height <= 0 {
		Logger().Warn("swgpu: draw against zero-dimensional framebuffer, skipping",
			"width", fb.Width, "height", fb.Height, "drawID", drawID)
		return
	}

	prog, ok := mem.Program(cmd.ProgramID)
	if !ok {
		Logger().Warn("swgpu: draw references unknown program", "programID", cmd.ProgramID, "drawID", drawID)
		return
	}

	if !validateVAO(mem, cmd.VAO) {
		Logger().Warn("swgpu: draw references out-of-range buffer id, skipping", "drawID", drawID)
		return
	}

	Logger().Debug("swgpu: dispatching draw",
		"drawID", drawID, "programID", cmd.ProgramID, "numVertices", cmd.NumVertices, "backfaceCulling", cmd.BackfaceCulling)

	si := mem.shaderInterface()
	lookup := attribute.Lookup(func(id int) (gpudata.Buffer, bool) { return mem.Buffer(id) })

	numTriangles := cmd.NumVertices / 3
	for t := 0; t < numTriangles; t++ {
		vs := [3]assembly.Vertex{}
		for e := 0; e < 3; e++ {
			i := uint32(t*3 + e)
			in := attribute.Assemble(cmd.VAO, lookup, i, drawID)
			out := assembly.InvokeVertexShader(prog, in, si)
			vs[e] = assembly.Transform(out, fb.Width, fb.Height)
		}
		a, b, c := vs[0], vs[1], vs[2]

		if assembly.HasZeroW(a, b, c) {
			continue
		}

		area := assembly.SignedArea(a, b, c)
		if area == 0 {
			Logger().Warn("swgpu: degenerate triangle skipped", "drawID", drawID, "triangle", t)
			continue
		}
		if assembly.ShouldCull(area, cmd.BackfaceCulling) {
			continue
		}

		raster.Rasterize(a, b, c, prog.VS2FS, fb.Width, fb.Height, func(f raster.Fragment) {
			shadeAndBlend(fb, prog, si, f)
		})
	}
}

// validateVAO reports whether every buffer id vao actually names is
// registered in mem. Unbound attribute slots (Type == AttributeEmpty or
// BufferID < 0) are a documented sentinel, not an error, and are skipped.
func validateVAO(mem *GPUMemory, vao VAO) bool {
	if vao.IndexBufferID >= 0 {
		if _, ok := mem.Buffer(vao.IndexBufferID); !ok {
			return false
		}
	}
	for _, a := range vao.Attributes {
		if a.Type == AttributeEmpty || a.BufferID < 0 {
			continue
		}
		if _, ok := mem.Buffer(a.BufferID); !ok {
			return false
		}
	}
	return true
}

func shadeAndBlend(fb *Framebuffer, prog Program, si ShaderInterface, f raster.Fragment) {
	in := InFragment{
		FragCoord:  mgl32.Vec4{float32(f.X) + 0.5, float32(f.Y) + 0.5, f.Depth, 0},
		Attributes: f.Attributes,
	}
	var out OutFragment
	if prog.FragmentShader != nil {
		prog.FragmentShader(&out, in, si)
	}

	idx := fb.PixelIndex(f.X, f.Y)
	src := [4]float32{out.Color.X(), out.Color.Y(), out.Color.Z(), out.Color.W()}
	blend.Apply(fb.Color, fb.Depth, idx, f.Depth, src)
}
