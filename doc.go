// Package swgpu implements a software rasterizer: a programmable graphics
// pipeline that executes a linear command stream against a framebuffer,
// producing a final color and depth image.
//
// It emulates the essential data path of a GPU with programmable vertex and
// fragment stages: vertex pulling from typed buffers, indexed drawing,
// perspective-correct triangle setup, half-space rasterization with depth
// testing, texture sampling, and alpha-over compositing.
//
// # Quick start
//
//	mem := swgpu.NewMemory(swgpu.DefaultLimits())
//	bufID, _ := mem.AddBuffer(swgpu.NewBuffer(vertexBytes))
//	progID, _ := mem.AddProgram(swgpu.Program{
//		VertexShader:   myVertexShader,
//		FragmentShader: myFragmentShader,
//	})
//
//	fb := swgpu.NewFramebuffer(256, 256)
//
//	cb := swgpu.CommandBuffer{}
//	cb.Clear(swgpu.ClearCommand{ClearColor: true, ClearDepth: true, Depth: 1})
//	cb.Draw(swgpu.DrawCommand{ProgramID: progID, NumVertices: 3, VAO: vao})
//
//	swgpu.Execute(fb, mem, cb)
//
// # Architecture
//
// The public API in this package defines the data model (Framebuffer,
// Buffer, Texture, VAO, GPUMemory, Program, Command) and the single
// entry point, Execute. The pipeline stages themselves live under internal/:
//
//   - internal/attribute: vertex id resolution and typed attribute pulling
//   - internal/assembly: vertex shader invocation, primitive assembly,
//     clip-space normalization, viewport mapping, and backface culling
//   - internal/raster: bounding-box scan and half-space (barycentric)
//     coverage test, with perspective-correct attribute interpolation
//   - internal/blend: depth testing, alpha gating, and source-over blending
//   - internal/texture: nearest-neighbor texture sampling
//
// # Scope
//
// Out of scope: windowing, input, image file I/O, model loading and
// scene-graph construction, and the specific shader programs used by demos.
// Those are external collaborators; the pipeline consumes already-populated
// memory and command buffers. Not implemented: antialiasing, multisampling,
// stencil, geometry/tessellation/compute stages, clipping against arbitrary
// planes, mipmapping, extra framebuffer attachments, and parallel/GPU
// execution — the pipeline is single-threaded and synchronous throughout.
package swgpu
