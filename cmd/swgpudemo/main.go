// Command swgpudemo drives the swgpu pipeline directly: it builds a
// command buffer by hand (a rotating textured quad behind a solid
// triangle) and saves the resulting framebuffer as a PNG. It links no
// rendering logic of its own — everything it draws goes through
// swgpu.Execute.
package main

import (
	"flag"
	"image/png"
	"log"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/swgpu"
)

func main() {
	var (
		width  = flag.Int("width", 256, "framebuffer width")
		height = flag.Int("height", 256, "framebuffer height")
		angle  = flag.Float64("angle", math.Pi/6, "quad rotation, radians")
		output = flag.String("output", "demo.png", "output file")
	)
	flag.Parse()

	fb := swgpu.NewFramebuffer(*width, *height)
	mem := swgpu.NewMemory(swgpu.DefaultLimits())

	cb := buildScene(mem, float32(*angle))
	swgpu.Execute(fb, mem, cb)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("swgpudemo: create output: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, fb); err != nil {
		log.Fatalf("swgpudemo: encode png: %v", err)
	}

	log.Printf("swgpudemo: saved %s (%dx%d)", *output, *width, *height)
}

// buildScene assembles a command buffer: a CLEAR to dark gray, a rotating
// textured quad (two triangles), and a foreground colored triangle drawn
// on top with depth testing.
func buildScene(mem *swgpu.GPUMemory, angle float32) swgpu.CommandBuffer {
	checkerTex := checkerboard(8, 8, 32)
	texID, err := mem.AddTexture(checkerTex)
	if err != nil {
		log.Fatalf("swgpudemo: register texture: %v", err)
	}

	quadProgID := registerQuadProgram(mem, texID)
	triProgID := registerTriangleProgram(mem)

	quadVAO := buildQuadVAO(mem, angle)
	triVAO := buildTriangleVAO(mem)

	var cb swgpu.CommandBuffer
	cb.Clear(swgpu.ClearCommand{
		Color:      mgl32.Vec4{0.05, 0.05, 0.08, 1},
		ClearColor: true,
		ClearDepth: true,
		Depth:      1,
	})
	cb.Draw(swgpu.DrawCommand{ProgramID: quadProgID, NumVertices: 6, VAO: quadVAO, BackfaceCulling: false})
	cb.Draw(swgpu.DrawCommand{ProgramID: triProgID, NumVertices: 3, VAO: triVAO, BackfaceCulling: true})
	return cb
}

// quad vertex layout: position (vec4, slot 0), uv (vec2, slot 1).
const quadStride = 16 + 8

func buildQuadVAO(mem *swgpu.GPUMemory, angle float32) swgpu.VAO {
	rot := mgl32.Rotate3DZ(angle)

	corners := [4]mgl32.Vec2{{-0.8, -0.8}, {0.8, -0.8}, {0.8, 0.8}, {-0.8, 0.8}}
	uvs := [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

	order := [6]int{0, 1, 2, 0, 2, 3}
	var data []byte
	for _, idx := range order {
		p := rot.Mul3x1(mgl32.Vec3{corners[idx].X(), corners[idx].Y(), 0})
		data = appendVec4(data, mgl32.Vec4{p.X(), p.Y(), 0.5, 1})
		data = appendVec2(data, uvs[idx])
	}

	bufID, err := mem.AddBuffer(swgpu.NewBuffer(data))
	if err != nil {
		log.Fatalf("swgpudemo: register quad buffer: %v", err)
	}

	vao := swgpu.NewVAO()
	vao.Attributes[0] = swgpu.AttributeBinding{BufferID: bufID, Type: swgpu.AttributeVec4, Stride: quadStride}
	vao.Attributes[1] = swgpu.AttributeBinding{BufferID: bufID, Type: swgpu.AttributeVec2, Offset: 16, Stride: quadStride}
	return vao
}

func registerQuadProgram(mem *swgpu.GPUMemory, texID int) int {
	texUniformID, err := mem.AddUniform(swgpu.Uniform{Type: swgpu.UniformInt, Int: int32(texID)})
	if err != nil {
		log.Fatalf("swgpudemo: register texture uniform: %v", err)
	}

	vs := func(out *swgpu.OutVertex, in swgpu.InVertex, si swgpu.ShaderInterface) {
		out.Position = in.Attributes[0].Vec4
		out.Attributes[0] = in.Attributes[1]
	}
	fs := func(out *swgpu.OutFragment, in swgpu.InFragment, si swgpu.ShaderInterface) {
		tex := si.Uniform(texUniformID).Int
		out.Color = si.Sample(int(tex), in.Attributes[0].Vec2)
	}

	vs2fs := [swgpu.MaxAttributes]swgpu.AttributeType{}
	vs2fs[0] = swgpu.AttributeVec2

	progID, err := mem.AddProgram(swgpu.Program{VertexShader: vs, FragmentShader: fs, VS2FS: vs2fs})
	if err != nil {
		log.Fatalf("swgpudemo: register quad program: %v", err)
	}
	return progID
}

func buildTriangleVAO(mem *swgpu.GPUMemory) swgpu.VAO {
	var data []byte
	data = appendVec4(data, mgl32.Vec4{-0.4, -0.5, 0.2, 1})
	data = appendVec3(data, mgl32.Vec3{1, 0.2, 0.2})
	data = appendVec4(data, mgl32.Vec4{0.6, -0.5, 0.2, 1})
	data = appendVec3(data, mgl32.Vec3{0.2, 1, 0.2})
	data = appendVec4(data, mgl32.Vec4{0.1, 0.6, 0.2, 1})
	data = appendVec3(data, mgl32.Vec3{0.2, 0.2, 1})

	bufID, err := mem.AddBuffer(swgpu.NewBuffer(data))
	if err != nil {
		log.Fatalf("swgpudemo: register triangle buffer: %v", err)
	}

	const stride = 16 + 12
	vao := swgpu.NewVAO()
	vao.Attributes[0] = swgpu.AttributeBinding{BufferID: bufID, Type: swgpu.AttributeVec4, Stride: stride}
	vao.Attributes[1] = swgpu.AttributeBinding{BufferID: bufID, Type: swgpu.AttributeVec3, Offset: 16, Stride: stride}
	return vao
}

func registerTriangleProgram(mem *swgpu.GPUMemory) int {
	vs := func(out *swgpu.OutVertex, in swgpu.InVertex, si swgpu.ShaderInterface) {
		out.Position = in.Attributes[0].Vec4
		out.Attributes[0] = in.Attributes[1]
	}
	fs := func(out *swgpu.OutFragment, in swgpu.InFragment, si swgpu.ShaderInterface) {
		c := in.Attributes[0].Vec3
		out.Color = mgl32.Vec4{c.X(), c.Y(), c.Z(), 1}
	}

	vs2fs := [swgpu.MaxAttributes]swgpu.AttributeType{}
	vs2fs[0] = swgpu.AttributeVec3

	progID, err := mem.AddProgram(swgpu.Program{VertexShader: vs, FragmentShader: fs, VS2FS: vs2fs})
	if err != nil {
		log.Fatalf("swgpudemo: register triangle program: %v", err)
	}
	return progID
}

func checkerboard(cellsX, cellsY, cellSize int) swgpu.Texture {
	w, h := cellsX*cellSize, cellsY*cellSize
	data := make([]uint8, w*h*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			light := ((x/cellSize)+(y/cellSize))%2 == 0
			i := (y*w + x) * 3
			if light {
				data[i], data[i+1], data[i+2] = 230, 230, 230
			} else {
				data[i], data[i+1], data[i+2] = 30, 30, 40
			}
		}
	}
	return swgpu.NewTexture(data, w, h, 3)
}

func appendVec4(data []byte, v mgl32.Vec4) []byte {
	data = appendFloat32(data, v.X())
	data = appendFloat32(data, v.Y())
	data = appendFloat32(data, v.Z())
	data = appendFloat32(data, v.W())
	return data
}

func appendVec3(data []byte, v mgl32.Vec3) []byte {
	data = appendFloat32(data, v.X())
	data = appendFloat32(data, v.Y())
	data = appendFloat32(data, v.Z())
	return data
}

func appendVec2(data []byte, v mgl32.Vec2) []byte {
	data = appendFloat32(data, v.X())
	data = appendFloat32(data, v.Y())
	return data
}

func appendFloat32(data []byte, f float32) []byte {
	bits := math.Float32bits(f)
	return append(data, byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24))
}
