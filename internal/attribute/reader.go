// Package attribute implements vertex id resolution and typed attribute
// pulling: given a VAO and a draw-call element index, it resolves the
// vertex id (direct, or via an index buffer) and reads each bound
// attribute out of its buffer at offset+stride*id.
package attribute

import (
	"encoding/binary"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/swgpu/internal/gpudata"
)

// Lookup resolves a buffer id to its data, reporting false for an
// out-of-range id. The caller (GPUMemory) supplies this so that package
// attribute never needs to know about the memory arena's own storage.
type Lookup func(id int) (gpudata.Buffer, bool)

// ResolveVertexID computes gl_VertexID for draw element i: i itself for a
// non-indexed VAO, or the i-th index fetched from the bound index buffer,
// reinterpreted per vao.IndexType.
//
// An out-of-range index buffer id, or an index read that would overflow
// the buffer, resolves to 0 rather than panicking — per spec §7 this is
// "unspecified but memory-safe" territory, not a reportable error.
func ResolveVertexID(vao gpudata.VAO, lookup Lookup, i uint32) uint32 {
	if vao.IndexBufferID < 0 {
		return i
	}

	buf, ok := lookup(vao.IndexBufferID)
	if !ok {
		return 0
	}

	width := vao.IndexType.Size()
	if width == 0 {
		return 0
	}
	base := vao.IndexOffset + int(i)*width
	if base < 0 || base+width > len(buf.Data) {
		return 0
	}

	switch vao.IndexType {
	case gpudata.IndexTypeUint8:
		return uint32(buf.Data[base])
	case gpudata.IndexTypeUint16:
		return uint32(binary.LittleEndian.Uint16(buf.Data[base : base+2]))
	case gpudata.IndexTypeUint32:
		return binary.LittleEndian.Uint32(buf.Data[base : base+4])
	default:
		return 0
	}
}

// ReadAttribute pulls one attribute slot's value out of its bound buffer
// for the given vertex id. An unbound binding (BufferID < 0 or
// Type == AttributeEmpty) and any binding whose read would overflow its
// buffer both produce the zero Attribute — left default, per spec §4.3,
// rather than read.
func ReadAttribute(lookup Lookup, binding gpudata.AttributeBinding, vertexID uint32) gpudata.Attribute {
	if binding.Type == gpudata.AttributeEmpty || binding.BufferID < 0 {
		return gpudata.Attribute{}
	}

	buf, ok := lookup(binding.BufferID)
	if !ok {
		return gpudata.Attribute{}
	}

	size := binding.Type.Size()
	offset := binding.Offset + binding.Stride*int(vertexID)
	if size == 0 || offset < 0 || offset+size > len(buf.Data) {
		return gpudata.Attribute{}
	}

	p := buf.Data[offset : offset+size]
	attr := gpudata.Attribute{Type: binding.Type}

	switch binding.Type {
	case gpudata.AttributeFloat:
		attr.Float = readFloat32(p)
	case gpudata.AttributeVec2:
		attr.Vec2 = mgl32.Vec2{readFloat32(p[0:4]), readFloat32(p[4:8])}
	case gpudata.AttributeVec3:
		attr.Vec3 = mgl32.Vec3{readFloat32(p[0:4]), readFloat32(p[4:8]), readFloat32(p[8:12])}
	case gpudata.AttributeVec4:
		attr.Vec4 = mgl32.Vec4{readFloat32(p[0:4]), readFloat32(p[4:8]), readFloat32(p[8:12]), readFloat32(p[12:16])}
	case gpudata.AttributeUint:
		attr.UInt = binary.LittleEndian.Uint32(p)
	case gpudata.AttributeUVec2:
		attr.UVec2 = gpudata.UVec2{binary.LittleEndian.Uint32(p[0:4]), binary.LittleEndian.Uint32(p[4:8])}
	case gpudata.AttributeUVec3:
		attr.UVec3 = gpudata.UVec3{
			binary.LittleEndian.Uint32(p[0:4]),
			binary.LittleEndian.Uint32(p[4:8]),
			binary.LittleEndian.Uint32(p[8:12]),
		}
	case gpudata.AttributeUVec4:
		attr.UVec4 = gpudata.UVec4{
			binary.LittleEndian.Uint32(p[0:4]),
			binary.LittleEndian.Uint32(p[4:8]),
			binary.LittleEndian.Uint32(p[8:12]),
			binary.LittleEndian.Uint32(p[12:16]),
		}
	}

	return attr
}

// Assemble resolves the vertex id for draw element i and pulls every bound
// attribute of vao into a fresh InVertex, tagged with the given draw id.
func Assemble(vao gpudata.VAO, lookup Lookup, i uint32, drawID uint32) gpudata.InVertex {
	vid := ResolveVertexID(vao, lookup, i)

	in := gpudata.InVertex{VertexID: vid, DrawID: drawID}
	for k := range vao.Attributes {
		in.Attributes[k] = ReadAttribute(lookup, vao.Attributes[k], vid)
	}
	return in
}

func readFloat32(b []byte) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(b))
}
