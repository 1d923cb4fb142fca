package swgpu

import "github.com/gogpu/swgpu/internal/gpudata"

// Buffer is an opaque, read-only byte region used for both vertex
// attributes and indices. The pipeline never allocates from or mutates a
// Buffer; it only reads sizeof(type) bytes at a computed offset.
type Buffer = gpudata.Buffer

// NewBuffer wraps data as a read-only Buffer. The slice is not copied: the
// caller must not mutate it while a CommandBuffer referencing it executes.
func NewBuffer(data []byte) Buffer {
	return Buffer{Data: data}
}

// Texture is a row-major 2D image of 1..4 channels, 8 bits each. Pixel
// (x, y) channel c lives at byte (y*Width+x)*Channels + c.
//
// A Texture with nil Data is legal: sampling it always returns (0, 0, 0, 1).
type Texture = gpudata.Texture

// NewTexture creates a Texture from raw row-major pixel data. Channels must
// be in [1, 4]; data may be nil to create a "black, opaque" placeholder
// texture.
func NewTexture(data []uint8, width, height, channels int) Texture {
	return Texture{Data: data, Width: width, Height: height, Channels: channels}
}

// IndexType selects the element width of an index buffer.
type IndexType = gpudata.IndexType

const (
	IndexTypeUint8  = gpudata.IndexTypeUint8
	IndexTypeUint16 = gpudata.IndexTypeUint16
	IndexTypeUint32 = gpudata.IndexTypeUint32
)

// AttributeType tags the variant carried by an Attribute slot. The zero
// value, AttributeEmpty, marks an unbound slot: the attribute reader never
// writes to it and shaders must not read it.
type AttributeType = gpudata.AttributeType

const (
	AttributeEmpty = gpudata.AttributeEmpty
	AttributeFloat = gpudata.AttributeFloat
	AttributeVec2  = gpudata.AttributeVec2
	AttributeVec3  = gpudata.AttributeVec3
	AttributeVec4  = gpudata.AttributeVec4
	AttributeUint  = gpudata.AttributeUint
	AttributeUVec2 = gpudata.AttributeUVec2
	AttributeUVec3 = gpudata.AttributeUVec3
	AttributeUVec4 = gpudata.AttributeUVec4
)

// UVec2, UVec3 and UVec4 are the unsigned-integer vector attribute/uniform
// payload types.
type UVec2 = gpudata.UVec2
type UVec3 = gpudata.UVec3
type UVec4 = gpudata.UVec4

// MaxAttributes is the capacity of a VAO's attribute binding table and of
// each vertex/fragment's attribute slot array.
const MaxAttributes = gpudata.MaxAttributes

// AttributeBinding describes how to pull one vertex attribute out of a
// buffer: the declared type, the buffer it lives in, and its byte layout.
// A binding with BufferID < 0 (or Type == AttributeEmpty) is unbound: the
// attribute reader leaves the corresponding slot at its zero value.
type AttributeBinding = gpudata.AttributeBinding

// VAO (Vertex Array Object) is the binding table from attribute index to
// (buffer, type, offset, stride), plus an optional index buffer binding.
type VAO = gpudata.VAO

// NewVAO returns a VAO with no index buffer (IndexBufferID == -1) and every
// attribute slot unbound.
func NewVAO() VAO {
	return gpudata.NewVAO()
}
