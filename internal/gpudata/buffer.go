// Package gpudata defines the pipeline's core data model: buffers,
// textures, vertex array objects, the tagged-union attribute and uniform
// slots, and the per-vertex/per-fragment record shapes. It has no
// dependency on the public swgpu package, which re-exports these types for
// API ergonomics — the algorithmic internal packages (attribute, assembly,
// raster, blend) depend on gpudata directly, the same way the teacher
// package's render subpackage referenced raster.FillRule directly instead
// of through an alias maintained by the root package.
package gpudata

// Buffer is an opaque, read-only byte region used for both vertex
// attributes and indices.
type Buffer struct {
	Data []byte
}

// Size returns the buffer's length in bytes.
func (b Buffer) Size() int {
	return len(b.Data)
}

// Texture is a row-major 2D image of 1..4 channels, 8 bits each. Pixel
// (x, y) channel c lives at byte (y*Width+x)*Channels + c.
//
// A Texture with nil Data is legal: sampling it always returns (0, 0, 0, 1).
type Texture struct {
	Data          []uint8
	Width, Height int
	Channels      int
}

// IndexType selects the element width of an index buffer.
type IndexType uint8

const (
	IndexTypeUint8 IndexType = iota
	IndexTypeUint16
	IndexTypeUint32
)

// Size returns the byte width of one index of this type.
func (t IndexType) Size() int {
	switch t {
	case IndexTypeUint8:
		return 1
	case IndexTypeUint16:
		return 2
	case IndexTypeUint32:
		return 4
	default:
		return 0
	}
}
