package gpudata

import "github.com/go-gl/mathgl/mgl32"

// AttributeType tags the variant carried by an Attribute slot. The zero
// value, AttributeEmpty, marks an unbound slot: the attribute reader never
// writes to it and shaders must not read it.
type AttributeType uint8

const (
	AttributeEmpty AttributeType = iota
	AttributeFloat
	AttributeVec2
	AttributeVec3
	AttributeVec4
	AttributeUint
	AttributeUVec2
	AttributeUVec3
	AttributeUVec4
)

// Size returns the byte width of one element of this attribute type, as
// read from a buffer by the typed attribute reader.
func (t AttributeType) Size() int {
	switch t {
	case AttributeFloat, AttributeUint:
		return 4
	case AttributeVec2, AttributeUVec2:
		return 8
	case AttributeVec3, AttributeUVec3:
		return 12
	case AttributeVec4, AttributeUVec4:
		return 16
	default:
		return 0
	}
}

// IsInteger reports whether this type uses flat (not perspective-correct)
// fragment interpolation, per spec §4.8.
func (t AttributeType) IsInteger() bool {
	switch t {
	case AttributeUint, AttributeUVec2, AttributeUVec3, AttributeUVec4:
		return true
	default:
		return false
	}
}

// String renders the attribute type's name, used in log output.
func (t AttributeType) String() string {
	switch t {
	case AttributeEmpty:
		return "empty"
	case AttributeFloat:
		return "float"
	case AttributeVec2:
		return "vec2"
	case AttributeVec3:
		return "vec3"
	case AttributeVec4:
		return "vec4"
	case AttributeUint:
		return "uint"
	case AttributeUVec2:
		return "uvec2"
	case AttributeUVec3:
		return "uvec3"
	case AttributeUVec4:
		return "uvec4"
	default:
		return "unknown"
	}
}

// UVec2, UVec3 and UVec4 are the unsigned-integer vector attribute/uniform
// payload types. No example in the corpus ships an unsigned vector type
// alongside its float counterparts, so these are declared directly here
// rather than pulled in from a dependency (see DESIGN.md).
type UVec2 [2]uint32
type UVec3 [3]uint32
type UVec4 [4]uint32

// MaxAttributes is the fixed, compile-time capacity of a VAO's attribute
// binding table and of each vertex/fragment's attribute slot array.
const MaxAttributes = 16

// Attribute is a tagged union over the eight attribute variants a vertex or
// fragment slot can carry. It's a discriminated struct (Type field plus
// every possible payload field inline) rather than an interface: slots
// live in fixed-size arrays on the hot path of every vertex and fragment,
// and an interface variant would box and allocate on every assignment.
//
// The shader reads whichever field matches Type; all other fields are
// meaningless. The zero value is the AttributeEmpty variant.
type Attribute struct {
	Type AttributeType

	Float float32
	Vec2  mgl32.Vec2
	Vec3  mgl32.Vec3
	Vec4  mgl32.Vec4
	UInt  uint32
	UVec2 UVec2
	UVec3 UVec3
	UVec4 UVec4
}

// AttributeBinding describes how to pull one vertex attribute out of a
// buffer: the declared type, the buffer it lives in, and its byte layout.
// A binding with BufferID < 0 (or Type == AttributeEmpty) is unbound: the
// attribute reader leaves the corresponding slot at its zero value.
type AttributeBinding struct {
	BufferID int
	Type     AttributeType
	Offset   int // bytes
	Stride   int // bytes
}

// VAO (Vertex Array Object) is the binding table from attribute index to
// (buffer, type, offset, stride), plus an optional index buffer binding.
type VAO struct {
	Attributes [MaxAttributes]AttributeBinding

	// IndexBufferID is the buffer holding indices, or -1 for a non-indexed
	// draw (gl_VertexID == the draw's element index).
	IndexBufferID int
	IndexOffset   int
	IndexType     IndexType
}

// NewVAO returns a VAO with no index buffer (IndexBufferID == -1) and every
// attribute slot unbound.
func NewVAO() VAO {
	return VAO{IndexBufferID: -1}
}

// InVertex is the per-vertex input handed to the vertex shader: the
// resolved vertex/draw ids plus whichever attributes the VAO bound.
type InVertex struct {
	VertexID uint32
	DrawID   uint32

	Attributes [MaxAttributes]Attribute
}

// OutVertex is the per-vertex output the vertex shader populates: clip-space
// position plus any attributes it chooses to pass through to the fragment
// stage (per the owning Program's VS2FS declaration).
type OutVertex struct {
	Position mgl32.Vec4

	Attributes [MaxAttributes]Attribute
}

// InFragment is the per-fragment input handed to the fragment shader:
// interpolated screen-space coordinates plus interpolated attributes.
type InFragment struct {
	// FragCoord.X, FragCoord.Y are pixel coordinates with a +0.5 sample
	// center; FragCoord.Z is the interpolated depth in [0, 1]; FragCoord.W
	// is unused.
	FragCoord mgl32.Vec4

	Attributes [MaxAttributes]Attribute
}

// OutFragment is the per-fragment output the fragment shader populates.
type OutFragment struct {
	Color mgl32.Vec4
}
