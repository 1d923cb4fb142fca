package swgpu

import (
	"errors"
	"fmt"
)

// Registration errors returned when a GPUMemory arena is full. Execute
// itself never returns an error (per spec §7 the pipeline is total once
// resources are registered); only building up a GPUMemory is fallible.
// AddBuffer/AddTexture/AddProgram/AddUniform wrap these sentinels with
// %w plus the id/count that triggered them, the way command_encoder.go's
// copy-validation errors wrap ErrCopyOffsetNotAligned with the offending
// offset; callers that want the bare condition can still errors.Is against
// these values.
var (
	ErrBufferArenaFull  = errors.New("swgpu: buffer arena is full")
	ErrTextureArenaFull = errors.New("swgpu: texture arena is full")
	ErrProgramArenaFull = errors.New("swgpu: program arena is full")
	ErrUniformArenaFull = errors.New("swgpu: uniform arena is full")
)

// Limits bounds the fixed-capacity arenas of a GPUMemory, plus the
// CommandBuffer capacity accepted by NewCommandBuffer. Per spec §9, these
// caps are construction-time configurable rather than hardcoded.
//
// MaxAttributes (internal/gpudata.MaxAttributes) is deliberately not a
// Limits field: it sizes the fixed [MaxAttributes]Attribute arrays that
// keep vertex/fragment records allocation-free on the hot path, so it's a
// compile-time constant, not something a construction-time value could
// resize.
type Limits struct {
	MaxBuffers  int
	MaxTextures int
	MaxPrograms int
	MaxUniforms int
	MaxCommands int
}

// DefaultLimits returns the limits used by NewMemory when none are given:
// generous enough for typical demo/test scenes without growing unbounded.
func DefaultLimits() Limits {
	return Limits{
		MaxBuffers:  64,
		MaxTextures: 32,
		MaxPrograms: 16,
		MaxUniforms: 256,
		MaxCommands: 100,
	}
}

// GPUMemory bundles buffers, textures, programs and uniforms: the sole
// execution environment for Execute. Buffers and textures are read-only
// during execution; the framebuffer passed to Execute is the only thing
// the pipeline mutates.
type GPUMemory struct {
	limits Limits

	buffers  []Buffer
	textures []Texture
	programs []Program
	uniforms []Uniform
}

// NewMemory creates an empty GPUMemory with the given arena limits.
func NewMemory(limits Limits) *GPUMemory {
	return &GPUMemory{
		limits:   limits,
		buffers:  make([]Buffer, 0, limits.MaxBuffers),
		textures: make([]Texture, 0, limits.MaxTextures),
		programs: make([]Program, 0, limits.MaxPrograms),
		uniforms: make([]Uniform, 0, limits.MaxUniforms),
	}
}

// AddBuffer registers a buffer and returns its id, or ErrBufferArenaFull if
// the arena is already at MaxBuffers.
func (m *GPUMemory) AddBuffer(b Buffer) (int, error) {
	if len(m.buffers) >= m.limits.MaxBuffers {
		return -1, fmt.Errorf("%w: %d buffers registered, limit %d", ErrBufferArenaFull, len(m.buffers), m.limits.MaxBuffers)
	}
	m.buffers = append(m.buffers, b)
	return len(m.buffers) - 1, nil
}

// AddTexture registers a texture and returns its id, or ErrTextureArenaFull
// if the arena is already at MaxTextures.
func (m *GPUMemory) AddTexture(t Texture) (int, error) {
	if len(m.textures) >= m.limits.MaxTextures {
		return -1, fmt.Errorf("%w: %d textures registered, limit %d", ErrTextureArenaFull, len(m.textures), m.limits.MaxTextures)
	}
	m.textures = append(m.textures, t)
	return len(m.textures) - 1, nil
}

// AddProgram registers a program and returns its id, or ErrProgramArenaFull
// if the arena is already at MaxPrograms.
func (m *GPUMemory) AddProgram(p Program) (int, error) {
	if len(m.programs) >= m.limits.MaxPrograms {
		return -1, fmt.Errorf("%w: %d programs registered, limit %d", ErrProgramArenaFull, len(m.programs), m.limits.MaxPrograms)
	}
	m.programs = append(m.programs, p)
	return len(m.programs) - 1, nil
}

// AddUniform registers a uniform and returns its id, or ErrUniformArenaFull
// if the arena is already at MaxUniforms.
func (m *GPUMemory) AddUniform(u Uniform) (int, error) {
	if len(m.uniforms) >= m.limits.MaxUniforms {
		return -1, fmt.Errorf("%w: %d uniforms registered, limit %d", ErrUniformArenaFull, len(m.uniforms), m.limits.MaxUniforms)
	}
	m.uniforms = append(m.uniforms, u)
	return len(m.uniforms) - 1, nil
}

// Buffer returns the buffer at id and whether id was in range.
func (m *GPUMemory) Buffer(id int) (Buffer, bool) {
	if id < 0 || id >= len(m.buffers) {
		return Buffer{}, false
	}
	return m.buffers[id], true
}

// Texture returns the texture at id and whether id was in range.
func (m *GPUMemory) Texture(id int) (Texture, bool) {
	if id < 0 || id >= len(m.textures) {
		return Texture{}, false
	}
	return m.textures[id], true
}

// Program returns the program at id and whether id was in range.
func (m *GPUMemory) Program(id int) (Program, bool) {
	if id < 0 || id >= len(m.programs) {
		return Program{}, false
	}
	return m.programs[id], true
}

// shaderInterface builds the read-only view over this memory's uniforms
// and textures, passed to every shader invocation.
func (m *GPUMemory) shaderInterface() ShaderInterface {
	return ShaderInterface{Uniforms: m.uniforms, Textures: m.textures}
}
