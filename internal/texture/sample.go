// Package texture implements nearest-neighbor sampling of row-major,
// 1-to-4-channel 8-bit textures, with component-wise fract() wrap.
package texture

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Sample reads the texel nearest to uv from a row-major texture of the
// given dimensions and channel count, wrapping uv with fract() and
// defaulting unassigned channels to black/opaque (R=G=B=0, A=1).
//
// A nil data slice (an empty texture) always samples to (0, 0, 0, 1),
// matching the spec's "texture with null data is legal" rule.
func Sample(data []uint8, width, height, channels int, u, v float32) mgl32.Vec4 {
	if data == nil || width <= 0 || height <= 0 || channels <= 0 {
		return mgl32.Vec4{0, 0, 0, 1}
	}

	uw := fract(u)
	vw := fract(v)

	px := int(uw*float32(width-1) + 0.5)
	py := int(vw*float32(height-1) + 0.5)
	px = clampInt(px, 0, width-1)
	py = clampInt(py, 0, height-1)

	base := (py*width + px) * channels

	out := mgl32.Vec4{0, 0, 0, 1}
	n := channels
	if n > 4 {
		n = 4
	}
	for c := 0; c < n; c++ {
		idx := base + c
		if idx < 0 || idx >= len(data) {
			continue
		}
		out[c] = float32(data[idx]) / 255
	}
	return out
}

// fract returns the fractional part of x, wrapping negative values into
// [0, 1) the way GLSL's fract() does (fract(-0.25) == 0.75).
func fract(x float32) float32 {
	f := x - float32(int(x))
	if f < 0 {
		f++
	}
	return f
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
