// Package raster implements half-space/barycentric triangle rasterization:
// bounding-box scan, coverage test, and perspective-correct (or flat, for
// integer-typed slots) attribute interpolation.
package raster

import (
	"math"

	"github.com/gogpu/swgpu/internal/assembly"
	"github.com/gogpu/swgpu/internal/gpudata"
)

// Fragment is one covered pixel sample: its pixel coordinates, interpolated
// depth, and interpolated attributes, ready for the fragment shader.
type Fragment struct {
	X, Y       int
	Depth      float32
	Attributes [gpudata.MaxAttributes]gpudata.Attribute
}

// Rasterize scans the screen-space bounding box of triangle (a, b, c),
// clipped to [0, width-1] x [0, height-1], and calls emit once per pixel
// whose sample point (x+0.5, y+0.5) falls inside the triangle (inclusive
// half-space test — no top-left tie-breaking rule is applied). vs2fs
// declares, per attribute slot, the type to interpolate (AttributeEmpty
// slots are skipped and left at their zero value).
//
// Pixels are visited row-major, ascending y then x, matching the reference
// scan order.
func Rasterize(a, b, c assembly.Vertex, vs2fs [gpudata.MaxAttributes]gpudata.AttributeType, width, height int, emit func(Fragment)) {
	minX, minY, maxX, maxY := boundingBox(a, b, c, width, height)

	denom := (b.Y-c.Y)*(a.X-c.X) + (c.X-b.X)*(a.Y-c.Y)
	if denom == 0 {
		return
	}

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5

			la := ((b.Y-c.Y)*(px-c.X) + (c.X-b.X)*(py-c.Y)) / denom
			lb := ((c.Y-a.Y)*(px-c.X) + (a.X-c.X)*(py-c.Y)) / denom
			lc := 1 - la - lb

			if la < 0 || lb < 0 || lc < 0 {
				continue
			}

			// la*a.Z + lb*b.Z + lc*c.Z, written relative to c.Z (lc = 1-la-lb)
			// so a triangle with equal vertex depths yields exactly that depth.
			frag := Fragment{
				X:     x,
				Y:     y,
				Depth: c.Z + la*(a.Z-c.Z) + lb*(b.Z-c.Z),
			}
			for k := 0; k < gpudata.MaxAttributes; k++ {
				frag.Attributes[k] = interpolate(vs2fs[k], k, a, b, c, la, lb, lc)
			}
			emit(frag)
		}
	}
}

func boundingBox(a, b, c assembly.Vertex, width, height int) (minX, minY, maxX, maxY int) {
	minXf := min3(a.X, b.X, c.X)
	maxXf := max3(a.X, b.X, c.X)
	minYf := min3(a.Y, b.Y, c.Y)
	maxYf := max3(a.Y, b.Y, c.Y)

	minX = clampInt(int(math.Floor(float64(minXf))), 0, width-1)
	maxX = clampInt(int(math.Ceil(float64(maxXf))), 0, width-1)
	minY = clampInt(int(math.Floor(float64(minYf))), 0, height-1)
	maxY = clampInt(int(math.Ceil(float64(maxYf))), 0, height-1)
	return
}

// interpolate produces the value of attribute slot k at barycentric weights
// (la, lb, lc). Integer-typed slots (per AttributeType.IsInteger) use flat
// interpolation from the provoking vertex a; float-typed slots use
// perspective-correct interpolation weighted by 1/w.
func interpolate(typ gpudata.AttributeType, k int, a, b, c assembly.Vertex, la, lb, lc float32) gpudata.Attribute {
	if typ == gpudata.AttributeEmpty {
		return gpudata.Attribute{}
	}

	if typ.IsInteger() {
		attr := a.Attributes[k]
		attr.Type = typ
		return attr
	}

	wa, wb, wc := la/a.W, lb/b.W, lc/c.W
	sumW := wa + wb + wc

	attr := gpudata.Attribute{Type: typ}
	switch typ {
	case gpudata.AttributeFloat:
		attr.Float = (wa*a.Attributes[k].Float + wb*b.Attributes[k].Float + wc*c.Attributes[k].Float) / sumW
	case gpudata.AttributeVec2:
		av, bv, cv := a.Attributes[k].Vec2, b.Attributes[k].Vec2, c.Attributes[k].Vec2
		attr.Vec2[0] = (wa*av[0] + wb*bv[0] + wc*cv[0]) / sumW
		attr.Vec2[1] = (wa*av[1] + wb*bv[1] + wc*cv[1]) / sumW
	case gpudata.AttributeVec3:
		av, bv, cv := a.Attributes[k].Vec3, b.Attributes[k].Vec3, c.Attributes[k].Vec3
		for i := 0; i < 3; i++ {
			attr.Vec3[i] = (wa*av[i] + wb*bv[i] + wc*cv[i]) / sumW
		}
	case gpudata.AttributeVec4:
		av, bv, cv := a.Attributes[k].Vec4, b.Attributes[k].Vec4, c.Attributes[k].Vec4
		for i := 0; i < 4; i++ {
			attr.Vec4[i] = (wa*av[i] + wb*bv[i] + wc*cv[i]) / sumW
		}
	}
	return attr
}

func min3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func max3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
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
