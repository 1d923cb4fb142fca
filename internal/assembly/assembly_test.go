package assembly

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gogpu/swgpu/internal/gpudata"
)

func TestInvokeVertexShaderNil(t *testing.T) {
	prog := gpudata.Program{}
	got := InvokeVertexShader(prog, gpudata.InVertex{}, gpudata.ShaderInterface{})
	if got != (gpudata.OutVertex{}) {
		t.Fatalf("expected zero OutVertex, got %+v", got)
	}
}

func TestInvokeVertexShaderPassthrough(t *testing.T) {
	prog := gpudata.Program{
		VertexShader: func(out *gpudata.OutVertex, in gpudata.InVertex, si gpudata.ShaderInterface) {
			out.Position = mgl32.Vec4{1, 2, 3, 4}
		},
	}
	got := InvokeVertexShader(prog, gpudata.InVertex{}, gpudata.ShaderInterface{})
	if got.Position != (mgl32.Vec4{1, 2, 3, 4}) {
		t.Fatalf("got %+v", got.Position)
	}
}

func TestTransformNDCCorners(t *testing.T) {
	out := gpudata.OutVertex{Position: mgl32.Vec4{-1, -1, 0, 1}}
	v := Transform(out, 4, 4)
	if v.X != 0 || v.Y != 0 || v.Z != 0.5 || v.W != 1 {
		t.Fatalf("got %+v", v)
	}

	out = gpudata.OutVertex{Position: mgl32.Vec4{1, 1, 1, 1}}
	v = Transform(out, 4, 4)
	if v.X != 4 || v.Y != 4 || v.Z != 1 {
		t.Fatalf("got %+v", v)
	}
}

func TestTransformAppliesPerspectiveDivide(t *testing.T) {
	out := gpudata.OutVertex{Position: mgl32.Vec4{2, 2, 2, 2}}
	v := Transform(out, 2, 2)
	// divide by w=2: (1,1,1) in NDC -> full viewport corner.
	if v.X != 2 || v.Y != 2 || v.Z != 1 {
		t.Fatalf("got %+v", v)
	}
}

func TestHasZeroW(t *testing.T) {
	a := Vertex{W: 1}
	b := Vertex{W: 1}
	c := Vertex{W: 0}
	if !HasZeroW(a, b, c) {
		t.Fatal("expected HasZeroW true when one vertex has w=0")
	}
	c.W = 1
	if HasZeroW(a, b, c) {
		t.Fatal("expected HasZeroW false when all w != 0")
	}
}

func TestTransformZeroWProducesNonFinite(t *testing.T) {
	out := gpudata.OutVertex{Position: mgl32.Vec4{1, 1, 1, 0}}
	v := Transform(out, 4, 4)
	if !math.IsInf(float64(v.X), 0) && !math.IsNaN(float64(v.X)) {
		t.Fatalf("expected non-finite X for w=0, got %v", v.X)
	}
}

func TestSignedAreaCCWIsPositive(t *testing.T) {
	// CCW in screen space per spec convention (y grows downward/row-major
	// doesn't matter here, only the formula does).
	a := Vertex{X: 0, Y: 0}
	b := Vertex{X: 2, Y: 0}
	c := Vertex{X: 0, Y: 2}
	area := SignedArea(a, b, c)
	if area <= 0 {
		t.Fatalf("expected positive area, got %v", area)
	}
}

func TestSignedAreaReversedIsNegative(t *testing.T) {
	a := Vertex{X: 0, Y: 0}
	b := Vertex{X: 2, Y: 0}
	c := Vertex{X: 0, Y: 2}
	ccw := SignedArea(a, b, c)
	cw := SignedArea(a, c, b)
	if ccw != -cw {
		t.Fatalf("expected reversing winding to negate area: ccw=%v cw=%v", ccw, cw)
	}
}

func TestShouldCullDegenerateAlwaysCulled(t *testing.T) {
	if !ShouldCull(0, false) {
		t.Fatal("expected degenerate triangle culled regardless of backfaceCulling")
	}
	if !ShouldCull(0, true) {
		t.Fatal("expected degenerate triangle culled regardless of backfaceCulling")
	}
}

func TestShouldCullBackface(t *testing.T) {
	if ShouldCull(5, false) {
		t.Fatal("expected front-facing triangle kept when culling disabled")
	}
	if ShouldCull(5, true) {
		t.Fatal("expected front-facing (positive area) triangle kept when culling enabled")
	}
	if !ShouldCull(-5, true) {
		t.Fatal("expected back-facing triangle culled when culling enabled")
	}
	if ShouldCull(-5, false) {
		t.Fatal("expected back-facing triangle kept when culling disabled")
	}
}
