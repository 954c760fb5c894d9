package chasecam

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestAspect(t *testing.T) {
	cases := []struct {
		fb   FrameBuffer
		want float32
	}{
		{FrameBuffer{640, 480}, 640.0 / 480},
		{FrameBuffer{320, 320}, 1},
		{FrameBuffer{800, 0}, 800},
	}
	for _, c := range cases {
		if got := c.fb.Aspect(); got != c.want {
			t.Errorf("%v: expected aspect %g, got %g", c.fb, c.want, got)
		}
	}
}

func TestScreenProjection(t *testing.T) {
	fb := FrameBuffer{640, 480}
	m := fb.ScreenProjection()
	cases := []struct {
		p    mgl32.Vec2
		want mgl32.Vec2
	}{
		{mgl32.Vec2{0, 0}, mgl32.Vec2{-1, 1}},
		{mgl32.Vec2{640, 480}, mgl32.Vec2{1, -1}},
		{mgl32.Vec2{320, 240}, mgl32.Vec2{0, 0}},
	}
	for _, c := range cases {
		got := m.Mul4x1(c.p.Vec4(0, 1)).Vec2()
		if !near(got, c.want) {
			t.Errorf("%v: expected %v, got %v", c.p, c.want, got)
		}
		if fbgl := fb.FbToGL(c.p); !near(fbgl, c.want) {
			t.Errorf("FbToGL(%v): expected %v, got %v", c.p, c.want, fbgl)
		}
	}
}

func TestProjectionNearPlane(t *testing.T) {
	v := DefaultView
	m := v.Projection(FrameBuffer{640, 480})
	p := m.Mul4x1(mgl32.Vec4{0, 0, -v.Near, 1})
	if z := p[2] / p[3]; !mgl32.FloatEqualThreshold(z, -1, 1e-4) {
		t.Errorf("Expected near plane to map to z=-1, got %g", z)
	}
}

func near(a, b mgl32.Vec2) bool {
	return mgl32.Abs(a[0]-b[0]) < 1e-5 && mgl32.Abs(a[1]-b[1]) < 1e-5
}
