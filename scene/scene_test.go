package scene

import (
	"image/color"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestGridLines(t *testing.T) {
	pts := GridLines(10)
	if len(pts) != 21*4 {
		t.Fatalf("Expected %d points, got %d", 21*4, len(pts))
	}
	for i, p := range pts {
		if p[1] != 0 {
			t.Fatalf("point %d: expected y = 0, got %v", i, p)
		}
		if mgl32.Abs(p[0]) > 10 || mgl32.Abs(p[2]) > 10 {
			t.Fatalf("point %d: out of range %v", i, p)
		}
	}
	// each line is axis aligned and spans the whole grid
	for i := 0; i < len(pts); i += 2 {
		d := pts[i+1].Sub(pts[i])
		if d.Len() != 20 || (d[0] != 0 && d[2] != 0) {
			t.Errorf("line %d: unexpected segment %v -> %v", i/2, pts[i], pts[i+1])
		}
	}
	if GridLines(-1) != nil {
		t.Error("Expected no lines for a negative size")
	}
}

func TestCubeFaces(t *testing.T) {
	seen := map[mgl32.Vec3]bool{}
	for i, f := range CubeFaces() {
		if f.Normal.Len() != 1 {
			t.Errorf("face %d: normal %v is not a unit vector", i, f.Normal)
		}
		seen[f.Normal] = true
		for j, v := range f.Verts {
			if d := v.Dot(f.Normal); d != 1 {
				t.Errorf("face %d vertex %d: %v does not lie on the face plane (dot = %g)", i, j, v, d)
			}
		}
		e1, e2 := f.Verts[1].Sub(f.Verts[0]), f.Verts[2].Sub(f.Verts[1])
		if e1.Cross(e2).Len() == 0 {
			t.Errorf("face %d: degenerate quad", i)
		}
	}
	if len(seen) != 6 {
		t.Errorf("Expected 6 distinct normals, got %d", len(seen))
	}
}

func TestColor(t *testing.T) {
	r, g, b, a := White.RGBA()
	if r != 0xffff || g != 0xffff || b != 0xffff || a != 0xffff {
		t.Errorf("Unexpected white %x %x %x %x", r, g, b, a)
	}
	c := ColorModel.Convert(color.NRGBA{R: 255, A: 128}).(Color)
	if mgl32.Abs(c.A-128.0/255) > 1e-6 || mgl32.Abs(c.R-c.A) > 1e-6 || c.G != 0 {
		t.Errorf("Expected premultiplied red at half opacity, got %+v", c)
	}
	if ColorModel.Convert(Green) != Green {
		t.Error("Expected Color values to be returned as is")
	}
	if v := Blue.Vec4(); v != [4]float32{0, 0, 1, 1} {
		t.Errorf("Unexpected Vec4 %v", v)
	}
	r, _, _, _ = Color{R: 2}.RGBA()
	if r != 0xffff {
		t.Errorf("Expected out of range components to be clamped, got %x", r)
	}
}
