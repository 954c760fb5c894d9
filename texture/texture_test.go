package texture

import (
	"image"
	"testing"
)

func TestRegionUV(t *testing.T) {
	tex := &Texture{width: 100, height: 50}
	r := tex.Region(image.Rect(10, 5, 60, 30), image.Pt(2, 3))
	if sz := r.Size(); sz != image.Pt(50, 25) {
		t.Errorf("Expected size 50x25, got %v", sz)
	}
	if uv := r.UV(); uv != [4]float32{0.1, 0.6, 0.6, 0.1} {
		t.Errorf("Unexpected UV %v", uv)
	}

	sub := r.Region(image.Rect(0, 0, 10, 10), image.Pt(1, 1))
	if o := sub.Origin(); o != image.Pt(11, 6) {
		t.Errorf("Expected sub-region origin (11,6), got %v", o)
	}
	if uv := sub.UV(); uv != [4]float32{0.1, 0.3, 0.2, 0.1} {
		t.Errorf("Unexpected sub-region UV %v", uv)
	}
}

func TestQuad(t *testing.T) {
	tex := &Texture{width: 64, height: 64}
	r := tex.Region(image.Rect(0, 0, 32, 16), image.Pt(4, 12))
	q := Quad(r, 100, 200)
	want := [4][4]float32{
		{96, 188, 0, 0},
		{96, 204, 0, 0.25},
		{128, 204, 0.5, 0.25},
		{128, 188, 0.5, 0},
	}
	if q != want {
		t.Errorf("Expected %v, got %v", want, q)
	}

	q = Quad(tex, 0, 0)
	if q[2] != [4]float32{64, 64, 1, 1} {
		t.Errorf("Unexpected full texture corner %v", q[2])
	}
}
