// Package text draws strings with a glyph atlas built on demand from a
// font.Face.
//
package text

import (
	"image"
	"image/color"
	"strings"

	"github.com/db47h/chasecam/texture"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// SubPixelsX is the number of horizontal glyph positions cached per pixel.
// Faces should be created with a matching truetype.Options.SubPixelsX.
//
const SubPixelsX = 8

// glyph positions are quantized to 1/8 pixel on both axes
const (
	subPixelBias = 4
	subPixelMask = -8
)

// TextureSize is the width and height of glyph atlas textures. It must not
// exceed GL_MAX_TEXTURE_SIZE, which is at least 1024 on GL 2.1 hardware.
//
var TextureSize = 1024

// Drawer draws text using a texture atlas of rendered glyphs.
//
// Glyphs are rasterized the first time they are drawn at a given sub-pixel
// offset. A Drawer must only be used from the goroutine owning the GL context.
//
type Drawer struct {
	face   font.Face
	glyphs []texture.Region
	cache  map[cacheKey]cacheValue
	ts     []*texture.Texture // current texture
	p      image.Point        // current point
	lh     int                // line height in current texture
	mf     texture.FilterMode
}

type cacheKey struct {
	r  rune
	fx uint8
	fy uint8
}

type cacheValue struct {
	index int // glyph index
	adv   fixed.Int26_6
}

// Hinting mirrors font.Hinting so that callers configuring a Drawer through
// package assets need not import x/image.
//
type Hinting int

// Hinting values.
//
const (
	HintingNone     Hinting = Hinting(font.HintingNone)
	HintingVertical         = Hinting(font.HintingVertical)
	HintingFull             = Hinting(font.HintingFull)
)

// NewDrawer returns a Drawer for the face f. Glyph textures are magnified
// with magFilter.
//
func NewDrawer(f font.Face, magFilter texture.FilterMode) *Drawer {
	return &Drawer{
		face:  f,
		cache: make(map[cacheKey]cacheValue),
		mf:    magFilter,
	}
}

// Face returns the font face.
//
func (d *Drawer) Face() font.Face {
	return d.face
}

// DrawString draws s with its baseline starting at x, y and returns the
// advance. The current projection must map one unit to one pixel with the y
// axis pointing down.
//
func (d *Drawer) DrawString(x, y float32, s string, c color.Color) (advance float32) {
	dot := fixed.Point26_6{X: fixed.Int26_6(x * 64), Y: fixed.Int26_6(y * 64)}
	sp := dot.X
	prev := rune(-1)
	for _, r := range s {
		dot.X = d.drawRune(dot, prev, r, c)
		prev = r
	}
	return float32(dot.X-sp) / 64
}

// DrawLines draws each line of s below the previous one, the first baseline
// being at x, y. It returns the bounds of the drawn block.
//
func (d *Drawer) DrawLines(x, y float32, s string, c color.Color) image.Rectangle {
	m := d.face.Metrics()
	lh := float32(m.Height) / 64
	var w float32
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if a := d.DrawString(x, y+float32(i)*lh, l, c); a > w {
			w = a
		}
	}
	top := int(y - float32(m.Ascent)/64)
	return image.Rect(int(x), top, int(x+w+0.5), top+int(float32(len(lines))*lh+0.5))
}

func (d *Drawer) drawRune(dot fixed.Point26_6, prev, r rune, c color.Color) fixed.Int26_6 {
	if prev >= 0 {
		dot.X += d.face.Kern(prev, r)
	}
	dp, glyph, advance := d.Glyph(dot, r)
	if glyph != nil {
		texture.Draw(glyph, float32(dp.X), float32(dp.Y), c)
	}
	return dot.X + advance
}

func (d *Drawer) currentTexture() *texture.Texture {
	l := len(d.ts)
	if l == 0 {
		return nil
	}
	return d.ts[l-1]
}

// Glyph returns the atlas region for r drawn at dot, the integer position at
// which to draw it and the advance. The region is nil for empty glyphs.
//
func (d *Drawer) Glyph(dot fixed.Point26_6, r rune) (dp image.Point, gr *texture.Region, advance fixed.Int26_6) {
	dx, dy := (dot.X+subPixelBias)&subPixelMask, (dot.Y+subPixelBias)&subPixelMask
	ix, iy := int(dx>>6), int(dy>>6)

	key := cacheKey{r, uint8(dx & 0x3f), uint8(dy & 0x3f)}
	if v, ok := d.cache[key]; ok {
		if idx := v.index; idx >= 0 {
			return image.Point{X: ix, Y: iy}, &d.glyphs[idx], v.adv
		}
		return image.Point{}, nil, v.adv
	}

	dr, mask, maskp, advance, ok := d.face.Glyph(fixed.Point26_6{X: dot.X & 0x3f, Y: dot.Y & 0x3f}, r)
	if !ok {
		return image.Point{}, nil, 0
	}
	sz := dr.Size()
	if sz.X == 0 || sz.Y == 0 {
		// empty glyph
		d.cache[key] = cacheValue{-1, advance}
		return image.Point{}, nil, advance
	}
	// adjust point of origin to account for rounding when quantizing subPixels
	org := image.Pt(-dr.Min.X+(ix-dot.X.Floor()), -dr.Min.Y+(iy-dot.Y.Floor()))
	tr := dr.Add(image.Pt(-dr.Min.X+d.p.X, -dr.Min.Y+d.p.Y))
	t := d.currentTexture()
	if t != nil {
		sz := t.Size()
		if tr.Max.X > sz.X {
			d.p = image.Pt(0, d.p.Y+d.lh)
			tr = tr.Add(image.Pt(-tr.Min.X, d.lh))
		}
		if tr.Max.Y > sz.Y {
			t = nil
		}
	}
	if t == nil {
		t = texture.FromImage(image.NewRGBA(image.Rect(0, 0, TextureSize, TextureSize)),
			texture.Wrap(texture.ClampToEdge, texture.ClampToEdge),
			texture.Filter(texture.Linear, d.mf))
		d.ts = append(d.ts, t)
		d.p = image.Point{}
		tr = dr.Add(image.Pt(-dr.Min.X, -dr.Min.Y))
		d.lh = 0
	}
	t.SetSubImage(tr, mask, maskp)
	d.p.X += tr.Dx() + 1
	if h := tr.Dy() + 1; h > d.lh {
		d.lh = h
	}
	index := len(d.glyphs)
	d.glyphs = append(d.glyphs, *t.Region(tr, org))
	d.cache[key] = cacheValue{index, advance}
	return image.Point{X: ix, Y: iy}, &d.glyphs[index], advance
}

// Close deletes the glyph textures and closes the face.
//
func (d *Drawer) Close() error {
	for _, t := range d.ts {
		t.Delete()
	}
	return d.face.Close()
}

// MeasureString returns how far dot would advance by drawing s.
//
func (d *Drawer) MeasureString(s string) (advance fixed.Int26_6) {
	return font.MeasureString(d.face, s)
}
