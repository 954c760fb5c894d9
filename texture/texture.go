// Package texture wraps OpenGL 2.1 textures and draws them, or regions of
// them, as screen aligned quads.
//
package texture

import (
	"image"
	"image/color"
	"image/draw"
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
)

// FilterMode selects how to filter textures.
//
type FilterMode int32

// FilterMode values map directly to their OpenGL equivalents.
//
const (
	Nearest              FilterMode = gl.NEAREST
	Linear                          = gl.LINEAR
	NearestMipmapNearest            = gl.NEAREST_MIPMAP_NEAREST
	NearestMipmapLinear             = gl.NEAREST_MIPMAP_LINEAR
	LinearMipmapNearest             = gl.LINEAR_MIPMAP_NEAREST
	LinearMipmapLinear              = gl.LINEAR_MIPMAP_LINEAR
)

// WrapMode selects what is sampled outside of the [0, 1] texture coordinate
// range. Packed textures such as glyph atlases should use ClampToEdge.
//
type WrapMode int32

// Wrap modes.
//
const (
	Repeat      WrapMode = gl.REPEAT
	ClampToEdge WrapMode = gl.CLAMP_TO_EDGE
)

// A Texture is a Drawable that represents an OpenGL texture.
//
type Texture struct {
	width  int
	height int
	glID   uint32
	mipmap bool
	dirty  bool
}

type tp struct {
	wrapS, wrapT         WrapMode
	minFilter, magFilter FilterMode
}

// Parameter is implemented by functions setting texture parameters. See New.
//
type Parameter interface {
	set(*tp)
}

type optionFunc func(*tp)

func (f optionFunc) set(p *tp) {
	f(p)
}

// Wrap sets the GL_TEXTURE_WRAP_S and GL_TEXTURE_WRAP_T texture parameters.
//
func Wrap(wrapS, wrapT WrapMode) Parameter {
	return optionFunc(func(p *tp) {
		p.wrapS = wrapS
		p.wrapT = wrapT
	})
}

// Filter sets the GL_TEXTURE_MIN_FILTER and GL_TEXTURE_MAG_FILTER texture parameters.
//
func Filter(min, mag FilterMode) Parameter {
	return optionFunc(func(p *tp) {
		p.minFilter = min
		p.magFilter = mag
	})
}

// New returns a new uninitialized texture of the given width and height.
//
func New(width, height int, params ...Parameter) *Texture {
	return newTexture(width, height, gl.RGBA, nil, params...)
}

// FromImage creates a new texture of the same dimensions as the source image.
// Regardless of the source image type, the resulting texture is always in RGBA
// format.
//
func FromImage(src image.Image, params ...Parameter) *Texture {
	sr := src.Bounds()
	dr := image.Rectangle{Max: sr.Size()}
	if dr.Empty() {
		return New(dr.Dx(), dr.Dy(), params...)
	}
	rgba, ok := src.(*image.RGBA)
	if !ok || sr.Min != (image.Point{}) || rgba.Stride != 4*dr.Dx() {
		rgba = image.NewRGBA(dr)
		draw.Draw(rgba, dr, src, sr.Min, draw.Src)
	}
	return newTexture(dr.Dx(), dr.Dy(), gl.RGBA, &rgba.Pix[0], params...)
}

func newTexture(width, height int, format int32, pix *uint8, params ...Parameter) *Texture {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	t := &Texture{width: width, height: height, glID: tex}

	t.setParams(params...)

	var p unsafe.Pointer
	if pix != nil {
		p = gl.Ptr(pix)
	}
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexImage2D(gl.TEXTURE_2D, 0, format, int32(width), int32(height), 0, uint32(format), gl.UNSIGNED_BYTE, p)
	if t.dirty && pix != nil {
		gl.GenerateMipmap(gl.TEXTURE_2D)
		t.dirty = false
	}
	return t
}

// Parameters sets the given texture parameters.
//
func (t *Texture) Parameters(params ...Parameter) {
	if len(params) == 0 {
		return
	}
	gl.BindTexture(gl.TEXTURE_2D, t.glID)
	t.setParams(params...)
}

func (t *Texture) setParams(params ...Parameter) {
	var tp tp
	for _, p := range params {
		p.set(&tp)
	}
	if tp.wrapS != 0 {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, int32(tp.wrapS))
	}
	if tp.wrapT != 0 {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, int32(tp.wrapT))
	}
	if tp.minFilter != 0 {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int32(tp.minFilter))
	}
	if tp.magFilter != 0 {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, int32(tp.magFilter))
	}
	switch tp.minFilter {
	case NearestMipmapNearest, LinearMipmapLinear, LinearMipmapNearest, NearestMipmapLinear:
		t.mipmap = true
		t.dirty = true
	case Nearest, Linear:
		t.mipmap = false
		t.dirty = false
	}
}

// Bind binds the texture and regenerates mipmaps if needed.
//
func (t *Texture) Bind() {
	gl.BindTexture(gl.TEXTURE_2D, t.glID)
	if t.dirty {
		gl.GenerateMipmap(gl.TEXTURE_2D)
		t.dirty = false
	}
}

// SetSubImage copies the src pixels starting at sp into the dr rectangle of
// the texture.
//
func (t *Texture) SetSubImage(dr image.Rectangle, src image.Image, sp image.Point) {
	var (
		pix    *uint8
		format uint32 = gl.RGBA
		sz            = dr.Size()
		sr            = image.Rectangle{Min: sp, Max: sp.Add(sz)}
	)
	if sz.X == 0 || sz.Y == 0 {
		return
	}
	if i, ok := src.(*image.RGBA); ok && sr == src.Bounds() && i.Stride == 4*sz.X {
		pix = &i.Pix[0]
	} else {
		r := image.Rectangle{Max: sz}
		dst := image.NewRGBA(r)
		draw.Draw(dst, r, src, sp, draw.Src)
		pix = &dst.Pix[0]
	}

	gl.BindTexture(gl.TEXTURE_2D, t.glID)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, int32(dr.Min.X), int32(dr.Min.Y), int32(sz.X), int32(sz.Y), format, gl.UNSIGNED_BYTE, gl.Ptr(pix))
	if t.mipmap {
		t.dirty = true
	}
}

// GLCoords maps pt from texels to texture coordinates.
//
func (t *Texture) GLCoords(pt image.Point) (glX float32, glY float32) {
	return float32(pt.X) / float32(t.width),
		float32(pt.Y) / float32(t.height)
}

// Origin returns the point of origin of the texture.
//
func (t *Texture) Origin() image.Point {
	return image.Point{}
}

// Size returns the size of the texture.
//
func (t *Texture) Size() image.Point {
	return image.Point{t.width, t.height}
}

// UV returns the texture's UV coordinates in the range [0, 1]
//
func (t *Texture) UV() [4]float32 {
	return [4]float32{0, 1, 1, 0}
}

// Delete deletes the texture.
//
func (t *Texture) Delete() {
	gl.DeleteTextures(1, &t.glID)
}

// Region returns a region within the texture.
//
func (t *Texture) Region(bounds image.Rectangle, origin image.Point) *Region {
	return &Region{
		Texture: t,
		origin:  image.Pt(origin.X, origin.Y),
		bounds:  bounds,
	}
}

// Region is a Drawable that represents a sub-region in a Texture or another
// Region.
//
type Region struct {
	*Texture
	origin image.Point
	bounds image.Rectangle
}

// Origin returns the point of origin of the region.
//
func (r *Region) Origin() image.Point {
	return r.origin
}

// Size returns the size of the region.
//
func (r *Region) Size() image.Point {
	return r.bounds.Size()
}

// UV returns the regions's UV coordinates in the range [0, 1]
//
func (r *Region) UV() [4]float32 {
	u0, v0 := r.GLCoords(r.bounds.Min)
	u1, v1 := r.GLCoords(r.bounds.Max)
	return [4]float32{u0, v1, u1, v0}
}

// Region returns a sub-region within the Region.
//
func (r *Region) Region(bounds image.Rectangle, origin image.Point) *Region {
	return &Region{
		Texture: r.Texture,
		origin:  origin.Add(r.bounds.Min),
		bounds:  bounds.Add(r.bounds.Min),
	}
}

// Drawable is implemented by Texture and Region.
//
type Drawable interface {
	Bind()
	Origin() image.Point
	Size() image.Point
	UV() [4]float32
}

// Draw draws d as a textured quad with its point of origin at x, y, in the
// current modelview space. The quad spans downward from y, matching a
// projection with the y axis pointing down such as
// chasecam.FrameBuffer.ScreenProjection.
//
// The texture is modulated with c, converted to premultiplied alpha. Blending
// should be set to gl.ONE, gl.ONE_MINUS_SRC_ALPHA.
//
// Draw must be called with GL_TEXTURE_2D enabled.
//
func Draw(d Drawable, x, y float32, c color.Color) {
	q := Quad(d, x, y)
	r, g, b, a := c.RGBA()
	d.Bind()
	gl.Color4f(float32(r)/0xffff, float32(g)/0xffff, float32(b)/0xffff, float32(a)/0xffff)
	gl.Begin(gl.QUADS)
	for _, v := range q {
		gl.TexCoord2f(v[2], v[3])
		gl.Vertex2f(v[0], v[1])
	}
	gl.End()
}

// Quad returns the vertices of the quad drawn by Draw, in counter-clockwise
// order starting at the top left corner. Each vertex is {x, y, u, v}.
//
func Quad(d Drawable, x, y float32) [4][4]float32 {
	org, sz, uv := d.Origin(), d.Size(), d.UV()
	x0, y0 := x-float32(org.X), y-float32(org.Y)
	x1, y1 := x0+float32(sz.X), y0+float32(sz.Y)
	return [4][4]float32{
		{x0, y0, uv[0], uv[3]},
		{x0, y1, uv[0], uv[1]},
		{x1, y1, uv[2], uv[1]},
		{x1, y0, uv[2], uv[3]},
	}
}
