package scene

import "image/color"

// Color implements color.Color. It stores alpha premultiplied color components
// in the range [0, 1].
//
type Color struct {
	R, G, B, A float32
}

// Common colors.
//
var (
	Black = Color{0, 0, 0, 1}
	White = Color{1, 1, 1, 1}
	Green = Color{0, 1, 0, 1}
	Blue  = Color{0, 0, 1, 1}
)

// RGBA implements color.Color.
//
func (c Color) RGBA() (r, g, b, a uint32) {
	return channel(c.R), channel(c.G), channel(c.B), channel(c.A)
}

func channel(v float32) uint32 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 0xffff
	}
	return uint32(v*0xffff + 0.5)
}

// Vec4 returns the color components as an array suitable for gl.Lightfv and
// gl.Materialfv.
//
func (c Color) Vec4() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// ColorModel converts any color.Color to a Color; i.e. the result can safely be
// type asserted to a Color.
//
var ColorModel = color.ModelFunc(colorModel)

func colorModel(c color.Color) color.Color {
	if _, ok := c.(Color); ok {
		return c
	}
	r, g, b, a := c.RGBA()
	return Color{R: float32(r) / 0xffff, G: float32(g) / 0xffff, B: float32(b) / 0xffff, A: float32(a) / 0xffff}
}
